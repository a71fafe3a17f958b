package models

// Product is a purchasable part from the static catalog. CheckoutLink is
// an externally hosted, fixed-price payment page for this product; the
// server never validates its reachability.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PartNumber   string  `json:"part_number"`
	Image        string  `json:"image"`
	CheckoutLink string  `json:"checkout_link"`
}
