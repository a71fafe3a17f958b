package store

import (
	"errors"

	"fleetforge-server/models"

	"github.com/samber/lo"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the static, read-only list of purchasable parts. It is the
// source of truth for the price, name and image metadata copied into the
// cart, and for each product's external checkout link.
type Catalog struct {
	products []models.Product
}

// NewCatalog creates a catalog over the given product list.
func NewCatalog(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// DefaultCatalog returns the catalog of in-stock parts sold online.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.Product{
		{
			ID:           "bumper-isuzu-gmc",
			Name:         "Front Bumper – Isuzu NPR/NQR/NRR + GMC W-Series",
			Price:        660,
			PartNumber:   "Available on request",
			Image:        "/assets/products/bumper.png",
			CheckoutLink: "https://buy.stripe.com/14AdRabhZ6BG0qWbVebjW00",
		},
		{
			ID:           "headlight-right-international",
			Name:         "International Headlight Assembly (Right)",
			Price:        440,
			PartNumber:   "4121490C94",
			Image:        "/assets/products/headlight-right.png",
			CheckoutLink: "https://buy.stripe.com/eVq00k1Hp3pu2z49N6bjW01",
		},
		{
			ID:           "headlight-left-international",
			Name:         "International Headlight Assembly (Left)",
			Price:        512,
			PartNumber:   "4121489C94",
			Image:        "/assets/products/headlight-left.png",
			CheckoutLink: "https://buy.stripe.com/cNi14o71J6BGgpU5wQbjW02",
		},
	})
}

// List returns a copy of the product list.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id, or ErrProductNotFound.
func (c *Catalog) Get(id string) (models.Product, error) {
	product, found := lo.Find(c.products, func(p models.Product) bool {
		return p.ID == id
	})
	if !found {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}
