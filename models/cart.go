package models

import (
	"github.com/samber/lo"
)

// ProcessingFeeRate is the processing & handling surcharge applied to the
// cart subtotal at checkout.
const ProcessingFeeRate = 0.03

// CartItem is a cart line item: a catalog product plus a quantity.
// Quantity is always >= 1; a quantity below 1 removes the line item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds one session's line items in insertion order. Totals are
// derived from the items on every read and never stored.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// TotalItems returns the sum of quantities across all line items.
func (c *Cart) TotalItems() int {
	return lo.SumBy(c.Items, func(item CartItem) int {
		return item.Quantity
	})
}

// Subtotal returns the sum of unit price times quantity over all items.
func (c *Cart) Subtotal() float64 {
	return lo.SumBy(c.Items, func(item CartItem) float64 {
		return item.Price * float64(item.Quantity)
	})
}

// ProcessingFee returns the surcharge on the current subtotal.
func (c *Cart) ProcessingFee() float64 {
	return c.Subtotal() * ProcessingFeeRate
}

// Total returns subtotal plus processing fee.
func (c *Cart) Total() float64 {
	return c.Subtotal() + c.ProcessingFee()
}
