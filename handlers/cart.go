package handlers

import (
	"net/http"

	"fleetforge-server/models"
	"fleetforge-server/utils"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// cartResponse renders a cart with its derived totals. Totals are
// recomputed here on every read, never cached.
func cartResponse(cart models.Cart) gin.H {
	return gin.H{
		"items":          cart.Items,
		"total_items":    cart.TotalItems(),
		"subtotal":       cart.Subtotal(),
		"processing_fee": cart.ProcessingFee(),
		"total":          cart.Total(),
		"total_display":  utils.FormatUSD(cart.Total()),
	}
}

// GetCart returns the session's cart.
func GetCart(c *gin.Context) {
	cart := Carts.Get(sessionID(c))
	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddToCart adds a catalog product to the session's cart. Quantity
// defaults to 1; larger values add the product that many times, which
// collapses into a single line item with the summed quantity.
func AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := Catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}

	sid := sessionID(c)
	for i := 0; i < req.Quantity; i++ {
		Carts.AddItem(sid, product)
	}

	c.JSON(http.StatusOK, cartResponse(Carts.Get(sid)))
}

// UpdateCartItem sets an absolute quantity for a line item. A quantity
// below 1 removes the line item, matching the store semantics.
func UpdateCartItem(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := sessionID(c)
	Carts.UpdateQuantity(sid, req.ProductID, req.Quantity)

	c.JSON(http.StatusOK, cartResponse(Carts.Get(sid)))
}

// RemoveFromCart deletes a line item. Removing a product that is not in
// the cart is a no-op and still returns the (unchanged) cart.
func RemoveFromCart(c *gin.Context) {
	sid := sessionID(c)
	Carts.RemoveItem(sid, c.Param("id"))

	c.JSON(http.StatusOK, cartResponse(Carts.Get(sid)))
}

// ClearCart empties the session's cart.
func ClearCart(c *gin.Context) {
	sid := sessionID(c)
	Carts.Clear(sid)

	c.JSON(http.StatusOK, cartResponse(Carts.Get(sid)))
}
