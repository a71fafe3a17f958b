package handlers

import (
	"net/http"

	"fleetforge-server/models"
	"fleetforge-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Checkout decides how to hand the session off to the external payment
// pages. The payment side only offers fixed-price, single-product links,
// so a single-item cart redirects directly while a multi-item cart gets
// one link per item to complete separately.
func Checkout(c *gin.Context) {
	cart := Carts.Get(sessionID(c))

	if len(cart.Items) == 0 {
		// The UI prevents reaching checkout with an empty cart.
		c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
		return
	}

	if len(cart.Items) == 1 {
		item := cart.Items[0]
		// Quantity is not communicated to the external link; the
		// checkout page charges the fixed single-unit price.
		c.JSON(http.StatusOK, gin.H{
			"mode":          "redirect",
			"checkout_url":  item.CheckoutLink,
			"total":         cart.Total(),
			"total_display": utils.FormatUSD(cart.Total()),
		})
		return
	}

	links := lo.Map(cart.Items, func(item models.CartItem, _ int) gin.H {
		return gin.H{
			"product_id":   item.ID,
			"name":         item.Name,
			"checkout_url": item.CheckoutLink,
		}
	})

	c.JSON(http.StatusOK, gin.H{
		"mode":          "per_item",
		"links":         links,
		"message":       "For orders with multiple items, please check out each item individually or contact us directly at " + models.Business.Phone + ".",
		"total":         cart.Total(),
		"total_display": utils.FormatUSD(cart.Total()),
	})
}

// OrderConfirmation returns the copy the post-checkout confirmation page
// shows, so the front end does not hardcode contact channels.
func OrderConfirmation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Your order has been confirmed and is being processed.",
		"shipping": "Your order will be prepared and shipped within 1-2 business days.",
		"phone":    models.Business.Phone,
		"email":    models.Business.Email,
	})
}
