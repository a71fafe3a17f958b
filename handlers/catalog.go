package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the full parts catalog.
func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products": Catalog.List(),
	})
}

// GetProduct returns a single catalog product by id.
func GetProduct(c *gin.Context) {
	product, err := Catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
