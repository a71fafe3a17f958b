package handlers

import (
	"net/http"

	"fleetforge-server/models"

	"github.com/gin-gonic/gin"
)

// GetBusinessInfo returns the static contact configuration surfaced
// throughout the site.
func GetBusinessInfo(c *gin.Context) {
	c.JSON(http.StatusOK, models.Business)
}

// GetServiceOfferings returns the service catalog shown on the services
// page.
func GetServiceOfferings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": models.ServiceOfferings,
	})
}
