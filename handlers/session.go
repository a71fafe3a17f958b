package handlers

import (
	"fleetforge-server/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "ff_cart_session"

// sessionID returns the cart session id from the request cookie, issuing
// a fresh one when the cookie is missing or empty. The cookie lives as
// long as the cart TTL so an idle browser and the store expire together.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookieName); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	maxAge := int(config.AppConfig.CartTTL.Seconds())
	c.SetCookie(sessionCookieName, id, maxAge, "/", "", false, true)
	return id
}
