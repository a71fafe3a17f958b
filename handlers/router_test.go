package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fleetforge-server/config"
	"fleetforge-server/services"
	"fleetforge-server/store"
)

// setupRouter wires fresh stores into the handlers and registers the
// same routes main does.
func setupRouter(t *testing.T, catalog *store.Catalog, relay *services.FormRelay) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		ServerPort:  "8080",
		Environment: "test",
		CartTTL:     time.Hour,
	}
	InitializeHandlers(store.NewCartStore(time.Hour), catalog, relay)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		products := api.Group("/products")
		{
			products.GET("/", GetProducts)
			products.GET("/:id", GetProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/", GetCart)
			cart.POST("/add", AddToCart)
			cart.PUT("/update", UpdateCartItem)
			cart.DELETE("/remove/:id", RemoveFromCart)
			cart.DELETE("/clear", ClearCart)
		}

		api.POST("/checkout", Checkout)
		api.GET("/orders/confirmation", OrderConfirmation)

		forms := api.Group("/forms")
		{
			forms.POST("/contact", SubmitContactForm)
			forms.POST("/service-request", SubmitServiceRequestForm)
			forms.POST("/parts-request", SubmitPartsRequestForm)
		}

		business := api.Group("/business")
		{
			business.GET("/", GetBusinessInfo)
			business.GET("/services", GetServiceOfferings)
		}
	}

	return router
}

// client carries the session cookie between requests like a browser.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (cl *client) do(method, path, contentType string, body io.Reader) (*httptest.ResponseRecorder, map[string]any) {
	cl.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range cl.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if issued := w.Result().Cookies(); len(issued) > 0 {
		cl.cookies = issued
	}

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(cl.t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

// noopRelay points at a closed port; tests that never submit forms use it.
func noopRelay() *services.FormRelay {
	return services.NewFormRelay("http://127.0.0.1:1")
}
