package main

import (
	"log"
	"net/http"
	"time"

	"fleetforge-server/config"
	"fleetforge-server/handlers"
	"fleetforge-server/services"
	"fleetforge-server/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// In-memory stores; cart state does not survive a restart
	catalog := store.DefaultCatalog()
	carts := store.NewCartStore(config.AppConfig.CartTTL)

	// Outbound relay for the lead-generation forms
	relay := services.NewFormRelay(config.AppConfig.FormEndpoint)

	// Prune idle carts in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if pruned := carts.Prune(time.Now()); pruned > 0 {
				log.Printf("Pruned %d idle carts", pruned)
			}
		}
	}()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "FleetForge Server is running",
		})
	})

	// Initialize handlers
	handlers.InitializeHandlers(carts, catalog, relay)

	// API routes
	api := router.Group("/api/v1")
	{
		// Catalog routes
		products := api.Group("/products")
		{
			products.GET("/", handlers.GetProducts)
			products.GET("/:id", handlers.GetProduct)
		}

		// Cart routes (session scoped)
		cart := api.Group("/cart")
		{
			cart.GET("/", handlers.GetCart)
			cart.POST("/add", handlers.AddToCart)
			cart.PUT("/update", handlers.UpdateCartItem)
			cart.DELETE("/remove/:id", handlers.RemoveFromCart)
			cart.DELETE("/clear", handlers.ClearCart)
		}

		// Checkout hand-off
		api.POST("/checkout", handlers.Checkout)
		api.GET("/orders/confirmation", handlers.OrderConfirmation)

		// Lead-generation forms
		forms := api.Group("/forms")
		{
			forms.POST("/contact", handlers.SubmitContactForm)
			forms.POST("/service-request", handlers.SubmitServiceRequestForm)
			forms.POST("/parts-request", handlers.SubmitPartsRequestForm)
		}

		// Business info
		business := api.Group("/business")
		{
			business.GET("/", handlers.GetBusinessInfo)
			business.GET("/services", handlers.GetServiceOfferings)
		}
	}

	// Start server
	log.Printf("Starting FleetForge Server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}
