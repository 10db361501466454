package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/roam-rides/site/config"
	h "github.com/roam-rides/site/handlers"
	"github.com/roam-rides/site/redis"
)

func main() {
	config.Load()

	// Wire the rental API client, geocoder and session registry
	if err := h.Init(); err != nil {
		log.Fatalf("error initializing handlers: %v", err)
	}

	// Redis is optional; the search flow works without recent searches
	redis.Init()
	redis.StartHealthCheck()

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))

	// Add logger middleware
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", "./static")
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Main search page
	app.Get("/", h.HandleHome)
	app.Get("/search", h.HandleSearch)

	// Map viewport events and listing selection
	app.Get("/search/viewport", h.HandleViewportMoved)
	app.Post("/search/select/:id", h.HandleListingSelected)

	// Listing in-place expand partials for htmx
	app.Get("/listing/:id", h.HandleListingDetail)

	// Address autocomplete
	api := app.Group("/api")
	api.Get("/geocode", h.HandleGeocodeSuggest)

	// Bottom sheet transitions
	app.Post("/sheet/advance", h.HandleSheetAdvance)
	app.Post("/sheet/release", h.HandleSheetRelease)
	app.Post("/sheet/:state", h.HandleSheetSet)

	// Views for HTMX view switching
	app.Post("/view/list", h.HandleListView)
	app.Post("/view/map", h.HandleMapView)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
