package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/api"
	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/geocode"
)

var (
	apiClient *api.Client
	geocoder  *geocode.Client
	sessions  *sessionStore
)

// Init wires the shared clients and the session registry. Call once at
// startup, after config.Load.
func Init() error {
	apiClient = api.New()

	g, err := geocode.New()
	if err != nil {
		return err
	}
	geocoder = g

	sessions = newSessionStore(config.SessionTTL)
	sessions.startSweeper()
	return nil
}

// getQueryParam gets a parameter from either query string or form data
func getQueryParam(ctx *fiber.Ctx, key string) string {
	// Try query parameter first (for GET requests)
	if value := ctx.Query(key); value != "" {
		return value
	}
	// Fall back to form value (for POST requests)
	return ctx.FormValue(key)
}

// queryValues copies the request's query string into url.Values.
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}
