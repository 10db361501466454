package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/redis"
)

// HandleHealth returns the health status of the application. Redis being
// down is reported but not fatal: the search flow works without it.
func HandleHealth(c *fiber.Ctx) error {
	health := map[string]any{
		"status":   "ok",
		"sessions": sessions.len(),
		"geocode":  geocoder.Stats(),
	}

	if err := redis.Ping(); err != nil {
		health["redis"] = "down"
	} else {
		health["redis"] = "up"
	}

	c.Set("Content-Type", "application/json")
	return json.NewEncoder(c).Encode(health)
}
