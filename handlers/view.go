package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/cookie"
)

// HandleListView switches the results to the list view.
func HandleListView(c *fiber.Ctx) error {
	cookie.SetLastView(c, "list")
	return handleSearch(c, "list")
}

// HandleMapView switches the results to the map view.
func HandleMapView(c *fiber.Ctx) error {
	cookie.SetLastView(c, "map")
	return handleSearch(c, "map")
}
