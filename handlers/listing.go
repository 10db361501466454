package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/api"
	"github.com/roam-rides/site/listing"
	"github.com/roam-rides/site/ui"
)

// HandleListingDetail renders the expanded listing card fragment.
func HandleListingDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	detail, err := listing.Fetch(c.Context(), apiClient, int64(id))
	if err != nil {
		if api.IsAbort(err) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		log.Printf("[listing] detail fetch failed for %d: %v", id, err)
		return render(c, ui.ListingDetailError(int64(id)))
	}

	return render(c, ui.ListingDetail(detail))
}
