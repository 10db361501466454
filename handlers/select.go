package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/cookie"
	"github.com/roam-rides/site/sheet"
	"github.com/roam-rides/site/ui"
)

// HandleListingSelected reacts to a listing being picked from the result
// list: fly the map to it and drop the mobile sheet back to peek so the map
// is visible again.
func HandleListingSelected(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	sess := getSession(c)
	if !sess.coord.ListingSelected(int64(id)) {
		// Listing without coordinates, or no longer in the result set.
		return c.SendStatus(fiber.StatusNoContent)
	}

	cookie.SetSheetState(c, sheet.Peek)

	return render(c, ui.SelectResponse(int64(id), sess.browserMap.TakeFlyTo(), sheet.Peek))
}
