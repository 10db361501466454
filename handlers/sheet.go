package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/cookie"
	"github.com/roam-rides/site/sheet"
	"github.com/roam-rides/site/ui"
)

// HandleSheetAdvance cycles the bottom sheet on a handle tap:
// peek -> mid -> full -> peek.
func HandleSheetAdvance(c *fiber.Ctx) error {
	next := sheet.Advance(cookie.GetSheetState(c))
	cookie.SetSheetState(c, next)
	return render(c, ui.SheetUpdate(next))
}

// HandleSheetRelease snaps the sheet to the state nearest the height a drag
// was released at (in vh).
func HandleSheetRelease(c *fiber.Ctx) error {
	height, err := strconv.ParseFloat(getQueryParam(c, "height"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid release height")
	}

	next := sheet.NearestSnap(height)
	cookie.SetSheetState(c, next)
	return render(c, ui.SheetUpdate(next))
}

// HandleSheetSet forces a specific sheet state (e.g. peek after a marker
// click).
func HandleSheetSet(c *fiber.Ctx) error {
	s := sheet.State(c.Params("state"))
	if !s.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid sheet state")
	}

	cookie.SetSheetState(c, s)
	return render(c, ui.SheetUpdate(s))
}
