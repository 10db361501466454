package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/cookie"
	"github.com/roam-rides/site/search"
	"github.com/roam-rides/site/ui"
)

// HandleHome renders the search page shell; the results fragment loads
// itself via htmx with the current URL parameters.
func HandleHome(c *fiber.Ctx) error {
	f := search.ParseFilter(queryValues(c))
	return render(c, ui.HomePage(f, getView(c), cookie.GetSheetState(c)))
}
