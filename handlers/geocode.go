package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/geocode"
	"github.com/roam-rides/site/redis"
	"github.com/roam-rides/site/ui"
)

// HandleGeocodeSuggest renders the address autocomplete dropdown for the
// destination box. Keystroke debouncing happens client-side via the htmx
// trigger delay; superseded requests are aborted by htmx and ignored here.
func HandleGeocodeSuggest(c *fiber.Ctx) error {
	q := c.Query("city")

	if len(q) < 2 {
		sess := getSession(c)
		return render(c, ui.RecentSearches(redis.RecentSearches(sess.id, 5)))
	}

	candidates, err := geocoder.Suggest(c.Context(), q, 5)
	if err != nil {
		switch {
		case errors.Is(err, geocode.ErrNoToken):
			return render(c, ui.GeocodeConfigError())
		case errors.Is(err, context.Canceled):
			return c.SendStatus(fiber.StatusNoContent)
		default:
			log.Printf("[geocode] suggest failed for %q: %v", q, err)
			return render(c, ui.GeocodeError(q))
		}
	}

	return render(c, ui.GeocodeSuggestions(candidates))
}
