package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/listing"
	"github.com/roam-rides/site/search"
	"github.com/roam-rides/site/ui"
)

// parseViewport extracts the reported map viewport from query parameters.
func parseViewport(c *fiber.Ctx) (geo.Bounds, float64, bool) {
	north, err1 := strconv.ParseFloat(c.Query("north"), 64)
	south, err2 := strconv.ParseFloat(c.Query("south"), 64)
	east, err3 := strconv.ParseFloat(c.Query("east"), 64)
	west, err4 := strconv.ParseFloat(c.Query("west"), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return geo.Bounds{}, 0, false
	}
	if north < south {
		return geo.Bounds{}, 0, false
	}

	zoom, err := strconv.ParseFloat(c.Query("zoom"), 64)
	if err != nil {
		zoom = config.DefaultZoom
	}

	return geo.Bounds{North: north, South: south, East: east, West: west}, zoom, true
}

// HandleViewportMoved processes a map move-end event. Moves fired by a
// programmatic recenter are dropped without refetching or touching the URL;
// user-driven moves commit new lat/lng/radius parameters and re-render the
// map data and the result list.
func HandleViewportMoved(c *fiber.Ctx) error {
	bounds, zoom, ok := parseViewport(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid viewport bounds")
	}

	sess := getSession(c)
	sess.browserMap.Report(bounds, zoom)

	if !sess.coord.ViewportMoved(bounds, bounds.Center()) {
		return c.SendStatus(fiber.StatusNoContent)
	}

	// The client already debounced move events; flush the coordinator's
	// pending commit so this response can carry the canonical URL.
	vals, ok := sess.coord.Flush()
	if !ok {
		// The debounce timer won the race and committed already; still
		// push the URL it produced.
		if u := sess.lastPushURL(); u != "" {
			c.Set("HX-Push-Url", u)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	f := search.ParseFilter(vals)
	page, err := sess.searcher.Search(c.Context(), f)
	if errors.Is(err, listing.ErrSuperseded) {
		return c.SendStatus(fiber.StatusNoContent)
	}

	markers := listing.Markers(page.Items)
	sess.coord.SetResults(markers)
	c.Set("HX-Push-Url", "/?"+vals.Encode())

	nodes := geo.Cluster(markers, zoom, bounds, config.ClusterMaxZoom)
	return render(c, ui.MapUpdate(nodes, listing.ByID(page.Items), page, err != nil))
}
