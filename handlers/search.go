package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/cookie"
	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/listing"
	"github.com/roam-rides/site/redis"
	"github.com/roam-rides/site/search"
	"github.com/roam-rides/site/ui"
)

// getView resolves the requested results view (list or map), falling back
// to the last-used view cookie.
func getView(c *fiber.Ctx) string {
	if v := getQueryParam(c, "view"); v == "list" || v == "map" {
		return v
	}
	return cookie.GetLastView(c)
}

// HandleSearch renders the search results fragment for the current URL
// parameters: the canonical entry point for a new or changed search.
func HandleSearch(c *fiber.Ctx) error {
	return handleSearch(c, getView(c))
}

func handleSearch(c *fiber.Ctx, view string) error {
	sess := getSession(c)
	f := search.ParseFilter(queryValues(c))

	// A freeform city without coordinates is resolved through the geocoder.
	// Viewport moves are latched out during resolution so a pan cannot race
	// the city's own URL update. On failure the city string stays in the
	// filter and the API falls back to text-based filtering.
	if f.Center == nil && f.City != "" {
		sess.coord.CityLookupStarted()
		cand, err := geocoder.Resolve(c.Context(), f.City)
		sess.coord.CityLookupFinished()
		if err != nil {
			log.Printf("[search] city resolution failed for %q, using text filter: %v", f.City, err)
		} else {
			f.Center = &geo.Point{Lat: cand.Lat, Lng: cand.Lng}
		}
	}

	sess.coord.SetFilter(f)
	if f.Center != nil {
		sess.coord.URLCenterChanged(f.Center.Lat, f.Center.Lng)
	}

	if f.City != "" {
		redis.SaveRecentSearch(sess.id, f.City)
	}

	page, err := sess.searcher.Search(c.Context(), f)
	if errors.Is(err, listing.ErrSuperseded) {
		return c.SendStatus(fiber.StatusNoContent)
	}

	sess.coord.SetResults(listing.Markers(page.Items))
	c.Set("HX-Push-Url", "/?"+f.Values().Encode())

	return renderResults(c, sess, view, f, page, err != nil)
}

// renderResults renders the list or map results fragment.
func renderResults(c *fiber.Ctx, sess *searchSession, view string, f search.Filter, page listing.Page, loadErr bool) error {
	if view != "map" {
		return render(c, ui.ListResults(page, loadErr))
	}

	center := sess.coord.InitialCenter()
	viewport := sess.browserMap.Bounds()
	zoom := sess.browserMap.Zoom()
	if !viewport.Contains(center) {
		radius := f.RadiusMeters
		if radius == 0 {
			radius = 5000
		}
		viewport = geo.BoundsAround(center, radius)
		sess.browserMap.Report(viewport, zoom)
	}

	markers := listing.Markers(page.Items)
	nodes := geo.Cluster(markers, zoom, viewport, config.ClusterMaxZoom)
	flyTo := sess.browserMap.TakeFlyTo()

	return render(c, ui.MapResults(ui.MapResultsProps{
		Page:       page,
		ByID:       listing.ByID(page.Items),
		Nodes:      nodes,
		Center:     center,
		Zoom:       zoom,
		FlyTo:      flyTo,
		SheetState: cookie.GetSheetState(c),
		LoadErr:    loadErr,
	}))
}
