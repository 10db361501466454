// Package listing fetches listing summaries from the rental API. Listings
// are read-only projections: never mutated client-side, replaced wholesale
// on every filter change.
package listing

import (
	"context"
	"log"
	"sort"
	"strconv"

	"github.com/roam-rides/site/api"
	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/search"
)

// Photo is one image of a listing, ordered by the host.
type Photo struct {
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Summary is the search-result projection of a listing.
type Summary struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug,omitempty"`
	Title           string   `json:"title"`
	City            string   `json:"city,omitempty"`
	Country         string   `json:"country,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	PricePerDayMinor int64   `json:"pricePerDayMinor"`
	Currency        string   `json:"currency"`
	Photos          []Photo  `json:"photos"`
	Type            string   `json:"type"`
}

// FirstPhotoURL returns the URL of the lowest-ordered photo, or "".
func (s Summary) FirstPhotoURL() string {
	if len(s.Photos) == 0 {
		return ""
	}
	return s.Photos[0].URL
}

// Page is one page of search results.
type Page struct {
	Items []Summary `json:"items"`
	Total int       `json:"total"`
}

// Search fetches a page of listings matching the filter. Malformed or
// partial responses are coerced to safe defaults rather than propagated:
// a broken search renders as empty, never crashes the page.
func Search(ctx context.Context, client *api.Client, f search.Filter) (Page, error) {
	values := f.Values()
	values.Set("limit", strconv.Itoa(config.SearchPageSize))

	var page Page
	if err := client.GetJSON(ctx, "/listings", values, &page); err != nil {
		return Page{Items: []Summary{}}, err
	}

	if page.Items == nil {
		page.Items = []Summary{}
	}
	if page.Total < len(page.Items) {
		page.Total = len(page.Items)
	}
	for i := range page.Items {
		photos := page.Items[i].Photos
		sort.SliceStable(photos, func(a, b int) bool {
			return photos[a].Order < photos[b].Order
		})
	}
	return page, nil
}

// Markers projects the geolocated listings of a page onto map markers.
func Markers(items []Summary) []geo.Marker {
	markers := make([]geo.Marker, 0, len(items))
	for _, item := range items {
		if item.Latitude == nil || item.Longitude == nil {
			continue
		}
		markers = append(markers, geo.Marker{
			ID:     item.ID,
			Center: geo.Point{Lat: *item.Latitude, Lng: *item.Longitude},
		})
	}
	return markers
}

// ByID indexes a result page by listing id.
func ByID(items []Summary) map[int64]Summary {
	m := make(map[int64]Summary, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}

func logSearchError(f search.Filter, err error) {
	if api.IsAbort(err) {
		return
	}
	log.Printf("[listing] search failed (city=%q): %v", f.City, err)
}
