package search

import (
	"net/url"
	"strconv"
	"time"

	"github.com/roam-rides/site/geo"
)

// Listing types offered on the marketplace.
const (
	TypeCar        = "car"
	TypeVan        = "van"
	TypeMotorcycle = "motorcycle"
	TypeCamper     = "camper"
)

var listingTypes = map[string]bool{
	TypeCar:        true,
	TypeVan:        true,
	TypeMotorcycle: true,
	TypeCamper:     true,
}

// Filter is the canonical search query state, derived entirely from URL
// query parameters. It is the shareable, bookmarkable representation of a
// search: ParseFilter and Values form a round-tripping pair.
type Filter struct {
	Type         string
	City         string
	Country      string
	Center       *geo.Point
	RadiusMeters float64
	StartAt      time.Time
	EndAt        time.Time
	Category     string
	Transmission string
	FuelType     string
	SortBy       string
}

// ParseFilter derives a Filter from URL query values. Malformed values are
// coerced to zero values, never errors: a bad URL yields a usable default
// search.
func ParseFilter(v url.Values) Filter {
	f := Filter{
		Type:         v.Get("type"),
		City:         v.Get("city"),
		Country:      v.Get("country"),
		Category:     v.Get("category"),
		Transmission: v.Get("transmission"),
		FuelType:     v.Get("fuelType"),
		SortBy:       v.Get("sortBy"),
	}
	if !listingTypes[f.Type] {
		f.Type = TypeCar
	}

	lat, errLat := strconv.ParseFloat(v.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(v.Get("lng"), 64)
	if errLat == nil && errLng == nil {
		f.Center = &geo.Point{Lat: lat, Lng: lng}
	}

	if r, err := strconv.ParseFloat(v.Get("radius"), 64); err == nil && r > 0 {
		f.RadiusMeters = r
	}

	f.StartAt = parseTime(v.Get("startAt"))
	f.EndAt = parseTime(v.Get("endAt"))

	return f
}

// timeLayouts are the accepted timestamp formats: RFC3339 for shared URLs
// and the layouts datetime-local inputs submit.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Values serializes the filter back to URL query values. Zero-valued fields
// are omitted so URLs stay short.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Country != "" {
		v.Set("country", f.Country)
	}
	if f.Center != nil {
		v.Set("lat", strconv.FormatFloat(f.Center.Lat, 'f', 6, 64))
		v.Set("lng", strconv.FormatFloat(f.Center.Lng, 'f', 6, 64))
	}
	if f.RadiusMeters > 0 {
		v.Set("radius", strconv.FormatFloat(f.RadiusMeters, 'f', 0, 64))
	}
	if !f.StartAt.IsZero() {
		v.Set("startAt", f.StartAt.Format(time.RFC3339))
	}
	if !f.EndAt.IsZero() {
		v.Set("endAt", f.EndAt.Format(time.RFC3339))
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Transmission != "" {
		v.Set("transmission", f.Transmission)
	}
	if f.FuelType != "" {
		v.Set("fuelType", f.FuelType)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	return v
}
