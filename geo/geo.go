package geo

import "math"

const (
	earthRadiusMeters = 6371000.0

	// Meters per degree of latitude (and of longitude at the equator).
	metersPerDegree = 111320.0

	// MinRadiusMeters is the floor applied to a search radius derived from
	// map bounds. A degenerate viewport (single point, zero span) must never
	// produce a zero or near-zero radius query.
	MinRadiusMeters = 500.0
)

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// Bounds is a geographic bounding box.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}

// Contains reports whether p falls within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

// Expand grows the bounds by deg degrees on every side.
func (b Bounds) Expand(deg float64) Bounds {
	return Bounds{
		North: b.North + deg,
		South: b.South - deg,
		East:  b.East + deg,
		West:  b.West - deg,
	}
}

// HaversineMeters returns the great-circle distance between two points.
func HaversineMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// RadiusMeters approximates a search radius covering the given bounds,
// using a small-angle approximation on the lat/lng spans:
//
//	radius = max(latSpanMeters, lngSpanMeters*cos(avgLat)) / 2
//
// The result is floored at MinRadiusMeters so degenerate bounds still
// produce a usable query.
func RadiusMeters(b Bounds) float64 {
	latSpan := math.Abs(b.North-b.South) * metersPerDegree
	avgLat := (b.North + b.South) / 2 * math.Pi / 180
	lngSpan := math.Abs(b.East-b.West) * metersPerDegree * math.Cos(avgLat)

	radius := math.Max(latSpan, lngSpan) / 2
	if radius < MinRadiusMeters {
		return MinRadiusMeters
	}
	return radius
}

// BoundsAround builds the bounding box covered by a circle of the given
// radius centered on p. Used to seed a viewport before the browser has
// reported one.
func BoundsAround(p Point, radiusMeters float64) Bounds {
	if radiusMeters < MinRadiusMeters {
		radiusMeters = MinRadiusMeters
	}
	latDelta := radiusMeters / metersPerDegree
	cosLat := math.Cos(p.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngDelta := radiusMeters / (metersPerDegree * cosLat)
	return Bounds{
		North: p.Lat + latDelta,
		South: p.Lat - latDelta,
		East:  p.Lng + lngDelta,
		West:  p.Lng - lngDelta,
	}
}

// Centroid returns the arithmetic center of the points. The second return
// value is false when the slice is empty.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}
	n := float64(len(points))
	return Point{Lat: sumLat / n, Lng: sumLng / n}, true
}
