package search

import (
	"math"
	"net/url"
	"sync"
	"time"

	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/geo"
)

// MapController is the capability surface the coordinator needs from
// whichever map-rendering backend is in use. The production implementation
// forwards fly-to commands to the browser map; tests substitute a fake.
type MapController interface {
	FlyTo(center geo.Point, zoom float64, duration time.Duration)
	Zoom() float64
	Bounds() geo.Bounds
}

// recenterThresholdDeg is the center delta (~1km) below which a URL center
// change is absorbed without flying the map.
const recenterThresholdDeg = 0.01

// selectZoom is the minimum zoom used when flying to a selected listing.
const selectZoom = 12

// Coordinator reconciles the three representations of a search: the URL
// query parameters (source of truth), the map viewport (user-driven), and
// the fetched result set (server-driven). It is the only component that
// writes the URL's lat/lng/radius parameters, via the commit callback.
//
// The centering latch distinguishes programmatic viewport changes
// (recentering to match a URL change, flying to a selected listing) from
// user-driven panning: while it is set, viewport move events are dropped so
// a programmatic move can never feed back into a new search.
//
// One coordinator exists per browser session. Handlers run on many
// goroutines, so all state is mutex-guarded.
type Coordinator struct {
	Timers         TimerFactory
	DebounceDelay  time.Duration
	FlyDuration    time.Duration
	ClearMargin    time.Duration
	FallbackCenter geo.Point

	mu            sync.Mutex
	mapCtl        MapController
	commit        func(url.Values)
	filter        Filter
	markers       []geo.Marker
	centering     bool
	cityPending   bool
	pendingBounds *geo.Bounds
	pendingCenter geo.Point
	debounce      Timer
	clearLatch    Timer
	closed        bool
}

// NewCoordinator creates a coordinator bound to a map controller and a URL
// commit callback.
func NewCoordinator(mapCtl MapController, commit func(url.Values)) *Coordinator {
	return &Coordinator{
		Timers:         StdTimers,
		DebounceDelay:  config.SearchDebounce,
		FlyDuration:    config.FlyToDuration,
		ClearMargin:    config.SuppressionMargin,
		FallbackCenter: geo.Point{Lat: config.DefaultCenterLat, Lng: config.DefaultCenterLng},
		mapCtl:         mapCtl,
		commit:         commit,
	}
}

// DeriveInitialCenter picks the initial map center for a search: an explicit
// URL center wins, then the centroid of the geolocated results, then the
// fallback location. Pure and deterministic.
func DeriveInitialCenter(f Filter, markers []geo.Marker, fallback geo.Point) geo.Point {
	if f.Center != nil {
		return *f.Center
	}
	points := make([]geo.Point, len(markers))
	for i, m := range markers {
		points[i] = m.Center
	}
	if c, ok := geo.Centroid(points); ok {
		return c
	}
	return fallback
}

// InitialCenter applies DeriveInitialCenter to the coordinator's state.
func (c *Coordinator) InitialCenter() geo.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return DeriveInitialCenter(c.filter, c.markers, c.FallbackCenter)
}

// SetFilter replaces the coordinator's filter snapshot, normally after a
// navigation established new URL state.
func (c *Coordinator) SetFilter(f Filter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// Filter returns the current filter snapshot.
func (c *Coordinator) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetResults replaces the result-set snapshot wholesale. Listings are never
// merged across fetches.
func (c *Coordinator) SetResults(markers []geo.Marker) {
	c.mu.Lock()
	c.markers = markers
	c.mu.Unlock()
}

// Suppressed reports whether a programmatic recenter is in flight.
func (c *Coordinator) Suppressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.centering
}

// CityLookupStarted marks that a freeform city search is being resolved to
// coordinates. Viewport moves are dropped until CityLookupFinished so a pan
// cannot race the city resolution's own URL update.
func (c *Coordinator) CityLookupStarted() {
	c.mu.Lock()
	c.cityPending = true
	c.mu.Unlock()
}

// CityLookupFinished clears the city-resolution latch.
func (c *Coordinator) CityLookupFinished() {
	c.mu.Lock()
	c.cityPending = false
	c.mu.Unlock()
}

// ViewportMoved handles a user-driven move-end event. It reports false when
// the event was dropped (programmatic recenter or city resolution in
// flight). Accepted events are debounced: the URL commit fires once the
// viewport has been still for DebounceDelay.
func (c *Coordinator) ViewportMoved(b geo.Bounds, center geo.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.centering || c.cityPending {
		return false
	}

	if c.debounce != nil {
		c.debounce.Cancel()
	}
	bc := b
	c.pendingBounds = &bc
	c.pendingCenter = center
	c.debounce = c.Timers(c.DebounceDelay, c.commitPending)
	return true
}

// Flush forces a pending debounced viewport commit to happen now, returning
// the committed URL values. Handlers call this after the client-side
// debounce has already coalesced move events, so the response can carry the
// new URL immediately.
func (c *Coordinator) Flush() (url.Values, bool) {
	c.mu.Lock()
	if c.pendingBounds == nil || c.closed {
		c.mu.Unlock()
		return nil, false
	}
	if c.debounce != nil {
		c.debounce.Cancel()
		c.debounce = nil
	}
	vals, commit := c.applyPendingLocked()
	c.mu.Unlock()

	if commit != nil {
		commit(vals)
	}
	return vals, true
}

func (c *Coordinator) commitPending() {
	c.mu.Lock()
	if c.closed || c.centering || c.pendingBounds == nil {
		c.mu.Unlock()
		return
	}
	vals, commit := c.applyPendingLocked()
	c.mu.Unlock()

	if commit != nil {
		commit(vals)
	}
}

// applyPendingLocked folds the pending viewport into the filter and builds
// the URL values. The city parameter is preserved so the server can fall
// back to text-based filtering. Callers must hold c.mu.
func (c *Coordinator) applyPendingLocked() (url.Values, func(url.Values)) {
	center := c.pendingCenter
	c.filter.Center = &center
	c.filter.RadiusMeters = geo.RadiusMeters(*c.pendingBounds)
	c.pendingBounds = nil
	return c.filter.Values(), c.commit
}

// URLCenterChanged handles an external change to the URL's lat/lng (back
// navigation, pasted link, resolved city search). When the map center
// diverges by more than ~1km the coordinator flies the map there, holding
// the suppression latch until the animation has finished plus a safety
// margin, because the final move-end event fires asynchronously after the
// animation completes.
func (c *Coordinator) URLCenterChanged(lat, lng float64) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	target := geo.Point{Lat: lat, Lng: lng}
	c.filter.Center = &target

	current := c.mapCtl.Bounds().Center()
	if math.Abs(current.Lat-lat) <= recenterThresholdDeg &&
		math.Abs(current.Lng-lng) <= recenterThresholdDeg {
		c.mu.Unlock()
		return
	}

	zoom := c.mapCtl.Zoom()
	c.flyLocked(target, zoom)
	c.mu.Unlock()
}

// ListingSelected flies the map to the selected listing, zooming in to at
// least selectZoom. Reports false when the listing is not in the current
// result set or has no coordinates.
func (c *Coordinator) ListingSelected(id int64) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	var target *geo.Point
	for _, m := range c.markers {
		if m.ID == id {
			p := m.Center
			target = &p
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return false
	}

	zoom := math.Max(c.mapCtl.Zoom(), selectZoom)
	c.flyLocked(*target, zoom)
	c.mu.Unlock()
	return true
}

// flyLocked performs a programmatic move: drop any pending user-move
// commit, set the suppression latch, fly, and schedule the latch clear.
// Callers must hold c.mu.
func (c *Coordinator) flyLocked(target geo.Point, zoom float64) {
	if c.debounce != nil {
		c.debounce.Cancel()
		c.debounce = nil
	}
	c.pendingBounds = nil

	c.centering = true
	if c.clearLatch != nil {
		c.clearLatch.Cancel()
	}
	c.clearLatch = c.Timers(c.FlyDuration+c.ClearMargin, func() {
		c.mu.Lock()
		c.centering = false
		c.mu.Unlock()
	})

	c.mapCtl.FlyTo(target, zoom, c.FlyDuration)
}

// Close cancels all outstanding timers. The coordinator drops every event
// after Close; it is called when the owning session is destroyed.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.debounce != nil {
		c.debounce.Cancel()
		c.debounce = nil
	}
	if c.clearLatch != nil {
		c.clearLatch.Cancel()
		c.clearLatch = nil
	}
	c.pendingBounds = nil
}
