package search

import (
	"sync"
	"time"

	"github.com/roam-rides/site/geo"
)

// FlyToCommand is a programmatic map move waiting to be delivered to the
// browser on the next render.
type FlyToCommand struct {
	Center   geo.Point
	Zoom     float64
	Duration time.Duration
}

// BrowserMap implements MapController for a map that actually lives in the
// browser: the viewport mirrors what the client last reported, and FlyTo
// calls are recorded as commands the next response renders as directives.
type BrowserMap struct {
	mu      sync.Mutex
	bounds  geo.Bounds
	zoom    float64
	pending []FlyToCommand
}

// NewBrowserMap creates a browser map mirror with an initial viewport.
func NewBrowserMap(bounds geo.Bounds, zoom float64) *BrowserMap {
	return &BrowserMap{bounds: bounds, zoom: zoom}
}

// Report records the viewport the client just sent.
func (m *BrowserMap) Report(bounds geo.Bounds, zoom float64) {
	m.mu.Lock()
	m.bounds = bounds
	m.zoom = zoom
	m.mu.Unlock()
}

// FlyTo queues a programmatic move for delivery to the browser and updates
// the mirrored viewport optimistically so a subsequent center comparison
// sees the post-fly position.
func (m *BrowserMap) FlyTo(center geo.Point, zoom float64, duration time.Duration) {
	m.mu.Lock()
	m.pending = append(m.pending, FlyToCommand{Center: center, Zoom: zoom, Duration: duration})
	halfLat := (m.bounds.North - m.bounds.South) / 2
	halfLng := (m.bounds.East - m.bounds.West) / 2
	m.bounds = geo.Bounds{
		North: center.Lat + halfLat,
		South: center.Lat - halfLat,
		East:  center.Lng + halfLng,
		West:  center.Lng - halfLng,
	}
	m.zoom = zoom
	m.mu.Unlock()
}

// Zoom returns the mirrored zoom level.
func (m *BrowserMap) Zoom() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zoom
}

// Bounds returns the mirrored viewport bounds.
func (m *BrowserMap) Bounds() geo.Bounds {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

// TakeFlyTo returns and clears the queued fly-to commands.
func (m *BrowserMap) TakeFlyTo() []FlyToCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmds := m.pending
	m.pending = nil
	return cmds
}
