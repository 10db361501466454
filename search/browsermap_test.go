package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roam-rides/site/geo"
)

func TestBrowserMapReport(t *testing.T) {
	m := NewBrowserMap(geo.Bounds{North: 1, South: -1, East: 1, West: -1}, 10)

	reported := geo.Bounds{North: 48.9, South: 48.8, East: 2.4, West: 2.3}
	m.Report(reported, 13)

	assert.Equal(t, reported, m.Bounds())
	assert.Equal(t, 13.0, m.Zoom())
}

func TestBrowserMapFlyToQueuesAndRecenters(t *testing.T) {
	m := NewBrowserMap(geo.Bounds{North: 48.9, South: 48.8, East: 2.4, West: 2.3}, 11)

	target := geo.Point{Lat: 45.76, Lng: 4.84}
	m.FlyTo(target, 12, 700*time.Millisecond)

	cmds := m.TakeFlyTo()
	require.Len(t, cmds, 1)
	assert.Equal(t, target, cmds[0].Center)
	assert.Equal(t, 12.0, cmds[0].Zoom)
	assert.Equal(t, 700*time.Millisecond, cmds[0].Duration)

	// The mirrored viewport follows the fly optimistically, keeping the
	// original span.
	b := m.Bounds()
	center := b.Center()
	assert.InDelta(t, target.Lat, center.Lat, 1e-9)
	assert.InDelta(t, target.Lng, center.Lng, 1e-9)
	assert.InDelta(t, 0.1, b.North-b.South, 1e-9)
	assert.Equal(t, 12.0, m.Zoom())
}

func TestBrowserMapTakeFlyToDrains(t *testing.T) {
	m := NewBrowserMap(geo.Bounds{North: 1, South: -1, East: 1, West: -1}, 10)

	m.FlyTo(geo.Point{Lat: 1, Lng: 1}, 10, time.Second)
	m.FlyTo(geo.Point{Lat: 2, Lng: 2}, 11, time.Second)

	assert.Len(t, m.TakeFlyTo(), 2)
	assert.Empty(t, m.TakeFlyTo())
}
