package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clusterBounds = Bounds{North: 49.5, South: 48.0, East: 3.5, West: 1.5}

func TestClusterGroupsNearbyMarkers(t *testing.T) {
	// Two markers a few hundred meters apart, one far away. At a city-wide
	// zoom level the close pair merges into one cluster.
	markers := []Marker{
		{ID: 1, Center: Point{Lat: 48.8566, Lng: 2.3522}},
		{ID: 2, Center: Point{Lat: 48.8570, Lng: 2.3530}},
		{ID: 3, Center: Point{Lat: 49.0, Lng: 3.0}},
	}

	nodes := Cluster(markers, 10, clusterBounds, 14)
	require.Len(t, nodes, 2)

	// Clusters sort before points.
	assert.Equal(t, KindCluster, nodes[0].Kind)
	assert.Equal(t, 2, nodes[0].PointCount)
	assert.Equal(t, KindPoint, nodes[1].Kind)
	assert.Equal(t, int64(3), nodes[1].MarkerID)
}

func TestClusterCentroid(t *testing.T) {
	markers := []Marker{
		{ID: 1, Center: Point{Lat: 48.0, Lng: 2.0}},
		{ID: 2, Center: Point{Lat: 48.001, Lng: 2.001}},
	}

	nodes := Cluster(markers, 8, clusterBounds, 14)
	require.Len(t, nodes, 1)
	assert.Equal(t, KindCluster, nodes[0].Kind)
	assert.InDelta(t, 48.0005, nodes[0].Center.Lat, 1e-6)
	assert.InDelta(t, 2.0005, nodes[0].Center.Lng, 1e-6)
}

func TestClusterAboveMaxZoomNeverGroups(t *testing.T) {
	// Two listings at the exact same coordinates stay individually
	// selectable above the clustering zoom ceiling.
	markers := []Marker{
		{ID: 1, Center: Point{Lat: 48.8566, Lng: 2.3522}},
		{ID: 2, Center: Point{Lat: 48.8566, Lng: 2.3522}},
	}

	nodes := Cluster(markers, 15, clusterBounds, 14)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.Equal(t, KindPoint, n.Kind)
	}
}

func TestClusterDeterministic(t *testing.T) {
	markers := []Marker{
		{ID: 5, Center: Point{Lat: 48.9, Lng: 2.9}},
		{ID: 1, Center: Point{Lat: 48.8566, Lng: 2.3522}},
		{ID: 2, Center: Point{Lat: 48.8570, Lng: 2.3530}},
		{ID: 9, Center: Point{Lat: 49.2, Lng: 2.1}},
	}

	first := Cluster(markers, 11, clusterBounds, 14)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Cluster(markers, 11, clusterBounds, 14))
	}

	// Input order must not affect output either.
	reversed := []Marker{markers[3], markers[2], markers[1], markers[0]}
	assert.Equal(t, first, Cluster(reversed, 11, clusterBounds, 14))
}

func TestClusterDropsOffscreenMarkers(t *testing.T) {
	markers := []Marker{
		{ID: 1, Center: Point{Lat: 48.8566, Lng: 2.3522}},
		{ID: 2, Center: Point{Lat: 10.0, Lng: 100.0}},
	}

	nodes := Cluster(markers, 12, clusterBounds, 14)
	require.Len(t, nodes, 1)
	assert.Equal(t, int64(1), nodes[0].MarkerID)

	// Culling applies above the clustering ceiling too: only visible
	// markers become point nodes.
	nodes = Cluster(markers, 16, clusterBounds, 14)
	require.Len(t, nodes, 1)
	assert.Equal(t, int64(1), nodes[0].MarkerID)
}

func TestClusterPointCountsCoverAllVisibleMarkers(t *testing.T) {
	var markers []Marker
	for i := int64(1); i <= 20; i++ {
		markers = append(markers, Marker{
			ID:     i,
			Center: Point{Lat: 48.0 + float64(i)*0.01, Lng: 2.0 + float64(i)*0.01},
		})
	}

	nodes := Cluster(markers, 9, clusterBounds, 14)
	total := 0
	for _, n := range nodes {
		if n.Kind == KindCluster {
			assert.GreaterOrEqual(t, n.PointCount, 2)
			total += n.PointCount
		} else {
			total++
		}
	}
	assert.Equal(t, len(markers), total)
}

func TestClusterEmptyInput(t *testing.T) {
	assert.Empty(t, Cluster(nil, 10, clusterBounds, 14))
}
