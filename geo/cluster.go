package geo

import (
	"fmt"
	"math"
	"sort"
)

// Marker is a geolocated item to be placed on the map, identified by the
// listing it represents.
type Marker struct {
	ID     int64
	Center Point
}

// Node kinds returned by Cluster.
const (
	KindCluster = "cluster"
	KindPoint   = "point"
)

// ClusterNode is either a group of nearby markers or a single marker.
// For KindPoint, MarkerID identifies the underlying listing; for
// KindCluster, PointCount holds the group size.
type ClusterNode struct {
	Kind       string
	ID         string
	Center     Point
	PointCount int
	MarkerID   int64
}

// clusterRadiusPx is the screen-space grouping radius. Markers whose
// projected positions fall in the same cell of a grid this wide are merged.
const clusterRadiusPx = 60.0

// cellSizeDeg converts the pixel grouping radius into degrees of longitude
// at the given zoom level (256px tiles).
func cellSizeDeg(zoom float64) float64 {
	return 360.0 * clusterRadiusPx / (256.0 * math.Exp2(zoom))
}

// Cluster groups markers into cluster nodes for rendering. It is a pure
// function: identical inputs always produce identical output, including
// ordering, so repeated renders do not jitter markers.
//
// Above maxZoom every marker becomes its own point node, guaranteeing that
// co-located listings stay individually selectable at high zoom. Markers
// outside the viewport (plus one cell of margin) are dropped.
func Cluster(markers []Marker, zoom float64, bounds Bounds, maxZoom int) []ClusterNode {
	cell := cellSizeDeg(zoom)
	visible := bounds.Expand(cell)

	if zoom > float64(maxZoom) {
		nodes := make([]ClusterNode, 0, len(markers))
		for _, m := range markers {
			if !visible.Contains(m.Center) {
				continue
			}
			nodes = append(nodes, pointNode(m))
		}
		sortNodes(nodes)
		return nodes
	}

	type cellKey struct{ X, Y int }
	cells := make(map[cellKey][]Marker)
	for _, m := range markers {
		if !visible.Contains(m.Center) {
			continue
		}
		key := cellKey{
			X: int(math.Floor(m.Center.Lng / cell)),
			Y: int(math.Floor(m.Center.Lat / cell)),
		}
		cells[key] = append(cells[key], m)
	}

	nodes := make([]ClusterNode, 0, len(cells))
	for key, members := range cells {
		if len(members) == 1 {
			nodes = append(nodes, pointNode(members[0]))
			continue
		}
		points := make([]Point, len(members))
		for i, m := range members {
			points[i] = m.Center
		}
		center, _ := Centroid(points)
		nodes = append(nodes, ClusterNode{
			Kind:       KindCluster,
			ID:         fmt.Sprintf("cluster-%d-%d", key.X, key.Y),
			Center:     center,
			PointCount: len(members),
		})
	}

	sortNodes(nodes)
	return nodes
}

func pointNode(m Marker) ClusterNode {
	return ClusterNode{
		Kind:     KindPoint,
		ID:       fmt.Sprintf("listing-%d", m.ID),
		Center:   m.Center,
		MarkerID: m.ID,
	}
}

// sortNodes imposes a stable, deterministic order: clusters before points,
// then by node ID.
func sortNodes(nodes []ClusterNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Kind != nodes[j].Kind {
			return nodes[i].Kind == KindCluster
		}
		return nodes[i].ID < nodes[j].ID
	})
}
