package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/listing"
	"github.com/roam-rides/site/search"
	"github.com/roam-rides/site/sheet"
)

// MapResultsProps carries everything the map view fragment needs.
type MapResultsProps struct {
	Page       listing.Page
	ByID       map[int64]listing.Summary
	Nodes      []geo.ClusterNode
	Center     geo.Point
	Zoom       float64
	FlyTo      []search.FlyToCommand
	SheetState sheet.State
	LoadErr    bool
}

// MapResults renders the map view: a Leaflet container seeded via data
// attributes, hidden marker/cluster data that map.js turns into pins, the
// pending fly-to directives, and the result list in the bottom sheet.
func MapResults(props MapResultsProps) g.Node {
	return Div(
		ID("searchResults"),
		ViewToggleButtons("map"),
		Div(ID("map-error"), g.If(props.LoadErr, searchErrorBanner())),
		Div(
			Class("relative lg:grid lg:grid-cols-[2fr_1fr] lg:gap-4"),
			Div(
				ID("map"),
				Class("w-full rounded-lg z-0"),
				Style("height: 70vh"),
				g.Attr("data-center-lat", formatCoord(props.Center.Lat)),
				g.Attr("data-center-lng", formatCoord(props.Center.Lng)),
				g.Attr("data-zoom", fmt.Sprintf("%g", props.Zoom)),
			),
			mapData(props.Nodes, props.ByID),
			MapDirectives(props.FlyTo),
			BottomSheet(props.SheetState, mapListContent(props.Page)),
		),
	)
}

// MapUpdate is the viewport-move response: fresh marker data swapped in
// place, with the list pane and the error slot updated out of band.
func MapUpdate(nodes []geo.ClusterNode, byID map[int64]listing.Summary, page listing.Page, loadErr bool) g.Node {
	errSlot := Div(ID("map-error"), g.Attr("hx-swap-oob", "true"))
	if loadErr {
		errSlot = Div(ID("map-error"), g.Attr("hx-swap-oob", "true"), searchErrorBanner())
	}

	return g.Group([]g.Node{
		mapData(nodes, byID),
		Div(
			ID("map-list-pane"),
			g.Attr("hx-swap-oob", "true"),
			Class("overflow-y-auto h-full px-4 pb-4"),
			mapListContent(page),
		),
		errSlot,
	})
}

// SelectResponse answers a listing selection: new fly-to directives for the
// map and the sheet dropped back to peek so the move is visible.
func SelectResponse(id int64, cmds []search.FlyToCommand, state sheet.State) g.Node {
	return g.Group([]g.Node{
		MapDirectives(cmds),
		sheetStateNode(state, true),
	})
}

// mapData is the hidden marker payload map.js reads on every swap.
func mapData(nodes []geo.ClusterNode, byID map[int64]listing.Summary) g.Node {
	children := make([]g.Node, 0, len(nodes))
	for _, node := range nodes {
		children = append(children, mapNode(node, byID))
	}
	return Div(
		ID("map-data"),
		Class("hidden"),
		g.Group(children),
	)
}

func mapNode(node geo.ClusterNode, byID map[int64]listing.Summary) g.Node {
	attrs := []g.Node{
		Class("map-node"),
		g.Attr("data-kind", node.Kind),
		g.Attr("data-id", node.ID),
		g.Attr("data-lat", formatCoord(node.Center.Lat)),
		g.Attr("data-lng", formatCoord(node.Center.Lng)),
	}

	if node.Kind == geo.KindCluster {
		attrs = append(attrs, g.Attr("data-count", fmt.Sprintf("%d", node.PointCount)))
		return Div(attrs...)
	}

	attrs = append(attrs, g.Attr("data-listing-id", fmt.Sprintf("%d", node.MarkerID)))
	if item, ok := byID[node.MarkerID]; ok {
		attrs = append(attrs,
			g.Attr("data-title", item.Title),
			g.Attr("data-price", formatPrice(item.PricePerDayMinor, item.Currency)),
		)
		if url := item.FirstPhotoURL(); url != "" {
			attrs = append(attrs, g.Attr("data-image", url))
		}
	}
	return Div(attrs...)
}

// MapDirectives renders queued programmatic map moves. map.js executes each
// one with Leaflet's flyTo and marks the move as programmatic so the
// resulting move-end event is not reported back as a user pan.
func MapDirectives(cmds []search.FlyToCommand) g.Node {
	children := make([]g.Node, 0, len(cmds))
	for _, cmd := range cmds {
		children = append(children, Div(
			Class("fly-to"),
			g.Attr("data-lat", formatCoord(cmd.Center.Lat)),
			g.Attr("data-lng", formatCoord(cmd.Center.Lng)),
			g.Attr("data-zoom", fmt.Sprintf("%g", cmd.Zoom)),
			g.Attr("data-duration-ms", fmt.Sprintf("%d", cmd.Duration.Milliseconds())),
		))
	}
	return Div(
		ID("map-directives"),
		Class("hidden"),
		g.Group(children),
	)
}

func mapListContent(page listing.Page) g.Node {
	if len(page.Items) == 0 {
		return NoSearchResultsMessage()
	}
	return g.Group([]g.Node{
		resultCount(page.Total),
		Div(
			Class("grid grid-cols-1 gap-4"),
			g.Group(mapListCards(page.Items)),
		),
	})
}

func mapListCards(items []listing.Summary) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, ListingCard(item))
	}
	return nodes
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
