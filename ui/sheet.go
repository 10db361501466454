package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/sheet"
)

// BottomSheet hosts the result list over the map on mobile. On large
// screens it collapses into a static side pane and the drag handle
// disappears. sheet.js drives drag-follow and posts taps and releases back.
func BottomSheet(state sheet.State, content g.Node) g.Node {
	return Div(
		ID("bottom-sheet"),
		Class("fixed bottom-0 left-0 right-0 z-30 bg-white rounded-t-2xl shadow-2xl flex flex-col lg:static lg:z-auto lg:rounded-none lg:shadow-none lg:!h-auto"),
		Style(fmt.Sprintf("height: %gvh", state.HeightVh())),
		g.Attr("data-state", string(state)),
		Div(
			ID("sheet-handle"),
			Class("flex justify-center py-3 cursor-grab lg:hidden"),
			Style("touch-action: none"),
			hx.Post("/sheet/advance"),
			hx.Target("#sheet-state"),
			hx.Swap("outerHTML"),
			Div(Class("w-10 h-1 rounded-full bg-gray-300")),
		),
		Div(
			ID("map-list-pane"),
			Class("overflow-y-auto h-full px-4 pb-4"),
			content,
		),
	)
}

// SheetUpdate is the response to a sheet transition: the state element that
// sheet.js reads to animate the sheet to its new snap height and toggle map
// interactivity.
func SheetUpdate(state sheet.State) g.Node {
	return sheetStateNode(state, false)
}

// sheetStateNode is the hidden element carrying the authoritative sheet
// state. With oob set it rides along other responses as an out-of-band swap.
func sheetStateNode(state sheet.State, oob bool) g.Node {
	return Div(
		ID("sheet-state"),
		Class("hidden"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Attr("data-state", string(state)),
		g.Attr("data-height-vh", fmt.Sprintf("%g", state.HeightVh())),
		g.Attr("data-map-interactive", fmt.Sprintf("%t", sheet.MapInteractive(state))),
	)
}
