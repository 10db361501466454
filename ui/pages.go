package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/search"
	"github.com/roam-rides/site/sheet"
)

// HomePage is the search page shell. The results fragment loads itself via
// htmx; the sheet state element seeds sheet.js with the last-used snap
// position.
func HomePage(f search.Filter, view string, sheetState sheet.State) g.Node {
	return Page("RoamRides - Rent cars, vans and campers", []g.Node{
		pageHeader("Find your ride"),
		sheetStateNode(sheetState, false),
		SearchContainer(f, view),
	})
}

// ErrorPage renders a full error page for unhandled handler errors.
func ErrorPage(code int, message string) g.Node {
	return Page(fmt.Sprintf("Error %d", code), []g.Node{
		Div(
			Class("text-center py-20"),
			H1(Class("text-5xl font-bold text-gray-300 mb-4"), g.Textf("%d", code)),
			P(Class("text-lg text-gray-600 mb-8"), g.Text(message)),
			A(Href("/"), Class("text-blue-600 hover:underline"), g.Text("Back to search")),
		),
	})
}
