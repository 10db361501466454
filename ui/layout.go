package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/config"
)

// ---- Page Layout ----

func Page(title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			// Leaflet CSS for map functionality
			Link(
				Rel("stylesheet"),
				Href(config.LeafletCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			// Leaflet JS for map functionality
			Script(
				Type("text/javascript"),
				Src(config.LeafletJSURL),
				Defer(),
			),
			// Map viewport wiring (move-end events, markers, fly-to)
			Script(
				Type("text/javascript"),
				Src("/js/map.js"),
				Defer(),
			),
			// Bottom sheet drag/tap gestures
			Script(
				Type("text/javascript"),
				Src("/js/sheet.js"),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-6"),
				navigation(),
				g.Group(content),
			),
		},
	})
}

func navigation() g.Node {
	return Nav(
		Class("flex items-center justify-between mb-6"),
		A(Href("/"), Class("text-2xl font-bold text-blue-600"), g.Text("RoamRides")),
		Div(
			Class("flex gap-4 text-sm text-gray-600"),
			A(Href("/?type=car"), Class("hover:text-blue-600"), g.Text("Cars")),
			A(Href("/?type=van"), Class("hover:text-blue-600"), g.Text("Vans")),
			A(Href("/?type=camper"), Class("hover:text-blue-600"), g.Text("Campers")),
			A(Href("/?type=motorcycle"), Class("hover:text-blue-600"), g.Text("Motorcycles")),
		),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-3xl font-bold mb-6"), g.Text(text))
}
