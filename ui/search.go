package ui

import (
	"fmt"
	"net/url"
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/geocode"
	"github.com/roam-rides/site/search"
)

// SearchContainer hosts the search widget and the self-loading results
// fragment.
func SearchContainer(f search.Filter, view string) g.Node {
	return Div(
		ID("searchContainer"),
		SearchWidget(f),
		searchResults(f, view),
	)
}

// SearchWidget is the filter form. Every change re-runs the search into
// the results container; the destination field autocompletes through the
// geocoder with a debounced keystroke trigger.
func SearchWidget(f search.Filter) g.Node {
	return Form(
		ID("searchWidget"),
		Class("flex flex-col gap-3 border rounded-lg p-4 mb-4"),
		hx.Get("/search"),
		hx.Target("#searchResults"),
		hx.Swap("outerHTML"),
		hx.Include("form"),
		destinationBox(f.City),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-3"),
			dateInput("startAt", "From", f.StartAt),
			dateInput("endAt", "Until", f.EndAt),
			selectInput("type", "Vehicle", f.Type, [][2]string{
				{search.TypeCar, "Car"},
				{search.TypeVan, "Van"},
				{search.TypeCamper, "Camper"},
				{search.TypeMotorcycle, "Motorcycle"},
			}),
			selectInput("sortBy", "Sort by", f.SortBy, [][2]string{
				{"", "Relevance"},
				{"price_asc", "Price: low to high"},
				{"price_desc", "Price: high to low"},
				{"newest", "Newest"},
			}),
		),
		Div(
			Class("grid grid-cols-3 gap-3"),
			selectInput("category", "Category", f.Category, [][2]string{
				{"", "Any category"},
				{"economy", "Economy"},
				{"compact", "Compact"},
				{"suv", "SUV"},
				{"luxury", "Luxury"},
			}),
			selectInput("transmission", "Transmission", f.Transmission, [][2]string{
				{"", "Any transmission"},
				{"manual", "Manual"},
				{"automatic", "Automatic"},
			}),
			selectInput("fuelType", "Fuel", f.FuelType, [][2]string{
				{"", "Any fuel"},
				{"petrol", "Petrol"},
				{"diesel", "Diesel"},
				{"electric", "Electric"},
				{"hybrid", "Hybrid"},
			}),
		),
	)
}

// destinationBox is the freeform city input with address autocomplete. The
// hidden lat/lng inputs are filled by selectDestination when a suggestion
// carries coordinates.
func destinationBox(city string) g.Node {
	return Div(
		Class("relative"),
		Input(Type("hidden"), ID("destinationLat"), Name("lat")),
		Input(Type("hidden"), ID("destinationLng"), Name("lng")),
		Input(
			Class("w-full p-2 border rounded"),
			Type("search"),
			ID("destinationBox"),
			Name("city"),
			Value(city),
			g.Attr("autocomplete", "off"),
			Placeholder("Where do you want to pick up?"),
			hx.Get("/api/geocode"),
			hx.Trigger("input changed delay:300ms, focus"),
			hx.Target("#destinationSuggestions"),
			hx.Swap("innerHTML"),
		),
		Div(
			ID("destinationSuggestions"),
			Class("absolute z-40 w-full"),
		),
		loadingIndicator(),
	)
}

func dateInput(name, label string, value time.Time) g.Node {
	val := ""
	if !value.IsZero() {
		// datetime-local inputs reject RFC3339 values.
		val = value.Format("2006-01-02T15:04")
	}
	return Div(
		Label(Class("block text-xs text-gray-500 mb-1"), g.Text(label)),
		Input(
			Class("w-full p-2 border rounded"),
			Type("datetime-local"),
			Name(name),
			Value(val),
			hx.Trigger("change"),
		),
	)
}

func selectInput(name, label, selected string, options [][2]string) g.Node {
	var opts []g.Node
	for _, o := range options {
		attrs := []g.Node{Value(o[0]), g.Text(o[1])}
		if o[0] == selected {
			attrs = append(attrs, Selected())
		}
		opts = append(opts, Option(attrs...))
	}
	return Div(
		Label(Class("block text-xs text-gray-500 mb-1"), g.Text(label)),
		Select(
			append([]g.Node{Class("w-full p-2 border rounded"), Name(name), hx.Trigger("change")}, opts...)...,
		),
	)
}

// searchResults is the self-loading results container.
func searchResults(f search.Filter, view string) g.Node {
	return Div(
		ID("searchResults"),
		hx.Get("/search?view="+view+"&"+f.Values().Encode()),
		hx.Trigger("load"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
	)
}

// ViewToggleButtons switches between the list and the map presentation.
func ViewToggleButtons(activeView string) g.Node {
	button := func(view, label string) g.Node {
		cls := "px-4 py-1 rounded-full border-2 text-sm "
		if activeView == view {
			cls += "border-blue-500 bg-blue-100"
		} else {
			cls += "border-transparent hover:bg-gray-100"
		}
		return Button(
			Class(cls),
			hx.Post("/view/"+view),
			hx.Target("#searchResults"),
			hx.Swap("outerHTML"),
			hx.Include("#searchWidget"),
			g.Text(label),
		)
	}
	return Div(
		Class("flex justify-end gap-2 mb-4"),
		button("list", "List"),
		button("map", "Map"),
	)
}

// ---- Autocomplete dropdown ----

// GeocodeSuggestions renders the address candidates. Picking one fills the
// city field and the hidden coordinates, then re-runs the search.
func GeocodeSuggestions(candidates []geocode.Candidate) g.Node {
	if len(candidates) == 0 {
		return g.Text("")
	}

	var items []g.Node
	for _, cand := range candidates {
		city := cand.City
		if city == "" {
			city = cand.Address
		}
		items = append(items, Div(
			Class("p-2 hover:bg-gray-100 cursor-pointer text-sm"),
			g.Attr("onclick", fmt.Sprintf(
				"selectDestination(%q, %f, %f)", city, cand.Lat, cand.Lng)),
			Div(Class("font-medium"), g.Text(city)),
			Div(Class("text-xs text-gray-500 truncate"), g.Text(cand.Address)),
		))
	}

	return dropdown(items...)
}

// RecentSearches shows the session's recent destinations when the box is
// focused but still empty.
func RecentSearches(destinations []string) g.Node {
	if len(destinations) == 0 {
		return g.Text("")
	}

	items := []g.Node{
		Div(Class("px-2 pt-2 text-xs text-gray-400 uppercase"), g.Text("Recent")),
	}
	for _, dest := range destinations {
		items = append(items, Div(
			Class("p-2 hover:bg-gray-100 cursor-pointer text-sm"),
			g.Attr("onclick", fmt.Sprintf("selectDestination(%q, 0, 0)", dest)),
			g.Text(dest),
		))
	}

	return dropdown(items...)
}

// GeocodeConfigError is shown when no geocoder API key is configured.
func GeocodeConfigError() g.Node {
	return dropdown(Div(
		Class("p-2 text-sm text-red-600"),
		g.Text("Address lookup is not configured. Searching by city name instead."),
	))
}

// GeocodeError offers a retry, and search still works via the plain city
// text filter.
func GeocodeError(q string) g.Node {
	return dropdown(Div(
		Class("p-2 text-sm text-red-600 flex items-center justify-between"),
		Span(g.Text("Address lookup failed.")),
		Button(
			Type("button"),
			Class("underline font-semibold"),
			hx.Get("/api/geocode?city="+url.QueryEscape(q)),
			hx.Target("#destinationSuggestions"),
			hx.Swap("innerHTML"),
			g.Text("Retry"),
		),
	))
}

func dropdown(items ...g.Node) g.Node {
	return Div(
		Class("bg-white border rounded-b shadow-lg divide-y"),
		g.Group(items),
	)
}
