package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/roam-rides/site/listing"
)

// ListResults renders the full-width list view fragment.
func ListResults(page listing.Page, loadErr bool) g.Node {
	viewContent := NoSearchResultsMessage()
	if len(page.Items) > 0 {
		viewContent = ListingsGrid(page.Items)
	}

	return Div(
		ID("searchResults"),
		ViewToggleButtons("list"),
		g.If(loadErr, searchErrorBanner()),
		resultCount(page.Total),
		viewContent,
	)
}

func searchErrorBanner() g.Node {
	return ErrorBanner("We couldn't load vehicles for this search.", "/search", "#searchResults")
}

func resultCount(total int) g.Node {
	if total == 0 {
		return g.Text("")
	}
	return P(Class("text-sm text-gray-500 mb-3"), g.Textf("%d vehicles", total))
}

// ListingsGrid lays the result cards out responsively.
func ListingsGrid(items []listing.Summary) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, ListingCard(item))
	}
	return Div(
		ID("listingsGrid"),
		Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4"),
		g.Group(nodes),
	)
}

// ListingCard is one search result. Clicking expands the detail fragment;
// the map pin button flies the map to the listing.
func ListingCard(item listing.Summary) g.Node {
	return Div(
		ID(listingDomID(item.ID)),
		Class("border rounded-lg shadow-sm bg-white flex flex-col cursor-pointer hover:shadow-md transition-shadow"),

		hx.Get(fmt.Sprintf("/listing/%d", item.ID)),
		hx.Target("#"+listingDomID(item.ID)),
		hx.Swap("outerHTML"),

		Div(
			Class("relative w-full h-40 bg-gray-100 rounded-t-lg overflow-hidden"),
			listingImage(item),
			Div(
				Class("absolute top-0 left-0 bg-white text-green-600 text-sm font-medium px-2 rounded-br-md"),
				g.Text(formatPrice(item.PricePerDayMinor, item.Currency)),
			),
		),
		Div(
			Class("p-2 flex flex-col gap-1"),
			Div(
				Class("flex flex-row items-center justify-between"),
				Div(Class("font-semibold text-base truncate"), g.Text(item.Title)),
				g.If(item.Latitude != nil && item.Longitude != nil, showOnMapButton(item.ID)),
			),
			Div(
				Class("text-xs text-gray-500"),
				g.Text(listingLocation(item)),
			),
		),
	)
}

func listingImage(item listing.Summary) g.Node {
	url := item.FirstPhotoURL()
	if url == "" {
		return Div(Class("w-full h-full flex items-center justify-center text-gray-400"), g.Text("No photo"))
	}
	return Img(
		Src(url),
		Alt(item.Title),
		Class("w-full h-full object-cover"),
		g.Attr("loading", "lazy"),
	)
}

func listingLocation(item listing.Summary) string {
	switch {
	case item.City != "" && item.Country != "":
		return item.City + ", " + item.Country
	case item.City != "":
		return item.City
	default:
		return item.Country
	}
}

func showOnMapButton(id int64) g.Node {
	return Button(
		Type("button"),
		Class("text-blue-500 text-sm hover:underline shrink-0"),
		g.Attr("onclick", "event.stopPropagation()"),
		hx.Post(fmt.Sprintf("/search/select/%d", id)),
		hx.Target("#map-directives"),
		hx.Swap("outerHTML"),
		g.Text("Map"),
	)
}

func listingDomID(id int64) string {
	return fmt.Sprintf("listing-card-%d", id)
}

// ListingDetail is the expanded card fragment.
func ListingDetail(d listing.Detail) g.Node {
	specs := []string{}
	if d.Year > 0 {
		specs = append(specs, fmt.Sprintf("%d", d.Year))
	}
	if d.Seats > 0 {
		specs = append(specs, fmt.Sprintf("%d seats", d.Seats))
	}
	if d.Transmission != "" {
		specs = append(specs, d.Transmission)
	}
	if d.FuelType != "" {
		specs = append(specs, d.FuelType)
	}

	specLine := ""
	for i, s := range specs {
		if i > 0 {
			specLine += " · "
		}
		specLine += s
	}

	return Div(
		ID(listingDomID(d.ID)),
		Class("border rounded-lg shadow-md bg-white flex flex-col"),
		Div(
			Class("relative w-full h-56 bg-gray-100 rounded-t-lg overflow-hidden"),
			listingImage(d.Summary),
		),
		Div(
			Class("p-3 flex flex-col gap-2"),
			Div(
				Class("flex items-center justify-between"),
				Div(Class("font-semibold text-lg"), g.Text(d.Title)),
				Div(Class("text-green-600 font-medium"), g.Text(formatPrice(d.PricePerDayMinor, d.Currency))),
			),
			g.If(specLine != "", Div(Class("text-sm text-gray-600"), g.Text(specLine))),
			g.If(d.RatingCount > 0, Div(
				Class("text-sm text-gray-600"),
				g.Textf("★ %.1f (%d reviews)", d.RatingAverage, d.RatingCount),
			)),
			g.If(d.Description != "", P(Class("text-sm text-gray-700"), g.Text(d.Description))),
			Div(
				Class("flex justify-end"),
				Button(
					Type("button"),
					Class("text-sm text-gray-500 hover:underline"),
					hx.Get("/search"),
					hx.Target("#searchResults"),
					hx.Swap("outerHTML"),
					hx.Include("#searchWidget"),
					g.Text("Back to results"),
				),
			),
		),
	)
}

// ListingDetailError replaces the card with an inline failure message.
func ListingDetailError(id int64) g.Node {
	return Div(
		ID(listingDomID(id)),
		Class("border rounded-lg bg-white p-4"),
		ErrorBanner("Couldn't load this vehicle.", fmt.Sprintf("/listing/%d", id), "#"+listingDomID(id)),
	)
}
