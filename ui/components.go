package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Message Components ----

func NoSearchResultsMessage() g.Node {
	return Div(
		Class("text-center text-gray-500 py-12"),
		P(Class("text-lg"), g.Text("No vehicles found for this search.")),
		P(Class("text-sm mt-2"), g.Text("Try widening the map area or changing the dates.")),
	)
}

// ErrorBanner is the inline, dismissible failure message scoped to the
// widget that failed. Search errors render this instead of crashing the
// page.
func ErrorBanner(message, retryURL, retryTarget string) g.Node {
	return Div(
		Class("flex items-center justify-between bg-red-100 border border-red-400 text-red-700 px-4 py-3 rounded mb-4"),
		Span(g.Text(message)),
		Div(
			Class("flex gap-3 items-center"),
			g.If(retryURL != "", Button(
				Type("button"),
				Class("text-sm font-semibold underline"),
				hx.Get(retryURL),
				hx.Target(retryTarget),
				hx.Swap("outerHTML"),
				g.Text("Retry"),
			)),
			Button(
				Type("button"),
				Class("text-sm font-semibold"),
				g.Attr("onclick", "this.closest('div.flex.items-center.justify-between').remove()"),
				g.Text("✕"),
			),
		),
	)
}

func loadingIndicator() g.Node {
	return Div(
		Class("htmx-indicator text-sm text-gray-400 py-2"),
		g.Text("Loading…"),
	)
}

// formatPrice renders a minor-unit price as "€42/day".
func formatPrice(minor int64, currency string) string {
	symbol := currency
	switch currency {
	case "EUR":
		symbol = "€"
	case "USD":
		symbol = "$"
	case "GBP":
		symbol = "£"
	}
	if minor%100 == 0 {
		return fmt.Sprintf("%s%d/day", symbol, minor/100)
	}
	return fmt.Sprintf("%s%.2f/day", symbol, float64(minor)/100)
}
