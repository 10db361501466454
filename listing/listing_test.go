package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roam-rides/site/api"
	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/search"
)

func testClient(serverURL string) *api.Client {
	return &api.Client{
		BaseURL:    serverURL,
		HTTPClient: &http.Client{},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("city"))
		assert.NotEmpty(t, r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": 1,
					"title": "Renault Clio",
					"city": "Paris",
					"latitude": 48.85,
					"longitude": 2.35,
					"pricePerDayMinor": 4200,
					"currency": "EUR",
					"photos": [
						{"url": "https://img.example/b.jpg", "order": 2},
						{"url": "https://img.example/a.jpg", "order": 1}
					],
					"type": "car"
				}
			],
			"total": 37
		}`))
	}))
	defer server.Close()

	page, err := Search(context.Background(), testClient(server.URL), search.Filter{Type: "car", City: "Paris"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 37, page.Total)

	item := page.Items[0]
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Renault Clio", item.Title)

	// Photos come back sorted by order, so the first URL is the cover.
	assert.Equal(t, "https://img.example/a.jpg", item.FirstPhotoURL())
}

func TestSearchCoercesPartialResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Missing items, total lower than plausible.
		w.Write([]byte(`{"total": 0}`))
	}))
	defer server.Close()

	page, err := Search(context.Background(), testClient(server.URL), search.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestSearchTotalNeverBelowItemCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}], "total": 1}`))
	}))
	defer server.Close()

	page, err := Search(context.Background(), testClient(server.URL), search.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	page, err := Search(context.Background(), testClient(server.URL), search.Filter{})
	assert.Error(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestMarkers(t *testing.T) {
	items := []Summary{
		{ID: 1, Latitude: floatPtr(48.85), Longitude: floatPtr(2.35)},
		{ID: 2}, // no coordinates, not placeable
		{ID: 3, Latitude: floatPtr(45.76), Longitude: floatPtr(4.84)},
	}

	markers := Markers(items)
	require.Len(t, markers, 2)
	assert.Equal(t, geo.Marker{ID: 1, Center: geo.Point{Lat: 48.85, Lng: 2.35}}, markers[0])
	assert.Equal(t, int64(3), markers[1].ID)
}

func TestByID(t *testing.T) {
	items := []Summary{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	m := ByID(items)
	require.Len(t, m, 2)
	assert.Equal(t, "B", m[2].Title)
}

func TestFirstPhotoURLEmpty(t *testing.T) {
	assert.Empty(t, Summary{}.FirstPhotoURL())
}
