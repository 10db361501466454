package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/roam-rides/site/config"
)

// newTestCtx builds a Fiber context for a plain GET request.
func newTestCtx(app *fiber.App, uri string) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI(uri)
	return ctx
}

func TestParseViewport(t *testing.T) {
	app := fiber.New()

	tests := []struct {
		name      string
		uri       string
		expectOK  bool
		checkZoom float64
	}{
		{
			name:      "valid viewport",
			uri:       "/search/viewport?north=48.9&south=48.8&east=2.4&west=2.3&zoom=13",
			expectOK:  true,
			checkZoom: 13,
		},
		{
			name:      "missing zoom falls back to default",
			uri:       "/search/viewport?north=48.9&south=48.8&east=2.4&west=2.3",
			expectOK:  true,
			checkZoom: config.DefaultZoom,
		},
		{
			name:     "missing bound",
			uri:      "/search/viewport?north=48.9&south=48.8&east=2.4",
			expectOK: false,
		},
		{
			name:     "non-numeric bound",
			uri:      "/search/viewport?north=abc&south=48.8&east=2.4&west=2.3",
			expectOK: false,
		},
		{
			name:     "inverted latitudes",
			uri:      "/search/viewport?north=48.8&south=48.9&east=2.4&west=2.3",
			expectOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestCtx(app, tt.uri)
			defer app.ReleaseCtx(ctx)

			bounds, zoom, ok := parseViewport(ctx)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, tt.checkZoom, zoom)
				assert.Greater(t, bounds.North, bounds.South)
			}
		})
	}
}

func TestGetView(t *testing.T) {
	app := fiber.New()

	// Query parameter wins.
	ctx := newTestCtx(app, "/search?view=map")
	assert.Equal(t, "map", getView(ctx))
	app.ReleaseCtx(ctx)

	// Unknown view falls back to the cookie.
	ctx = newTestCtx(app, "/search?view=carousel")
	ctx.Request().Header.SetCookie("last_view", "map")
	assert.Equal(t, "map", getView(ctx))
	app.ReleaseCtx(ctx)

	// No signal at all defaults to list.
	ctx = newTestCtx(app, "/search")
	assert.Equal(t, "list", getView(ctx))
	app.ReleaseCtx(ctx)
}

func TestQueryValues(t *testing.T) {
	app := fiber.New()
	ctx := newTestCtx(app, "/search?type=van&city=Lyon&lat=45.76")
	defer app.ReleaseCtx(ctx)

	values := queryValues(ctx)
	assert.Equal(t, "van", values.Get("type"))
	assert.Equal(t, "Lyon", values.Get("city"))
	assert.Equal(t, "45.76", values.Get("lat"))
}

func TestSheetEndpoints(t *testing.T) {
	app := fiber.New()
	app.Post("/sheet/advance", HandleSheetAdvance)
	app.Post("/sheet/release", HandleSheetRelease)
	app.Post("/sheet/:state", HandleSheetSet)

	tests := []struct {
		name          string
		uri           string
		cookie        string
		expectedState string
		expectStatus  int
	}{
		{
			name:          "advance from peek",
			uri:           "/sheet/advance",
			cookie:        "peek",
			expectedState: "mid",
			expectStatus:  fiber.StatusOK,
		},
		{
			name:          "advance wraps from full",
			uri:           "/sheet/advance",
			cookie:        "full",
			expectedState: "peek",
			expectStatus:  fiber.StatusOK,
		},
		{
			name:          "release snaps to nearest",
			uri:           "/sheet/release?height=50",
			expectedState: "mid",
			expectStatus:  fiber.StatusOK,
		},
		{
			name:         "release without height",
			uri:          "/sheet/release",
			expectStatus: fiber.StatusBadRequest,
		},
		{
			name:          "set explicit state",
			uri:           "/sheet/full",
			expectedState: "full",
			expectStatus:  fiber.StatusOK,
		},
		{
			name:         "set invalid state",
			uri:          "/sheet/sideways",
			expectStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.uri, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sheet_state", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectStatus, resp.StatusCode)
			if tt.expectedState != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), `data-state="`+tt.expectedState+`"`)
			}
		})
	}
}
