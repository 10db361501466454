// Package geocode wraps the third-party address-suggestion API used by the
// destination search box.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/roam-rides/site/cache"
	"github.com/roam-rides/site/config"
)

// ErrNoToken is returned when no geocoder API key is configured. No network
// call is made in that case; the UI shows a configuration error and search
// falls back to plain-text city filtering.
var ErrNoToken = errors.New("geocoder API key not configured")

// Candidate is one address suggestion.
type Candidate struct {
	Address string
	City    string
	Country string
	Lat     float64
	Lng     float64
}

// Client queries the geocoding API, caching results per normalized query.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	cache      *cache.Cache[[]Candidate]
}

// New creates a geocoding client from configuration.
func New() (*Client, error) {
	c, err := cache.New[[]Candidate](func(v []Candidate) int64 {
		return int64(len(v)*80 + 1)
	}, "Geocode Cache")
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    config.GeocoderAPIURL,
		key:        config.GeocoderAPIKey,
		httpClient: &http.Client{},
		cache:      c,
	}, nil
}

// geocoderResult matches the LocationIQ/Nominatim response shape: lat/lon
// come back as strings.
type geocoderResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Suggest returns up to limit address candidates for partial text. A
// cancelled context aborts the in-flight request; callers distinguish
// aborts from genuine failures via context.Canceled.
func (c *Client) Suggest(ctx context.Context, text string, limit int) ([]Candidate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if c.key == "" {
		return nil, ErrNoToken
	}

	cacheKey := fmt.Sprintf("%s|%d", strings.ToLower(text), limit)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, config.GeocodeTimeout)
	defer cancel()

	u := c.baseURL + "?" + url.Values{
		"q":              {text},
		"key":            {c.key},
		"limit":          {strconv.Itoa(limit)},
		"format":         {"json"},
		"addressdetails": {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("geocoder: status %d", resp.StatusCode)
	}

	var results []geocoderResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoder: decode response: %w", err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		city := r.Address.City
		if city == "" {
			city = r.Address.Town
		}
		if city == "" {
			city = r.Address.Village
		}
		candidates = append(candidates, Candidate{
			Address: r.DisplayName,
			City:    city,
			Country: r.Address.Country,
			Lat:     lat,
			Lng:     lng,
		})
	}

	c.cache.SetWithTTL(cacheKey, candidates, int64(len(candidates)*80+1), 24*time.Hour)
	return candidates, nil
}

// Resolve geocodes a freeform city string to its best candidate. Callers
// fall back to text-based city filtering when resolution fails.
func (c *Client) Resolve(ctx context.Context, city string) (Candidate, error) {
	candidates, err := c.Suggest(ctx, city, 1)
	if err != nil {
		return Candidate{}, err
	}
	if len(candidates) == 0 {
		return Candidate{}, fmt.Errorf("geocoder: no results for %q", city)
	}
	return candidates[0], nil
}

// Stats exposes cache statistics for health reporting.
func (c *Client) Stats() map[string]any {
	return c.cache.Stats()
}
