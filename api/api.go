// Package api is the JSON client for the rental API server, which owns all
// business rules: listings, pricing, bookings, users. This app only renders
// what the API returns.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/roam-rides/site/config"
)

// Client issues requests against the rental API. The zero timeout on the
// embedded http.Client is deliberate: every call carries a context with the
// hard fetch deadline, so cancellation and timeout flow through one place.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a client for the configured rental API server.
func New() *Client {
	return &Client{
		BaseURL:    config.RentalAPIURL,
		Token:      config.RentalAPIToken,
		HTTPClient: &http.Client{},
	}
}

// IsAbort reports whether err is a cancellation rather than a genuine
// failure. Superseded requests are aborted by design and must not be
// surfaced as errors.
func IsAbort(err error) bool {
	return errors.Is(err, context.Canceled)
}

// GetJSON fetches path with the given query parameters and decodes the JSON
// response into out. The request is bounded by config.FetchTimeout in
// addition to whatever deadline ctx already carries.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, config.FetchTimeout)
	defer cancel()

	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("api: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api: %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s response: %w", path, err)
	}
	return nil
}
