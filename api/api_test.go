package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("city"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 3}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, Token: "secret", HTTPClient: &http.Client{}}

	var out struct {
		Total int `json:"total"`
	}
	err := client.GetJSON(context.Background(), "/listings", url.Values{"city": {"Paris"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
}

func TestGetJSONNoTokenOmitsHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: &http.Client{}}
	var out map[string]any
	assert.NoError(t, client.GetJSON(context.Background(), "/listings", nil, &out))
}

func TestGetJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: &http.Client{}}
	var out map[string]any
	err := client.GetJSON(context.Background(), "/listings", nil, &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.False(t, IsAbort(err))
}

func TestGetJSONMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: &http.Client{}}
	var out map[string]any
	err := client.GetJSON(context.Background(), "/listings", nil, &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestGetJSONCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &Client{BaseURL: server.URL, HTTPClient: &http.Client{}}
	var out map[string]any
	err := client.GetJSON(ctx, "/listings", nil, &out)
	require.Error(t, err)
	assert.True(t, IsAbort(err))
}
