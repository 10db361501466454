package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roam-rides/site/search"
)

func TestSearcherSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"id": 1, "title": "Clio"}], "total": 1}`))
	}))
	defer server.Close()

	s := NewSearcher(testClient(server.URL))
	page, err := s.Search(context.Background(), search.Filter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, page, s.Current())
}

func TestSearcherNewerRequestWins(t *testing.T) {
	slowArrived := make(chan struct{})
	releaseSlow := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("city") == "Slow" {
			close(slowArrived)
			select {
			case <-releaseSlow:
			case <-r.Context().Done():
				return
			}
			w.Write([]byte(`{"items": [{"id": 1, "title": "Stale"}], "total": 1}`))
			return
		}
		w.Write([]byte(`{"items": [{"id": 2, "title": "Fresh"}], "total": 1}`))
	}))
	defer server.Close()

	s := NewSearcher(testClient(server.URL))

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = s.Search(context.Background(), search.Filter{City: "Slow"})
	}()

	// Issue the newer search only after the older one is in flight.
	<-slowArrived
	page, err := s.Search(context.Background(), search.Filter{City: "Fresh"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Fresh", page.Items[0].Title)

	close(releaseSlow)
	wg.Wait()

	// The superseded search must report as such and leave no trace in the
	// current page.
	assert.ErrorIs(t, slowErr, ErrSuperseded)
	assert.Equal(t, "Fresh", s.Current().Items[0].Title)
}

func TestSearcherAbortReportsSuperseded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	s := NewSearcher(testClient(server.URL))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := s.Search(ctx, search.Filter{})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled search did not return")
	}
}

func TestSearcherReleasesContextWhenDone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [], "total": 0}`))
	}))
	defer server.Close()

	s := NewSearcher(testClient(server.URL))
	_, err := s.Search(context.Background(), search.Filter{})
	require.NoError(t, err)

	// A completed search that was not superseded must not keep its cancel
	// function around until the next search or session teardown.
	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Nil(t, s.cancel)
}

func TestSearcherCurrentEmptyBeforeFirstSearch(t *testing.T) {
	s := NewSearcher(testClient("http://unused"))
	page := s.Current()
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
