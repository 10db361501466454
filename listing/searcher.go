package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/roam-rides/site/api"
	"github.com/roam-rides/site/search"
)

// ErrSuperseded marks a search whose response arrived after a newer search
// was issued. Superseded results are discarded, never rendered.
var ErrSuperseded = errors.New("search superseded by newer request")

// Searcher serializes listing searches for one session. Issuing a new
// search aborts the in-flight one, so a stale response can never overwrite
// fresher results: last-write-wins applies only among requests that were
// not superseded.
type Searcher struct {
	client *api.Client

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current Page
}

// NewSearcher creates a searcher backed by the given API client.
func NewSearcher(client *api.Client) *Searcher {
	return &Searcher{client: client}
}

// Search fetches listings for the filter, aborting any in-flight search.
// When the returned error is ErrSuperseded or an abort, callers must drop
// the result silently; genuine failures come back with an empty page for
// inline error rendering.
func (s *Searcher) Search(ctx context.Context, f search.Filter) (Page, error) {
	s.mu.Lock()
	s.seq++
	mine := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	page, err := Search(ctx, s.client, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mine != s.seq {
		return Page{Items: []Summary{}}, ErrSuperseded
	}

	// Still the current request: release its context now instead of
	// holding it until the next search or session teardown.
	cancel()
	s.cancel = nil

	if err != nil {
		logSearchError(f, err)
		if api.IsAbort(err) {
			return Page{Items: []Summary{}}, ErrSuperseded
		}
		return Page{Items: []Summary{}}, err
	}
	s.current = page
	return page, nil
}

// Current returns the most recent successfully fetched page.
func (s *Searcher) Current() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.Items == nil {
		return Page{Items: []Summary{}}
	}
	return s.current
}
