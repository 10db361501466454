package handlers

import (
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/config"
	"github.com/roam-rides/site/cookie"
	"github.com/roam-rides/site/geo"
	"github.com/roam-rides/site/listing"
	"github.com/roam-rides/site/search"
)

// searchSession is the per-browser search state: the viewport coordinator,
// the supersede-safe searcher, and the mirrored browser map.
type searchSession struct {
	id         string
	coord      *search.Coordinator
	searcher   *listing.Searcher
	browserMap *search.BrowserMap

	mu       sync.Mutex
	lastSeen time.Time
	pushURL  string
}

func newSearchSession(id string) *searchSession {
	center := geo.Point{Lat: config.DefaultCenterLat, Lng: config.DefaultCenterLng}
	s := &searchSession{
		id:         id,
		browserMap: search.NewBrowserMap(geo.BoundsAround(center, 5000), config.DefaultZoom),
		searcher:   listing.NewSearcher(apiClient),
	}
	s.coord = search.NewCoordinator(s.browserMap, func(v url.Values) {
		s.setPushURL("/?" + v.Encode())
	})
	return s
}

// setPushURL records the canonical search URL committed by the coordinator.
func (s *searchSession) setPushURL(u string) {
	s.mu.Lock()
	s.pushURL = u
	s.mu.Unlock()
}

// lastPushURL returns the most recently committed search URL.
func (s *searchSession) lastPushURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushURL
}

func (s *searchSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *searchSession) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// sessionStore holds live search sessions keyed by session cookie. Expired
// sessions are swept and their coordinators closed, so debounce and
// suppression timers never leak across logical sessions.
type sessionStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*searchSession
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]*searchSession),
	}
}

// get returns the session for id, creating it on first use.
func (st *sessionStore) get(id string) *searchSession {
	now := time.Now()
	st.mu.Lock()
	s, ok := st.sessions[id]
	if !ok {
		s = newSearchSession(id)
		st.sessions[id] = s
	}
	st.mu.Unlock()
	s.touch(now)
	return s
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep closes and removes sessions idle for longer than the TTL.
func (st *sessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	var expired []*searchSession
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.coord.Close()
	}
	return len(expired)
}

func (st *sessionStore) startSweeper() {
	go func() {
		interval := st.ttl / 2
		if interval < time.Minute {
			interval = time.Minute
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if removed := st.sweep(time.Now()); removed > 0 {
				log.Printf("[session] swept %d expired search sessions", removed)
			}
		}
	}()
}

// getSession resolves the request's search session from the session cookie.
func getSession(c *fiber.Ctx) *searchSession {
	return sessions.get(cookie.SessionID(c))
}
