// Package handlers exposes the calculator engine and quote persistence as
// PocketBase route handlers.
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"

	"wycena/services"
)

// SessionCookie scopes a working draft to one browser session. The draft
// lives in memory only; nothing is persisted until the user saves a quote.
const SessionCookie = "calc_session"

// draftTTL bounds how long an untouched draft stays in memory. Abandoned
// sessions (closed tabs, expired cookies) are evicted on the next write.
const draftTTL = 24 * time.Hour

type draftEntry struct {
	state   services.State
	touched time.Time
}

// Drafts holds the in-memory calculator drafts, one per session. Updates
// run under the lock, so each draft has a single writer at a time and
// readers only ever see complete snapshots.
type Drafts struct {
	mu   sync.Mutex
	byID map[string]draftEntry
	ttl  time.Duration
}

// NewDrafts returns an empty draft registry.
func NewDrafts() *Drafts {
	return &Drafts{
		byID: make(map[string]draftEntry),
		ttl:  draftTTL,
	}
}

// Get returns the draft for the session, or a fresh empty state when the
// session has none yet.
func (d *Drafts) Get(sessionID string) services.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	if entry, ok := d.byID[sessionID]; ok {
		entry.touched = time.Now()
		d.byID[sessionID] = entry
		return entry.state
	}
	return services.NewState()
}

// Update applies a pure state transition to the session's draft and stores
// the resulting snapshot. Drafts untouched for longer than the TTL are
// dropped on the way.
func (d *Drafts) Update(sessionID string, fn func(services.State) services.State) services.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	d.evictStale(now)

	entry, ok := d.byID[sessionID]
	if !ok {
		entry = draftEntry{state: services.NewState()}
	}
	entry.state = fn(entry.state)
	entry.touched = now
	d.byID[sessionID] = entry
	return entry.state
}

// evictStale drops drafts whose last touch is older than the TTL. Callers
// must hold d.mu.
func (d *Drafts) evictStale(now time.Time) {
	for id, entry := range d.byID {
		if now.Sub(entry.touched) > d.ttl {
			delete(d.byID, id)
		}
	}
}

// SessionMiddleware ensures every request carries a calc_session cookie so
// handlers can address the caller's draft.
func SessionMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			id := security.RandomString(32)
			http.SetCookie(e.Response, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			// Make the id visible to handlers within this same request.
			e.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
		}
		return e.Next()
	}
}

// sessionID extracts the draft session id from the request cookie.
func sessionID(e *core.RequestEvent) string {
	cookie, err := e.Request.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
