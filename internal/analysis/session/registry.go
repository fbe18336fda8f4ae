package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"vendor-message-analysis/internal/analysis"
	pkgLog "vendor-message-analysis/pkg/log"
)

const (
	DefaultTTL      = 30 * time.Minute
	DefaultCapacity = 10000
)

// Registry owns the live sessions. Sessions idle past the TTL, or pushed out by capacity, are closed.
type Registry struct {
	l        pkgLog.Logger
	uc       analysis.UseCase
	sessions *expirable.LRU[string, *Session]
}

// NewRegistry creates a Registry. Non-positive capacity or ttl pick the defaults.
func NewRegistry(l pkgLog.Logger, uc analysis.UseCase, capacity int, ttl time.Duration) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	onEvict := func(_ string, s *Session) {
		s.Close()
	}
	return &Registry{
		l:        l,
		uc:       uc,
		sessions: expirable.NewLRU[string, *Session](capacity, onEvict, ttl),
	}
}

// Create starts a new session with a random ID.
func (r *Registry) Create() *Session {
	s := New(uuid.NewString(), r.l, r.uc)
	r.sessions.Add(s.ID(), s)
	return s
}

// Get returns the session with id and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok || s.Closed() {
		return nil, analysis.ErrSessionNotFound
	}
	// expirable.LRU only refreshes recency on Get, so re-add to extend the TTL.
	r.sessions.Add(id, s)
	return s, nil
}

// Delete closes and removes the session with id.
func (r *Registry) Delete(id string) error {
	if !r.sessions.Remove(id) {
		return analysis.ErrSessionNotFound
	}
	return nil
}

// Len reports the number of tracked sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Close closes every session.
func (r *Registry) Close() {
	r.sessions.Purge()
}
