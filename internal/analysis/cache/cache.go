package cache

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"vendor-message-analysis/internal/analysis"
)

const (
	// DefaultTTL is how long a cached result stays fresh.
	DefaultTTL = 5 * time.Minute

	// DefaultSize bounds the number of cached results.
	DefaultSize = 1000

	// keyMessageRunes is how much of the message participates in the key.
	keyMessageRunes = 100

	keySeparator = "|"
)

// Entry is a cached analysis result.
type Entry struct {
	Result     analysis.MessageAnalysisResult
	ContactID  string
	InsertedAt time.Time
}

// Config configures a Store. Zero values pick the defaults.
type Config struct {
	Size int
	TTL  time.Duration
	Now  func() time.Time
}

// Store is a bounded, TTL-checked result cache. It is safe for concurrent use.
type Store struct {
	lru *expirable.LRU[string, Entry]
	ttl time.Duration
	now func() time.Time
}

// New creates a Store.
func New(cfg Config) *Store {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		lru: expirable.NewLRU[string, Entry](cfg.Size, nil, cfg.TTL),
		ttl: cfg.TTL,
		now: cfg.Now,
	}
}

// Key derives the cache key for actx: contact, the first 100 characters of the message, and vendor category.
// The contact ID is quoted so a separator inside it cannot make two contexts share a key.
func Key(actx analysis.AnalysisContext) string {
	msg := actx.MessageContent
	if r := []rune(msg); len(r) > keyMessageRunes {
		msg = string(r[:keyMessageRunes])
	}
	return strconv.Quote(actx.ContactID) + keySeparator + msg + keySeparator + actx.VendorCategory
}

// Get returns the entry for key. Entries older than the TTL are dropped and reported missing.
func (s *Store) Get(key string) (Entry, bool) {
	e, ok := s.lru.Get(key)
	if !ok {
		return Entry{}, false
	}
	if s.now().Sub(e.InsertedAt) >= s.ttl {
		s.lru.Remove(key)
		return Entry{}, false
	}
	return e, true
}

// Set stores result under key, stamped with the current time.
func (s *Store) Set(key, contactID string, result analysis.MessageAnalysisResult) {
	s.lru.Add(key, Entry{
		Result:     result,
		ContactID:  contactID,
		InsertedAt: s.now(),
	})
}

// InvalidateContact removes every entry stored for contactID and returns the count.
func (s *Store) InvalidateContact(contactID string) int {
	removed := 0
	for _, k := range s.lru.Keys() {
		e, ok := s.lru.Peek(k)
		if ok && e.ContactID == contactID && s.lru.Remove(k) {
			removed++
		}
	}
	return removed
}

// Clear empties the store.
func (s *Store) Clear() {
	s.lru.Purge()
}

// Len reports the number of entries, including ones not yet swept.
func (s *Store) Len() int {
	return s.lru.Len()
}
