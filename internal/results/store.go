// Package results holds ranked recommendation lists under opaque tokens so a
// one-time scoring run can serve many paginated reads.
package results

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/movie-recommender/internal/types"
)

// Defaults for the store configuration.
const (
	DefaultTTL           = time.Hour
	DefaultMaxEntries    = 1024
	DefaultSweepInterval = 5 * time.Minute
)

// Config holds result store configuration.
type Config struct {
	// TTL is how long an entry lives after creation. Zero uses DefaultTTL.
	TTL time.Duration
	// MaxEntries caps the number of stored results; the least recently read
	// entry is evicted on overflow. Zero uses DefaultMaxEntries.
	MaxEntries int
	// SweepInterval is how often the background sweeper removes expired
	// entries. Negative disables the sweeper (expiry is still enforced
	// lazily on Get). Zero uses DefaultSweepInterval.
	SweepInterval time.Duration
}

// entry is one stored scoring run. The ranked list is never mutated after
// publication, so reads outside the map lock are safe.
type entry struct {
	ranked     types.RankedResult
	createdAt  time.Time
	lastAccess time.Time
}

// Store is a concurrency-safe, token-addressed result store with TTL and LRU
// eviction.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry

	ttl        time.Duration
	maxEntries int

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// NewStore creates a result store and starts its background sweeper.
func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = &Config{}
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = DefaultSweepInterval
	}

	s := &Store{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}

	if sweepInterval > 0 {
		s.sweepTicker = time.NewTicker(sweepInterval)
		s.sweepStop = make(chan struct{})
		go s.sweep()
	}

	return s
}

// Put stores a completed ranked result under a fresh random token and returns
// the token. Tokens are never re-bound to a different result.
func (s *Store) Put(ranked types.RankedResult) string {
	token := uuid.New().String()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}

	s.entries[token] = &entry{
		ranked:     ranked,
		createdAt:  now,
		lastAccess: now,
	}
	return token
}

// Get returns the requested page of the result stored under token, plus
// whether more pages follow. Page numbers start at 1; a page beyond the end
// yields an empty slice and hasNext=false. Unknown and expired tokens return
// ErrTokenNotFound.
func (s *Store) Get(token string, page, pageSize int) ([]types.ScoreEntry, bool, error) {
	if page < 1 {
		return nil, false, &ErrInvalidPage{Page: page}
	}
	if pageSize < 1 {
		return nil, false, &ErrInvalidPageSize{PageSize: pageSize}
	}

	s.mu.Lock()
	e, ok := s.entries[token]
	if ok && time.Since(e.createdAt) > s.ttl {
		delete(s.entries, token)
		ok = false
	}
	if !ok {
		s.mu.Unlock()
		return nil, false, &ErrTokenNotFound{Token: token}
	}
	e.lastAccess = time.Now()
	ranked := e.ranked
	s.mu.Unlock()

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	if end > len(ranked) {
		end = len(ranked)
	}

	hasNext := page*pageSize < len(ranked)
	return ranked[start:end], hasNext, nil
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Invalidate removes the entry stored under token, if any.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// Stop halts the background sweeper. Safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		if s.sweepTicker != nil {
			s.sweepTicker.Stop()
			close(s.sweepStop)
		}
	})
}

// evictOldestLocked removes the least recently read entry. Caller holds the
// write lock.
func (s *Store) evictOldestLocked() {
	var oldestToken string
	var oldestAccess time.Time
	for token, e := range s.entries {
		if oldestToken == "" || e.lastAccess.Before(oldestAccess) {
			oldestToken = token
			oldestAccess = e.lastAccess
		}
	}
	if oldestToken != "" {
		delete(s.entries, oldestToken)
	}
}

// sweep periodically removes expired entries.
func (s *Store) sweep() {
	for {
		select {
		case <-s.sweepTicker.C:
			s.removeExpired()
		case <-s.sweepStop:
			return
		}
	}
}

func (s *Store) removeExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.entries {
		if now.Sub(e.createdAt) > s.ttl {
			delete(s.entries, token)
		}
	}
}
