package tmdb

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long cached provider responses stay fresh. Listing
// endpoints like top-rated change slowly, so an hour is plenty.
const DefaultCacheTTL = time.Hour

// cacheEntry is one cached raw response body.
type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// responseCache is an in-memory TTL cache keyed by request URL. Expired
// entries are dropped lazily on lookup.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

func (c *responseCache) put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		body:      body,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *responseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
