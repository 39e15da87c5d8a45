package backend

import (
	"sync"
	"time"
)

type cacheEntry struct {
	fetchedAt time.Time
	payload   []byte
}

// responseCache is a TTL cache of successful GET response bodies, keyed by the
// exact request URL. Entries older than the TTL are treated as absent and
// overwritten by the next successful fetch.
//
// The clock is injected so that expiry can be simulated in tests without
// sleeping. Unlike the single-threaded environment this design came from, Go
// handlers run concurrently, so the map is guarded by a mutex.
type responseCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newResponseCache(ttl time.Duration, now func() time.Time) *responseCache {
	return &responseCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached payload for url, if a live entry exists.
func (c *responseCache) get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.payload, true
}

func (c *responseCache) put(url string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[url] = cacheEntry{
		fetchedAt: c.now(),
		payload:   payload,
	}
}

// clear empties the cache. Idempotent.
func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
