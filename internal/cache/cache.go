// Package cache provides a short-TTL in-memory cache for read-only key-info
// lookups, so hot keys don't hit the database on every poll.
package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps robfig/go-cache. A zero TTL disables caching entirely.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New creates an in-memory cache. If ttl is 0, every Get misses and Set is a
// no-op.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
		ttl:   ttl,
	}
}

// IsEnabled returns whether caching is enabled (TTL > 0).
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0
}

// Set stores a value under the configured TTL.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl == 0 {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get retrieves a value. Returns the value and true if found and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// Delete removes a value, so the next read observes fresh state.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}
