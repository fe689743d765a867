package index

import (
	"context"
	"sync"
	"time"

	"collection-manager/core/catalog"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is a built index and the time it was built.
type cacheEntry struct {
	index *Index
	built time.Time
}

// Cache keeps built indices per catalog source so long-running processes rebuild
// only when the TTL has passed. A rebuild replaces the whole index at once.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

// NewCache creates a cache whose entries expire after ttl. A zero ttl disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

func (c *Cache) fresh(e *cacheEntry) bool {
	return e != nil && c.ttl > 0 && c.now().Sub(e.built) <= c.ttl
}

// GetOrBuild returns the cached index for src, or loads and indexes the catalog.
// Concurrent callers for the same source share a single load.
func (c *Cache) GetOrBuild(ctx context.Context, src catalog.Source) (*Index, error) {
	key := src.Key()

	c.mu.RLock()
	entry := c.entries[key]
	c.mu.RUnlock()
	if c.fresh(entry) {
		return entry.index, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry := c.entries[key]
		c.mu.RUnlock()
		if c.fresh(entry) {
			return entry.index, nil
		}

		cat, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		idx := Build(cat)

		c.mu.Lock()
		c.entries[key] = &cacheEntry{index: idx, built: c.now()}
		c.mu.Unlock()

		return idx, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Index), nil
}

// Invalidate drops the cached index for src.
func (c *Cache) Invalidate(src catalog.Source) {
	c.mu.Lock()
	delete(c.entries, src.Key())
	c.mu.Unlock()
}
