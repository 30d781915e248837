package cache

import (
	"sync"
	"time"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// MemoryCache provides an in-memory cache of computed vault summaries
type MemoryCache struct {
	summaries map[models.Address]summaryEntry
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
}

type summaryEntry struct {
	summary   models.VaultSummary
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache. A zero ttl disables caching.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		summaries: make(map[models.Address]summaryEntry),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GetSummary retrieves a cached summary if fresh
func (c *MemoryCache) GetSummary(vault models.Address) (models.VaultSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.summaries[vault]
	if !exists {
		return models.VaultSummary{}, false
	}
	if c.now().Sub(entry.fetchedAt) > c.ttl {
		return models.VaultSummary{}, false
	}
	return entry.summary, true
}

// SetSummary caches a summary
func (c *MemoryCache) SetSummary(s models.VaultSummary) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.summaries[s.Address] = summaryEntry{
		summary:   s,
		fetchedAt: c.now(),
	}
}

// Invalidate removes a vault's summary from the cache
func (c *MemoryCache) Invalidate(vault models.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.summaries, vault)
}

// Len returns the number of cached entries, stale ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.summaries)
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.summaries = make(map[models.Address]summaryEntry)
	c.mu.Unlock()
}
