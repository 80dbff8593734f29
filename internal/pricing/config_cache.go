package pricing

import (
	"strings"
	"sync"
	"time"

	"campusmarket/server/internal/models"
)

type cacheEntry struct {
	config   models.CategoryConfig
	storedAt time.Time
}

// configCache is a TTL map of resolved category configs, keyed by the
// lower-cased category name. Entries expire purely by time.
type configCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newConfigCache(ttl time.Duration, now func() time.Time) *configCache {
	return &configCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *configCache) get(name string) (models.CategoryConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[strings.ToLower(name)]
	if !ok {
		return models.CategoryConfig{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return models.CategoryConfig{}, false
	}
	return entry.config, true
}

func (c *configCache) put(name string, config models.CategoryConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[strings.ToLower(name)] = cacheEntry{
		config:   config,
		storedAt: c.now(),
	}
}
