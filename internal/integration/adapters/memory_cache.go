package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/volttrack/backend/internal/application/adapter"
)

const memoryCacheMaxEntries = 256

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache implements adapter.AnalyticsCache in process. It is used when
// no Redis URL is configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the cached value when present and not expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores the value. A non-positive ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= memoryCacheMaxEntries {
		c.evictLocked()
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

// evictLocked drops expired entries, or everything when none have expired.
// Keys embed a content fingerprint, so old entries are never read again.
func (c *MemoryCache) evictLocked() {
	now := c.now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= memoryCacheMaxEntries {
		c.entries = make(map[string]memoryEntry)
	}
}

// Ensure MemoryCache implements adapter.AnalyticsCache.
var _ adapter.AnalyticsCache = (*MemoryCache)(nil)
