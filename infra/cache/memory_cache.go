package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/backoffice/pkg/cache"
	"github.com/amirasaad/backoffice/pkg/provider"
)

// MemoryCache implements PaymentCache using in-memory storage.
// Expired entries are dropped on read and by a periodic cleanup.
type MemoryCache struct {
	cache map[string]*cacheEntry
	mu    sync.RWMutex
	now   func() time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		cache: make(map[string]*cacheEntry),
		now:   time.Now,
	}
	go c.cleanup()
	return c
}

// Get retrieves a payment from cache.
func (c *MemoryCache) Get(_ context.Context, key string) (*provider.Payment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	p := *entry.payment
	return &p, nil
}

// Set stores a payment with TTL.
func (c *MemoryCache) Set(_ context.Context, key string, payment *provider.Payment, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := *payment
	c.cache[key] = &cacheEntry{payment: &p, expiresAt: c.now().Add(ttl)}
	return nil
}

// Delete removes a payment from cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key)
	return nil
}

func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := c.now()
		for key, entry := range c.cache {
			if now.After(entry.expiresAt) {
				delete(c.cache, key)
			}
		}
		c.mu.Unlock()
	}
}

type cacheEntry struct {
	payment   *provider.Payment
	expiresAt time.Time
}

var _ cache.PaymentCache = (*MemoryCache)(nil)
