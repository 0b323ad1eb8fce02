package warehouse

import (
	"sync"
	"time"

	"aurora-grid/internal/model"
)

// priceCache memoizes parsed price rows per dataset name. Entries expire
// after a TTL and are invalidated eagerly on write, so a re-upload is
// visible to the next read. A TTL <= 0 disables caching.
type priceCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	rows      []model.PriceObservation
	expiresAt time.Time
}

func newPriceCache(ttl time.Duration) *priceCache {
	return &priceCache{store: make(map[string]cacheEntry), ttl: ttl}
}

func (c *priceCache) get(name string) ([]model.PriceObservation, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[name]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.rows, true
}

func (c *priceCache) set(name string, rows []model.PriceObservation) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[name] = cacheEntry{rows: rows, expiresAt: time.Now().Add(c.ttl)}
}

func (c *priceCache) invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, name)
}
