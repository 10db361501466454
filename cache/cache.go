package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed in-process cache with TTL support.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
}

// New creates a cache with the given cost function and a label for stats.
func New[T any](costFunc func(T) int64, cacheType string) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // number of keys to track frequency of
		MaxCost:     1 << 22, // maximum cost of cache (4MB)
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, cacheType: cacheType}, nil
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// SetWithTTL stores a value with a specific TTL.
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Set stores a value with a default TTL of 1 hour.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, time.Hour)
}

// Clear removes all items.
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until pending writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// ItemCount returns the current number of cached items.
func (c *Cache[T]) ItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns hit/miss statistics for health reporting.
func (c *Cache[T]) Stats() map[string]any {
	metrics := c.impl.Metrics

	hitRate := 0.0
	if total := metrics.Hits() + metrics.Misses(); total > 0 {
		hitRate = float64(metrics.Hits()) / float64(total) * 100
	}

	return map[string]any{
		"cache_type":    c.cacheType,
		"hits":          metrics.Hits(),
		"misses":        metrics.Misses(),
		"hit_rate":      hitRate,
		"current_items": c.ItemCount(),
	}
}
