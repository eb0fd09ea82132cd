package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a keyed TTL cache
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	// GetOrLoad returns the cached value or calls load and caches its result.
	// Errors from load are returned and nothing is cached.
	GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error)
	Delete(key string)
	Clear()
	Len() int
	Stop()
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// MemoryCache is a mutex-guarded in-memory Cache with periodic eviction
type MemoryCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time

	// loads dedupes concurrent misses per key. gen is bumped by Delete and
	// Clear so a load that raced an invalidation does not store its result.
	loads singleflight.Group
	gen   uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates a cache that evicts expired entries every cleanupInterval
func NewMemoryCache[V any](cleanupInterval time.Duration) *MemoryCache[V] {
	c := &MemoryCache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go c.evictLoop(cleanupInterval)

	return c
}

func (c *MemoryCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *MemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *MemoryCache[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.loads.Do(key, func() (interface{}, error) {
		// another call may have stored it between Get and Do
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		v, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.gen == gen {
			c.entries[key] = entry[V]{value: v, expiresAt: c.now().Add(ttl)}
		}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := res.(V)
	return v, nil
}

func (c *MemoryCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.gen++
}

func (c *MemoryCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
	c.gen++
}

// Len counts stored entries, including expired ones not yet evicted
func (c *MemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stop ends the eviction goroutine. Safe to call more than once.
func (c *MemoryCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *MemoryCache[V]) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache[V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
