package internal

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed size LRU map. Evicted and replaced values are handed to
// the evict callback so GPU resources can be released.
type Cache[K comparable, V any] struct {
	lru   *lru.Cache[K, V]
	evict func(K, V)
}

// NewCache returns a cache holding at most maxSize entries.
func NewCache[K comparable, V any](maxSize int, evict func(K, V)) *Cache[K, V] {
	if evict == nil {
		evict = func(K, V) {}
	}
	// NewWithEvict only fails on a non-positive size.
	l, _ := lru.NewWithEvict(max(maxSize, 1), evict)
	return &Cache[K, V]{lru: l, evict: evict}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Set stores value under key. Replacing a key hands the old value to the
// evict callback.
func (c *Cache[K, V]) Set(key K, value V) {
	old, replaced := c.lru.Peek(key)
	c.lru.Add(key, value)
	if replaced {
		c.evict(key, old)
	}
}

func (c *Cache[K, V]) Len() int { return c.lru.Len() }

// Purge evicts every entry.
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}
