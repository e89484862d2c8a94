// Package cache provides the bounded LRU cache used to memoize shaping
// results.
//
//	c := cache.New[string, int](128)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// When the cache is full, the least recently used entry is evicted. Hits,
// misses and evictions are counted and reported by Stats.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
