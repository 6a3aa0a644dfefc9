package query

import (
	"context"
	"strings"
	"sync"
)

// Cache is a process-wide keyed cache with prefix invalidation and
// in-flight request deduplication: concurrent fetches for the same key
// collapse into a single call whose outcome every waiter shares.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]any
	inflight map[string]*call
}

// call tracks one in-flight fetch shared between waiters
type call struct {
	done chan struct{}
	val  any
	err  error
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]any),
		inflight: make(map[string]*call),
	}
}

// Get returns the cached value for a key, if present
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key.String()]

	return v, ok
}

// Set stores a value under a key
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key.String()] = value
}

// Invalidate evicts the entry for the key and every entry scoped under
// it. Invalidating a service key therefore also drops its deployment
// list and log sub-keys.
func (c *Cache) Invalidate(prefix Key) {
	p := prefix.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k == p || strings.HasPrefix(k, p+keySep) {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Fetch runs fetch for the key, deduplicating concurrent calls: if an
// identical fetch is already in flight the caller waits for its result
// instead of issuing a second one. Successful results are stored in the
// cache; errors are returned to all waiters and nothing is stored.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	k := key.String()

	c.mu.Lock()

	if existing, ok := c.inflight[k]; ok {
		c.mu.Unlock()

		select {
		case <-existing.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}

		if existing.err != nil {
			var zero T
			return zero, existing.err
		}

		return existing.val.(T), nil
	}

	cl := &call{done: make(chan struct{})}
	c.inflight[k] = cl
	c.mu.Unlock()

	val, err := fetch(ctx)

	cl.val, cl.err = val, err

	c.mu.Lock()
	delete(c.inflight, k)
	if err == nil {
		c.entries[k] = val
	}
	c.mu.Unlock()

	close(cl.done)

	return val, err
}

// Cached returns the typed cached value for a key, if present and of
// the expected type
func Cached[T any](c *Cache, key Key) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}

	typed, ok := v.(T)

	return typed, ok
}
