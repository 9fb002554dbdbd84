// Package treecache memoizes derived trees for the lifetime of one build.
package treecache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stitch/internal/core/domain"
)

// Cache guarantees each derived tree is computed at most once per build
// instance. Entries live until the owning composition engine is discarded;
// a new engine starts with a fresh cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]domain.Tree
	hits    uint64
	misses  uint64
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[uint64]domain.Tree),
	}
}

// Key derives a stable cache key from a tree kind plus salt strings
// identifying the composition step's options.
func Key(kind domain.TreeKind, salt ...string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(string(kind))
	_, _ = h.Write([]byte{0})
	for _, s := range salt {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// Fetch returns the cached tree for key, deriving and storing it on the
// first request. A derivation error is not cached.
func (c *Cache) Fetch(key uint64, derive func() (domain.Tree, error)) (domain.Tree, error) {
	c.mu.RLock()
	tree, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return tree, nil
	}

	tree, err := derive()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = tree
	c.misses++
	c.mu.Unlock()
	return tree, nil
}

// Hits returns the number of cache hits so far.
func (c *Cache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// Misses returns the number of derivations performed.
func (c *Cache) Misses() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// Len returns the number of cached trees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
