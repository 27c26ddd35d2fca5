package resolve

import "sync"

// Cache memoizes external lookup results per (street, municipality) for the
// lifetime of one process. It is owned by the resolver and passed explicitly
// rather than living in ambient package state, so a long-running host can
// drop it via Clear.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]int
}

// NewCache creates an empty lookup cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]int)}
}

func cacheKey(street, municipality string) string {
	return street + "," + municipality
}

// Get returns the cached result for the key, if any. An empty slice is a
// valid cached value ("no data known"), distinct from a miss.
func (c *Cache) Get(street, municipality string) ([]int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nums, ok := c.entries[cacheKey(street, municipality)]
	return nums, ok
}

// Put stores a lookup result.
func (c *Cache) Put(street, municipality string, numbers []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(street, municipality)] = numbers
}

// Clear drops all cached results.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]int)
}

// Len returns the number of cached lookups.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
