package layout

// HeightCache remembers measured heights of list items so a scrolling list
// does not re-measure items that have not changed. Entries are keyed by the
// item's key, a fingerprint of its content and the width it was measured
// at; a changed fingerprint or width simply misses.
//
// The cache is unbounded. Call Invalidate when an item goes away and Reset
// when the whole list is replaced. It is not safe for concurrent use.
type HeightCache struct {
	entries map[heightKey]int
	byKey   map[string][]heightKey
}

type heightKey struct {
	key         string
	fingerprint uint64
	width       int
}

// NewHeightCache creates an empty cache.
func NewHeightCache() *HeightCache {
	return &HeightCache{
		entries: make(map[heightKey]int),
		byKey:   make(map[string][]heightKey),
	}
}

// Get returns the cached height of key at width, if any.
func (c *HeightCache) Get(key string, fingerprint uint64, width int) (int, bool) {
	h, ok := c.entries[heightKey{key: key, fingerprint: fingerprint, width: width}]
	return h, ok
}

// Put stores a measured height.
func (c *HeightCache) Put(key string, fingerprint uint64, width, height int) {
	k := heightKey{key: key, fingerprint: fingerprint, width: width}
	if _, ok := c.entries[k]; !ok {
		c.byKey[key] = append(c.byKey[key], k)
	}
	c.entries[k] = height
}

// Height returns the cached height or calls measure and caches its result.
func (c *HeightCache) Height(key string, fingerprint uint64, width int, measure func(width int) int) int {
	if h, ok := c.Get(key, fingerprint, width); ok {
		return h
	}
	h := measure(width)
	c.Put(key, fingerprint, width, h)
	return h
}

// Invalidate drops every entry for key.
func (c *HeightCache) Invalidate(key string) {
	for _, k := range c.byKey[key] {
		delete(c.entries, k)
	}
	delete(c.byKey, key)
}

// Len returns the number of cached entries.
func (c *HeightCache) Len() int {
	return len(c.entries)
}

// Reset drops every entry.
func (c *HeightCache) Reset() {
	clear(c.entries)
	clear(c.byKey)
}
