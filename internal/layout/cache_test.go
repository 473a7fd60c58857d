package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightCache(t *testing.T) {
	c := NewHeightCache()

	_, ok := c.Get("row-1", 42, 80)
	assert.False(t, ok)

	c.Put("row-1", 42, 80, 3)
	c.Put("row-1", 42, 40, 5)
	c.Put("row-2", 7, 80, 1)

	h, ok := c.Get("row-1", 42, 80)
	assert.True(t, ok)
	assert.Equal(t, 3, h)

	_, ok = c.Get("row-1", 43, 80)
	assert.False(t, ok, "changed fingerprint misses")
	assert.Equal(t, 3, c.Len())

	c.Invalidate("row-1")
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get("row-1", 42, 40)
	assert.False(t, ok)

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestHeightCache_Height(t *testing.T) {
	c := NewHeightCache()
	calls := 0
	measure := func(width int) int {
		calls++
		return 100 / width
	}

	assert.Equal(t, 5, c.Height("item", 1, 20, measure))
	assert.Equal(t, 5, c.Height("item", 1, 20, measure))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 10, c.Height("item", 1, 10, measure))
	assert.Equal(t, 2, calls)
}
