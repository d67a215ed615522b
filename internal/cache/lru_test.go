package cache

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU(100)
	k := Key{Algorithm: "k-means", State: "k=3"}

	_, ok := c.Get(k)
	assert.False(t, ok)

	c.Set(k, []byte("svg"))
	got, ok := c.Get(k)
	require.True(t, ok)
	assert.Equal(t, []byte("svg"), got)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, int64(3), c.Size())
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU(10)
	k1 := Key{Algorithm: "a", State: "1"}
	k2 := Key{Algorithm: "a", State: "2"}
	k3 := Key{Algorithm: "a", State: "3"}

	c.Set(k1, make([]byte, 4))
	c.Set(k2, make([]byte, 4))
	// touch k1 so k2 becomes the eviction candidate
	_, _ = c.Get(k1)
	c.Set(k3, make([]byte, 4))

	_, ok := c.Get(k2)
	assert.False(t, ok, "k2 should be evicted")
	_, ok = c.Get(k1)
	assert.True(t, ok)
	_, ok = c.Get(k3)
	assert.True(t, ok)
	assert.Equal(t, int64(8), c.Size())
}

func TestLRU_EdgeCases(t *testing.T) {
	c := NewLRU(50)
	k := Key{Algorithm: "a", State: "x"}

	c.Set(k, make([]byte, 60))
	_, ok := c.Get(k)
	assert.False(t, ok, "item > capacity should not be cached")

	c.Set(k, make([]byte, 10))
	assert.Equal(t, int64(10), c.Size())
	c.Set(k, make([]byte, 20))
	assert.Equal(t, int64(20), c.Size())
	c.Set(k, make([]byte, 5))
	assert.Equal(t, int64(5), c.Size())
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Disabled(t *testing.T) {
	c := NewLRU(0)
	k := Key{Algorithm: "a"}
	c.Set(k, []byte("v"))
	_, ok := c.Get(k)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU(1 << 10)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := Key{Algorithm: "a", State: strings.Repeat("x", i)}
			for j := 0; j < 100; j++ {
				c.Set(k, []byte("value"))
				_, _ = c.Get(k)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, c.Len())
}
