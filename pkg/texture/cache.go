package texture

import "github.com/calder-r/go-light-tracer/pkg/core"

// DefaultCacheSize is the default capacity of a texture cache in bytes.
const DefaultCacheSize = 16 * 1024 * 1024

// approximate memory footprint of one cached lookup (key + value + map overhead)
const entrySize = 96

type cacheKey struct {
	texture core.Texture
	uv      core.Vec2
}

// Cache memoizes texture lookups up to a byte budget. When the budget is
// exhausted the cache is flushed wholesale rather than evicted entry by
// entry. A Cache belongs to a single worker and is not safe for
// concurrent use.
type Cache struct {
	entries  map[cacheKey]core.Spectrum
	capacity int // maximum number of entries derived from the byte budget

	hits   uint64
	misses uint64
}

// NewCache creates a texture cache bounded to sizeInBytes
func NewCache(sizeInBytes int) *Cache {
	if sizeInBytes <= 0 {
		sizeInBytes = DefaultCacheSize
	}
	capacity := sizeInBytes / entrySize
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		entries:  make(map[cacheKey]core.Spectrum),
		capacity: capacity,
	}
}

// Evaluate implements core.TextureCache
func (c *Cache) Evaluate(texture core.Texture, uv core.Vec2) core.Spectrum {
	key := cacheKey{texture: texture, uv: uv}
	if value, ok := c.entries[key]; ok {
		c.hits++
		return value
	}
	c.misses++

	value := texture.Sample(uv)
	if len(c.entries) >= c.capacity {
		c.entries = make(map[cacheKey]core.Spectrum)
	}
	c.entries[key] = value
	return value
}

// HitRate returns the fraction of lookups served from the cache
func (c *Cache) HitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}
