package icon

import (
	"image"

	"github.com/zyedidia/generic/cache"
)

// DefaultCacheCapacity holds every catalog type at a handful of sizes plus
// headroom for mod tiles.
const DefaultCacheCapacity = 128

type cacheKey struct {
	name string
	size int
}

// Cache memoizes rendered tile icons keyed by (type name, size). Icon
// rendering itself is pure, so caching is purely a speed concern and lives
// with the caller side of the renderer contract.
type Cache struct {
	renderer *Renderer
	lru      *cache.Cache[cacheKey, *image.RGBA]
}

// NewCache returns an LRU icon cache in front of the given renderer
func NewCache(r *Renderer, capacity int) *Cache {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		renderer: r,
		lru:      cache.New[cacheKey, *image.RGBA](capacity),
	}
}

// Get returns the icon for the named tile type at the given size, rendering
// and caching it on first request. Cached images are shared; callers must
// not mutate them.
func (c *Cache) Get(typeName string, size int) (*image.RGBA, error) {
	key := cacheKey{name: typeName, size: size}
	if img, ok := c.lru.Get(key); ok {
		return img, nil
	}

	img, err := c.renderer.Render(typeName, size)
	if err != nil {
		return nil, err
	}
	c.lru.Put(key, img)
	return img, nil
}
