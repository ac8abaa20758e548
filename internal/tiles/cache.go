package tiles

import (
	"container/list"
	"image"
	"sync"
)

type cacheKey struct {
	source string
	zoom   int
	x, y   int
}

type cacheEntry struct {
	key cacheKey
	img image.Image
}

// lruCache is a bounded most-recently-used tile cache. Thread-safe.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[cacheKey]*list.Element
}

func newLRUCache(capacity int) *lruCache {
	if capacity < 1 {
		capacity = 1
	}
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[cacheKey]*list.Element),
	}
}

func (c *lruCache) get(key cacheKey) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).img, true
}

func (c *lruCache) put(key cacheKey, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).img = img
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, img: img})
	c.entries[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
