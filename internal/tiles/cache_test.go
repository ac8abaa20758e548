package tiles

import (
	"image"
	"testing"
)

func key(x int) cacheKey {
	return cacheKey{source: "test", zoom: 1, x: x, y: 0}
}

func TestLRUCachePutGet(t *testing.T) {
	c := newLRUCache(4)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	c.put(key(1), img)

	got, ok := c.get(key(1))
	if !ok || got != img {
		t.Fatalf("get after put = (%v, %v), want stored image", got, ok)
	}

	if _, ok := c.get(key(2)); ok {
		t.Error("get of missing key reported a hit")
	}
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := newLRUCache(2)

	c.put(key(1), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.put(key(2), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.put(key(3), image.NewRGBA(image.Rect(0, 0, 1, 1)))

	if c.len() != 2 {
		t.Fatalf("len = %d, want capacity 2", c.len())
	}
	if _, ok := c.get(key(1)); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.get(key(3)); !ok {
		t.Error("newest entry missing")
	}
}

func TestLRUCacheTouchOnGet(t *testing.T) {
	c := newLRUCache(2)

	c.put(key(1), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.put(key(2), image.NewRGBA(image.Rect(0, 0, 1, 1)))

	// Touch 1 so 2 becomes the eviction candidate.
	c.get(key(1))
	c.put(key(3), image.NewRGBA(image.Rect(0, 0, 1, 1)))

	if _, ok := c.get(key(1)); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.get(key(2)); ok {
		t.Error("least recently used entry survived")
	}
}

func TestLRUCacheUpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	first := image.NewRGBA(image.Rect(0, 0, 1, 1))
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))
	c.put(key(1), first)
	c.put(key(1), second)

	if c.len() != 1 {
		t.Fatalf("len = %d, want 1 after update", c.len())
	}
	got, _ := c.get(key(1))
	if got != second {
		t.Error("update did not replace stored image")
	}
}
