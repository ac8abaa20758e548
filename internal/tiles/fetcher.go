package tiles

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"iss-tracker/internal/logger"
)

// userAgent identifies the application to tile servers, as their usage
// policies require.
const userAgent = "iss-tracker/1.0"

// Fetcher retrieves map tiles over HTTP with a bounded in-memory LRU cache.
// Safe for concurrent use by overlapping render passes.
type Fetcher struct {
	client *http.Client
	cache  *lruCache
	log    logger.Logger
}

func NewFetcher(cacheSize int, timeout time.Duration, log logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		cache:  newLRUCache(cacheSize),
		log:    log,
	}
}

// Get returns the tile image for the given source and coordinates, from
// cache when possible. A nil image with a nil error is never returned.
func (f *Fetcher) Get(ctx context.Context, src Source, zoom, x, y int) (image.Image, error) {
	key := cacheKey{source: src.Name, zoom: zoom, x: x, y: y}
	if img, ok := f.cache.get(key); ok {
		return img, nil
	}

	url := src.URL(zoom, x, y)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create tile request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tile %d/%d/%d: %w", zoom, x, y, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch tile %d/%d/%d: status %d", zoom, x, y, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode tile %d/%d/%d: %w", zoom, x, y, err)
	}

	f.cache.put(key, img)
	f.log.Debug("tiles", "tile cached", map[string]interface{}{
		"source": src.Name,
		"zoom":   zoom,
		"x":      x,
		"y":      y,
		"cached": f.cache.len(),
	})
	return img, nil
}
