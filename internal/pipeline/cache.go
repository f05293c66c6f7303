package pipeline

import (
	"context"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/31d4r/Raven/internal/logger"
)

// cacheKey changes whenever the stored file is replaced or rewritten.
type cacheKey struct {
	path    string
	size    int64
	modTime time.Time
}

type textCache struct {
	lru *lru.Cache[cacheKey, string]
}

func newTextCache(size int, log logger.Logger) (*textCache, error) {
	c, err := lru.NewWithEvict(size, func(key cacheKey, _ string) {
		log.Debug(context.Background(), "Extraction cache evicted %s", key.path)
	})
	if err != nil {
		return nil, err
	}
	return &textCache{lru: c}, nil
}

// key returns false when the file cannot be stat'ed; such files are never cached.
func (c *textCache) key(path string) (cacheKey, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{path: path, size: info.Size(), modTime: info.ModTime()}, true
}

func (c *textCache) get(key cacheKey) (string, bool) {
	return c.lru.Get(key)
}

func (c *textCache) add(key cacheKey, text string) {
	c.lru.Add(key, text)
}
