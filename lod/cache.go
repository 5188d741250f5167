package lod

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/attrlod/aps"
)

// Cache keeps the most recently used Builders, one per cloud key (a slice
// or frame identifier chosen by the caller). Each entry stores its last
// parameter set beside the structure, and Ensure consults IsReusable before
// rebuilding.
//
// Distinct keys may be used concurrently; a single key must not be.
type Cache struct {
	opts   []Option
	logger *slog.Logger
	lru    *lru.Cache[string, *Builder]
}

// NewCache returns a Cache holding at most size builders, each created
// with opts.
func NewCache(size int, opts ...Option) (*Cache, error) {
	c := &Cache{opts: opts, logger: newConfig(opts...).logger}
	l, err := lru.NewWithEvict[string, *Builder](size, c.evicted)
	if err != nil {
		return nil, fmt.Errorf("NewCache(%d): %w", size, err)
	}
	c.lru = l

	return c, nil
}

// Ensure returns the Builder for key with a structure valid for params over
// cloud, creating or rebuilding it as Builder.Ensure decides.
func (c *Cache) Ensure(key string, params aps.ParameterSet, totalPointCountMinus1, minNodeSizeLog2 int, cloud Cloud) (*Builder, bool, error) {
	b, ok := c.lru.Get(key)
	if !ok {
		b = NewBuilder(c.opts...)
	}
	rebuilt, err := b.Ensure(params, totalPointCountMinus1, minNodeSizeLog2, cloud)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		c.lru.Add(key, b)
	}

	return b, rebuilt, nil
}

// Get returns the Builder cached for key, if any.
func (c *Cache) Get(key string) (*Builder, bool) {
	return c.lru.Get(key)
}

// Remove drops the Builder cached for key.
func (c *Cache) Remove(key string) {
	c.lru.Remove(key)
}

// Len returns the number of cached builders.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func (c *Cache) evicted(key string, b *Builder) {
	c.logger.Debug("lod: cache eviction", slog.String("key", key), slog.Int("points", len(b.ordering)))
}
