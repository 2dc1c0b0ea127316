package cache

import (
	"context"
	"time"
)

// ttlCache overrides the ttl of every Set.
type ttlCache struct {
	Cache
	ttl time.Duration
}

// WithTTL returns c with every entry stored for ttl instead of the
// caller's lifetime. A non-positive ttl returns c unchanged.
func WithTTL(c Cache, ttl time.Duration) Cache {
	if ttl <= 0 {
		return c
	}
	return &ttlCache{Cache: c, ttl: ttl}
}

func (c *ttlCache) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return c.Cache.Set(ctx, key, data, c.ttl)
}

// Clear forwards to the wrapped cache when it supports clearing.
func (c *ttlCache) Clear(ctx context.Context) error {
	if cl, ok := c.Cache.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}
