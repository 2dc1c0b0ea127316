package cli

import (
	"context"

	"github.com/matzehuels/graphstab/pkg/observability"
)

// cacheLogHooks reports cache traffic at debug level through the logger in
// the command context, so --verbose shows which stages were cached.
type cacheLogHooks struct{}

var _ observability.CacheHooks = cacheLogHooks{}

func (cacheLogHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache hit", "type", keyType)
}

func (cacheLogHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache miss", "type", keyType)
}

func (cacheLogHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("cache store", "type", keyType, "bytes", size)
}

func (cacheLogHooks) OnCacheError(ctx context.Context, keyType string, err error) {
	loggerFromContext(ctx).Debug("cache backend error", "type", keyType, "err", err)
}
