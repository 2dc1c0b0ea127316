// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; applications register
// their own implementations at startup. The defaults are no-ops, so nothing
// in the library depends on a particular metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnEnumerateStart(ctx, qubits, workers)
//	// ... enumerate ...
//	observability.Pipeline().OnEnumerateComplete(ctx, qubits, elements, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the stabilizer pipeline.
type PipelineHooks interface {
	// Derive events
	OnDeriveStart(ctx context.Context, qubits int)
	OnDeriveComplete(ctx context.Context, qubits int, duration time.Duration, err error)

	// Enumerate events
	OnEnumerateStart(ctx context.Context, qubits, workers int)
	OnEnumerateComplete(ctx context.Context, qubits, elements int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache lookups. keyType is the pipeline
// stage: "generators", "group" or "circuit".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)

	// OnCacheError records a backend failure that was ignored.
	OnCacheError(ctx context.Context, keyType string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDeriveStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnDeriveComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnEnumerateStart(context.Context, int, int)                  {}
func (NoopPipelineHooks) OnEnumerateComplete(context.Context, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
