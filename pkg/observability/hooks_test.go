package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnDeriveStart(ctx, 3)
	p.OnDeriveComplete(ctx, 3, time.Millisecond, nil)
	p.OnEnumerateStart(ctx, 3, 4)
	p.OnEnumerateComplete(ctx, 3, 8, time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"text"})
	p.OnRenderComplete(ctx, []string{"text"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "generators")
	c.OnCacheMiss(ctx, "group")
	c.OnCacheSet(ctx, "circuit", 1024)
	c.OnCacheError(ctx, "group", errors.New("connection refused"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
