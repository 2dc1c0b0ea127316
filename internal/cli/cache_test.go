package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphstab/pkg/cache"
)

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	c := New(io.Discard, LogInfo)
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(base, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg.CacheDir = "/srv/graphstab"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != "/srv/graphstab" {
		t.Errorf("cacheDir() = %q, want config value", dir)
	}
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		c := New(io.Discard, LogInfo)
		c.noCache = true
		ch, err := c.newCache(ctx)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		if _, ok := ch.(cache.NullCache); !ok {
			t.Errorf("newCache() = %T, want cache.NullCache", ch)
		}
	})

	t.Run("file", func(t *testing.T) {
		c := New(io.Discard, LogInfo)
		c.cfg.CacheDir = t.TempDir()
		ch, err := c.newCache(ctx)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		fc, ok := ch.(*cache.FileCache)
		if !ok {
			t.Fatalf("newCache() = %T, want *cache.FileCache", ch)
		}
		if fc.Dir() != c.cfg.CacheDir {
			t.Errorf("Dir() = %q, want %q", fc.Dir(), c.cfg.CacheDir)
		}
	})

	t.Run("unreachable redis falls back to file", func(t *testing.T) {
		c := New(io.Discard, LogInfo)
		c.cfg.CacheDir = t.TempDir()
		c.redisAddr = "127.0.0.1:1"
		ch, err := c.newCache(ctx)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		if _, ok := ch.(*cache.FileCache); !ok {
			t.Errorf("newCache() = %T, want *cache.FileCache", ch)
		}
	})
}

func TestNewKeyerNamespace(t *testing.T) {
	c := New(io.Discard, LogInfo)
	plain := c.newKeyer().GeneratorsKey("abc")

	c.cfg.CacheNamespace = "lab"
	scoped := c.newKeyer().GeneratorsKey("abc")

	if scoped != "lab:"+plain {
		t.Errorf("scoped key = %q, want %q", scoped, "lab:"+plain)
	}
}
