package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisCache.
type RedisOptions struct {
	// Addr is "host:port" or a redis:// URL.
	Addr string
	// Prefix is prepended to every key and scopes Clear.
	Prefix string
	// DialTimeout bounds connection setup. Zero means 5s.
	DialTimeout time.Duration
}

// RedisCache stores entries in Redis using SET with expiry.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and pings it, retrying transient
// failures with RetryWithBackoff.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	ropts, err := redisClientOptions(opts)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(ropts)

	err = RetryWithBackoff(ctx, func() error {
		return classify(client.Ping(ctx).Err())
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", ropts.Addr, err)
	}
	return &RedisCache{client: client, prefix: opts.Prefix}, nil
}

func redisClientOptions(opts RedisOptions) (*redis.Options, error) {
	var ropts *redis.Options
	if strings.Contains(opts.Addr, "://") {
		parsed, err := redis.ParseURL(opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		ropts = parsed
	} else {
		ropts = &redis.Options{Addr: opts.Addr}
	}
	ropts.DialTimeout = opts.DialTimeout
	if ropts.DialTimeout == 0 {
		ropts.DialTimeout = 5 * time.Second
	}
	return ropts, nil
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		b, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if err != nil {
			return classify(err)
		}
		data = b
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Del(ctx, c.prefix+key).Err())
	})
}

// Clear deletes every key under the cache prefix. Without a prefix it
// refuses to run, since that would empty the whole database.
func (c *RedisCache) Clear(ctx context.Context) error {
	if c.prefix == "" {
		return errors.New("refusing to clear redis cache without a key prefix")
	}
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 500).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 500 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Addr returns the address of the Redis server.
func (c *RedisCache) Addr() string { return c.client.Options().Addr }

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// classify marks network and server-loading errors as retryable. redis.Nil
// and everything else pass through unchanged.
func classify(err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) || strings.HasPrefix(err.Error(), "LOADING") {
		return Retryable(fmt.Errorf("%w: %w", ErrNetwork, err))
	}
	return err
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
