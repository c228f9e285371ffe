package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per data class
const (
	TTLMenu    = 10 * time.Minute // menu catalog (changes rarely)
	TTLEvents  = 5 * time.Minute  // event listings
	TTLSession = 30 * time.Minute // session
	TTLShort   = 1 * time.Minute  // near-realtime data
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixMenu    = "menu:"
	PrefixEvents  = "events:"
	PrefixSession = "session:"
	PrefixUser    = "user:"
)

// Service Redis-backed cache. All operations tolerate a nil client:
// reads miss, writes are ignored, so the API works without Redis.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Menu catalog cache
	GetMenu(ctx context.Context, key string) ([]byte, error)
	SetMenu(ctx context.Context, key string, data interface{}) error
	InvalidateMenu(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service over the given Redis client (may be nil)
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) menuKey(key string) string {
	return PrefixMenu + key
}

func (c *redisCache) GetMenu(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.menuKey(key)).Bytes()
}

func (c *redisCache) SetMenu(ctx context.Context, key string, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.menuKey(key), jsonData, TTLMenu).Err()
}

func (c *redisCache) InvalidateMenu(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, PrefixMenu+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
