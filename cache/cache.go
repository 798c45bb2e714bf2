package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin Redis-backed TTL cache used for resolved image URLs.
// A nil *Cache is valid and does nothing, so callers never need to branch
// on whether caching is configured.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis; returns nil when no address is configured
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	log.Printf("✓ Redis cache enabled (%s)", addr)
	return &Cache{rdb: rdb}
}

// Get returns the cached value and whether it was present
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value with a TTL; failures are logged and ignored
func (c *Cache) Set(ctx context.Context, key, val string, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("⚠️  Cache set failed for %s: %v", key, err)
	}
}

// Close releases the underlying client
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
