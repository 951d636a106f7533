// Package cache is a best-effort read-through cache for the hot catalog
// lists. A miss, a marshal problem or a Redis outage all fall through to the
// database; the cache never turns into a hard dependency.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sinopos/storefront-api/pkg/config"
)

// Cache keys for the catalog lists invalidated by admin writes.
const (
	KeyCategories = "catalog:categories"
	KeyProducts   = "catalog:products"
	KeyFeatured   = "catalog:products:featured"
	KeyNew        = "catalog:products:new"
)

// Catalog wraps a Redis client. A nil client (no REDIS_ADDR configured)
// disables caching entirely; every method is a safe no-op then.
type Catalog struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis per configuration. Empty Addr returns a disabled cache.
func New(cfg config.RedisConfig) *Catalog {
	if cfg.Addr == "" {
		return &Catalog{}
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Catalog{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: ttl,
	}
}

// Get unmarshals the cached value for key into dest, reporting whether it hit.
func (c *Catalog) Get(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key with the configured TTL. Errors are dropped:
// failing to cache is not a failure of the request.
func (c *Catalog) Set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops the given keys (called after admin mutations).
func (c *Catalog) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

// InvalidateCatalog drops every catalog list key.
func (c *Catalog) InvalidateCatalog(ctx context.Context) {
	c.Invalidate(ctx, KeyCategories, KeyProducts, KeyFeatured, KeyNew)
}

// Close releases the underlying client.
func (c *Catalog) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
