package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheKey is the Redis key holding the cached catalog.
const DefaultCacheKey = "checkout:catalog:products"

// Cache stores one catalog snapshot with a TTL.
type Cache interface {
	// Get returns the cached catalog; ok is false on a miss.
	Get(ctx context.Context) (products []model.Product, ok bool, err error)
	Set(ctx context.Context, products []model.Product) error
	Invalidate(ctx context.Context) error
}

// MemoryCache keeps the catalog in process memory.
type MemoryCache struct {
	products  atomic.Value // holds []model.Product
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// NewMemoryCache creates an in-process cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// Get returns the cached catalog if it has not expired.
func (c *MemoryCache) Get(_ context.Context) ([]model.Product, bool, error) {
	expiresAt, _ := c.expiresAt.Load().(time.Time)
	if !time.Now().Before(expiresAt) {
		return nil, false, nil
	}
	products, ok := c.products.Load().([]model.Product)
	if !ok {
		return nil, false, nil
	}
	out := make([]model.Product, len(products))
	copy(out, products)
	return out, true, nil
}

// Set stores a copy of products.
func (c *MemoryCache) Set(_ context.Context, products []model.Product) error {
	cp := make([]model.Product, len(products))
	copy(cp, products)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products.Store(cp)
	c.expiresAt.Store(time.Now().Add(c.ttl))
	return nil
}

// Invalidate expires the cached catalog.
func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
	return nil
}

// RedisCache stores the catalog as JSON under a single key.
type RedisCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. An empty key uses DefaultCacheKey.
func NewRedisCache(client redis.Cmdable, key string, ttl time.Duration) *RedisCache {
	if key == "" {
		key = DefaultCacheKey
	}
	return &RedisCache{client: client, key: key, ttl: ttl}
}

// Get reads and decodes the cached catalog.
func (c *RedisCache) Get(ctx context.Context) ([]model.Product, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var body Response
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, false, err
	}
	return body.Products, true, nil
}

// Set encodes products and stores them with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(Response{Products: products})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, string(data), c.ttl).Err()
}

// Invalidate deletes the cached catalog.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
