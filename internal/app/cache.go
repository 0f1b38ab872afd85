package app

import (
	"context"
	"time"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisPingTimeout = 2 * time.Second

// CacheComponents holds the catalog cache and, when Redis is used, its client.
type CacheComponents struct {
	Cache  catalog.Cache
	Client *redis.Client
}

// InitializeCache returns a Redis-backed catalog cache when enabled and
// reachable, an in-memory one otherwise, and nil when caching is disabled by a
// non-positive TTL.
func InitializeCache(cfg config.RedisConfig, catalogCfg config.CatalogConfig, healthHandler *http.HealthHandler) *CacheComponents {
	if catalogCfg.CacheTTL <= 0 {
		return nil
	}

	if cfg.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.Addr,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: redisPingTimeout,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := client.Ping(ctx).Err()
		cancel()

		if err == nil {
			log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
			if healthHandler != nil {
				healthHandler.RegisterChecker("redis", http.HealthCheckFunc(func(ctx context.Context) error {
					return client.Ping(ctx).Err()
				}))
			}
			return &CacheComponents{
				Cache:  catalog.NewRedisCache(client, catalog.DefaultCacheKey, catalogCfg.CacheTTL),
				Client: client,
			}
		}

		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis - using in-memory catalog cache")
		_ = client.Close()
	}

	return &CacheComponents{Cache: catalog.NewMemoryCache(catalogCfg.CacheTTL)}
}
