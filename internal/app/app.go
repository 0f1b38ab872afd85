// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the router and the resources released on shutdown.
type App struct {
	Router   *http.Router
	database *DatabaseComponents
	cache    *CacheComponents
}

// InitializeApp creates and wires all application dependencies.
// Optional backends (MongoDB, Redis) that cannot be reached are logged and
// replaced by their in-process fallbacks.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	healthHandler := http.NewHealthHandler()

	dbComponents := InitializeDatabase(cfg.Database, healthHandler)
	cacheComponents := InitializeCache(cfg.Redis, cfg.Catalog, healthHandler)
	serviceComponents := InitializeServices(cfg, dbComponents, cacheComponents, healthHandler)

	if serviceComponents.Catalog.Writable() {
		if err := initializeDefaultCatalog(serviceComponents.Catalog); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default catalog")
		}
	}

	router := http.NewRouter(healthHandler, InitializeRouter(cfg, serviceComponents))

	return &App{
		Router:   router,
		database: dbComponents,
		cache:    cacheComponents,
	}
}

// Close releases the router, the Redis client and the MongoDB connection.
func (a *App) Close(ctx context.Context) error {
	a.Router.Close()

	var errs []error
	if a.cache != nil && a.cache.Client != nil {
		errs = append(errs, a.cache.Client.Close())
	}
	if a.database != nil && a.database.DB != nil {
		errs = append(errs, a.database.DB.Close(ctx))
	}
	return errors.Join(errs...)
}
