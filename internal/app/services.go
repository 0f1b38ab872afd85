// Package app provides service initialization.
package app

import (
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Catalog source names, as logged at startup.
const (
	SourceHTTP    = "http"
	SourceMongoDB = "mongodb"
	SourceStatic  = "static"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Source   string
	Fetcher  catalog.Fetcher
	Checkout service.CheckoutService
	Catalog  service.CatalogService
}

// InitializeServices picks the catalog source, wraps it in the cache and
// builds the checkout and catalog services on top of it.
func InitializeServices(
	cfg config.Config,
	dbComponents *DatabaseComponents,
	cacheComponents *CacheComponents,
	healthHandler *http.HealthHandler,
) *ServiceComponents {
	source, fetcher, repo := newCatalogSource(cfg, dbComponents, healthHandler)

	if cacheComponents != nil && cacheComponents.Cache != nil {
		fetcher = catalog.NewCachedFetcher(fetcher, cacheComponents.Cache)
	}

	log.Info().Str("source", source).Bool("writable", repo != nil).Msg("Catalog source configured")

	return &ServiceComponents{
		Source:   source,
		Fetcher:  fetcher,
		Checkout: service.NewCheckoutService(fetcher),
		Catalog:  service.NewCatalogService(fetcher, repo),
	}
}

// newCatalogSource prefers CATALOG_URL, then MongoDB, then the built-in catalog.
// Only the MongoDB source returns a repository, which makes the catalog writable.
func newCatalogSource(
	cfg config.Config,
	dbComponents *DatabaseComponents,
	healthHandler *http.HealthHandler,
) (string, catalog.Fetcher, repository.ProductRepositoryInterface) {
	switch {
	case cfg.Catalog.URL != "":
		cb := newCircuitBreaker(cfg.Database, "catalog-http")
		if healthHandler != nil {
			healthHandler.RegisterCircuitBreaker("catalog_http", cb)
		}
		return SourceHTTP, catalog.NewHTTPFetcher(cfg.Catalog.URL, cfg.Catalog.Timeout, catalog.WithCircuitBreaker(cb)), nil
	case dbComponents != nil && dbComponents.Products != nil:
		return SourceMongoDB, catalog.NewRepositoryFetcher(dbComponents.Products), dbComponents.Products
	default:
		return SourceStatic, catalog.NewStaticFetcher(model.DefaultCatalog()), nil
	}
}
