// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/rs/zerolog/log"
)

const seedTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	Products       repository.ProductRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the product repository.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, healthHandler *http.HealthHandler) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	cb := newCircuitBreaker(cfg, "mongodb-products")
	products := repository.NewProductRepositoryWithCircuitBreaker(repository.NewProductRepository(db), cb)

	if healthHandler != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_products", cb)
	}

	return &DatabaseComponents{
		DB:             db,
		Products:       products,
		CircuitBreaker: cb,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// initializeDefaultCatalog stores the built-in catalog if the products collection is empty.
func initializeDefaultCatalog(svc service.CatalogService) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	seeded, err := svc.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded {
		log.Info().Msg("Seeded default catalog")
	}
	return nil
}
