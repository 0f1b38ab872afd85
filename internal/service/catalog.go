package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCatalog is returned when a catalog replacement fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// CatalogService exposes the product catalog and, when backed by MongoDB, its maintenance.
type CatalogService interface {
	List(ctx context.Context) ([]model.Product, error)
	Replace(ctx context.Context, products []model.Product) error
	// Seed stores the default catalog if the store is empty and reports whether it did.
	Seed(ctx context.Context) (bool, error)
	// Writable reports whether Replace and Seed are available.
	Writable() bool
}

type invalidator interface {
	Invalidate(ctx context.Context) error
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	fetcher catalog.Fetcher
	repo    repository.ProductRepositoryInterface
}

// NewCatalogService creates a catalog service. repo may be nil when the catalog
// does not come from MongoDB.
func NewCatalogService(fetcher catalog.Fetcher, repo repository.ProductRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{fetcher: fetcher, repo: repo}
}

func (s *CatalogServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	return s.fetcher.Fetch(ctx)
}

func (s *CatalogServiceImpl) Writable() bool {
	return s.repo != nil
}

func (s *CatalogServiceImpl) Replace(ctx context.Context, products []model.Product) error {
	if s.repo == nil {
		return repository.ErrNotConfigured
	}
	if err := model.ValidateCatalog(products); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}

	s.invalidate(ctx)
	log.Info().Int("products", len(products)).Msg("Catalog replaced")
	return nil
}

func (s *CatalogServiceImpl) Seed(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, repository.ErrNotConfigured
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := s.repo.ReplaceAll(ctx, model.DefaultCatalog()); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	s.invalidate(ctx)
	return true, nil
}

func (s *CatalogServiceImpl) invalidate(ctx context.Context) {
	inv, ok := s.fetcher.(invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Catalog cache invalidation failed")
	}
}
