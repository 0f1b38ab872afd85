package catalog

import (
	"context"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
)

// ProductLister is the read side of a product store.
type ProductLister interface {
	List(ctx context.Context) ([]model.Product, error)
}

// RepositoryFetcher reads the catalog from a product store.
type RepositoryFetcher struct {
	repo ProductLister
}

// NewRepositoryFetcher creates a fetcher backed by repo.
func NewRepositoryFetcher(repo ProductLister) *RepositoryFetcher {
	return &RepositoryFetcher{repo: repo}
}

// Fetch lists all products from the store.
func (f *RepositoryFetcher) Fetch(ctx context.Context) ([]model.Product, error) {
	start := time.Now()
	products, err := f.repo.List(ctx)
	if err != nil {
		fe := NewFetchError("", err)
		metrics.RecordCatalogFetch("repository", time.Since(start), fe)
		return nil, fe
	}
	products, err = validated(products)
	metrics.RecordCatalogFetch("repository", time.Since(start), err)
	return products, err
}
