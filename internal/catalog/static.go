package catalog

import (
	"context"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
)

// StaticFetcher serves a fixed product list.
type StaticFetcher struct {
	products []model.Product
}

// NewStaticFetcher returns a fetcher over a copy of products.
func NewStaticFetcher(products []model.Product) *StaticFetcher {
	cp := make([]model.Product, len(products))
	copy(cp, products)
	return &StaticFetcher{products: cp}
}

// Fetch returns a copy of the configured products.
func (f *StaticFetcher) Fetch(ctx context.Context) ([]model.Product, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		fe := NewFetchError("", err)
		metrics.RecordCatalogFetch("static", time.Since(start), fe)
		return nil, fe
	}
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	products, err := validated(out)
	metrics.RecordCatalogFetch("static", time.Since(start), err)
	return products, err
}
