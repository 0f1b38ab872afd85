package repository

import (
	"context"
	"errors"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// ProductRepositoryInterface defines the product store operations.
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]model.Product, error)
	ReplaceAll(ctx context.Context, products []model.Product) error
	Count(ctx context.Context) (int64, error)
}

var (
	_ ProductRepositoryInterface = (*ProductRepository)(nil)
	_ ProductRepositoryInterface = (*ProductRepositoryWithCircuitBreaker)(nil)
)

// ErrNotConfigured is returned when an operation needs the product store and none is configured.
var ErrNotConfigured = errors.New("product repository not configured")
