package repository

import (
	"context"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
)

// ProductRepositoryWithCircuitBreaker guards a product store with a circuit breaker.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker wraps repo with cb.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns the stored catalog.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// ReplaceAll replaces the stored catalog.
func (r *ProductRepositoryWithCircuitBreaker) ReplaceAll(ctx context.Context, products []model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.ReplaceAll(ctx, products)
	})
}

// Count returns the number of stored products.
func (r *ProductRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
