//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	repo := NewProductRepositoryWithCircuitBreaker(NewProductRepository(db), cb)

	require.NoError(t, repo.ReplaceAll(ctx, model.DefaultCatalog()))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(model.DefaultCatalog()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(model.DefaultCatalog())), count)
	assert.Equal(t, circuitbreaker.StateClosed, repo.GetCircuitBreaker().State())
}
