// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockInvalidatingFetcher is a MockFetcher that also drops a cache.
type MockInvalidatingFetcher struct {
	MockFetcher
}

func (m *MockInvalidatingFetcher) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
