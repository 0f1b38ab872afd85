// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Load(ctx context.Context) (model.CartState, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.CartState), args.Error(1)
}

func (m *MockCheckoutService) Apply(ctx context.Context, state *model.CartState, actions []model.Action) ([]bool, error) {
	args := m.Called(ctx, state, actions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bool), args.Error(1)
}

func (m *MockCheckoutService) Summarize(ctx context.Context, state model.CartState) (model.Summary, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(model.Summary), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) Replace(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockCatalogService) Seed(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) Writable() bool {
	args := m.Called()
	return args.Bool(0)
}
