// Package service holds the checkout and catalog use cases.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCartState is returned when a client-supplied state breaks the cart invariants.
var ErrInvalidCartState = errors.New("invalid cart state")

// CheckoutService runs the catalog load lifecycle and applies quantity actions.
type CheckoutService interface {
	// Load fetches the catalog into a fresh state. On failure the returned state
	// carries the error message and err is the *catalog.FetchError.
	Load(ctx context.Context) (model.CartState, error)

	// Apply checks state against the catalog, dispatches actions in order and
	// reports which ones changed it.
	Apply(ctx context.Context, state *model.CartState, actions []model.Action) ([]bool, error)

	// Summarize checks state against the catalog and returns its order summary.
	Summarize(ctx context.Context, state model.CartState) (model.Summary, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	fetcher catalog.Fetcher
}

// NewCheckoutService creates a checkout service reading the catalog from fetcher.
func NewCheckoutService(fetcher catalog.Fetcher) CheckoutService {
	return &CheckoutServiceImpl{fetcher: fetcher}
}

func (s *CheckoutServiceImpl) Load(ctx context.Context) (model.CartState, error) {
	state := model.NewCartState()
	state.FetchStart()

	products, err := s.fetcher.Fetch(ctx)
	if err != nil {
		fe := asFetchError(err)
		state.FetchFailed(fe.Message)
		log.Warn().Err(err).Msg("Checkout catalog load failed")
		return state, fe
	}

	state.FetchSucceeded(products)
	log.Debug().Int("lines", len(state.Lines)).Msg("Checkout catalog loaded")
	return state, nil
}

func (s *CheckoutServiceImpl) Apply(ctx context.Context, state *model.CartState, actions []model.Action) ([]bool, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: missing state", ErrInvalidCartState)
	}
	if err := s.verify(ctx, state); err != nil {
		return nil, err
	}

	applied := make([]bool, len(actions))
	for i, a := range actions {
		applied[i] = state.Dispatch(a)
		metrics.RecordCartTransition(string(a.Type), applied[i])
	}
	return applied, nil
}

func (s *CheckoutServiceImpl) Summarize(ctx context.Context, state model.CartState) (model.Summary, error) {
	if err := s.verify(ctx, &state); err != nil {
		return model.Summary{}, err
	}
	return model.Summarize(state), nil
}

// verify rejects a client state that breaks the cart invariants or no longer
// matches the catalog. Catalog fetch failures are returned as *catalog.FetchError.
func (s *CheckoutServiceImpl) verify(ctx context.Context, state *model.CartState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCartState, err)
	}
	if len(state.Lines) == 0 {
		return nil
	}

	products, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Checkout catalog unavailable for cart verification")
		return asFetchError(err)
	}
	if err := state.Reconcile(products); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCartState, err)
	}
	return nil
}

// asFetchError normalizes err to a *catalog.FetchError carrying a display message.
func asFetchError(err error) *catalog.FetchError {
	var fe *catalog.FetchError
	if !errors.As(err, &fe) {
		return catalog.NewFetchError("", err)
	}
	if fe.Message == "" {
		return catalog.NewFetchError("", fe.Err)
	}
	return fe
}
