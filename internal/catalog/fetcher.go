// Package catalog retrieves the product catalog that checkout carts are built from.
//
// Every source implements Fetcher. Failures are reported as *FetchError so the
// checkout flow can surface a display message without inspecting transports.
package catalog

import (
	"context"
	"errors"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// Fetcher retrieves the full product catalog. Fetch is safe to retry.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]model.Product, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) ([]model.Product, error) {
	return f(ctx)
}

// Response is the catalog wire shape.
//
// @Description Product catalog
type Response struct {
	Products []model.Product `json:"products"`
} // @name CatalogResponse

// FetchError is the single failure kind of a catalog fetch.
type FetchError struct {
	Message string
	Err     error
}

// NewFetchError builds a FetchError. An empty message falls back to the cause's
// text and then to model.DefaultFetchErrorMessage.
func NewFetchError(message string, err error) *FetchError {
	if message == "" && err != nil {
		message = err.Error()
	}
	if message == "" {
		message = model.DefaultFetchErrorMessage
	}
	return &FetchError{Message: message, Err: err}
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorMessage returns the display message for a fetch failure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		if fe.Message == "" {
			return model.DefaultFetchErrorMessage
		}
		return fe.Message
	}
	return NewFetchError("", err).Message
}

// validated wraps model.ValidateCatalog failures as FetchError.
func validated(products []model.Product) ([]model.Product, error) {
	if err := model.ValidateCatalog(products); err != nil {
		return nil, NewFetchError("invalid catalog: "+err.Error(), err)
	}
	return products, nil
}
