package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	// maxCatalogBytes bounds the catalog body read from a remote source.
	maxCatalogBytes = 4 << 20

	msgSourceUnavailable = "catalog source unavailable"
)

// HTTPFetcher reads the catalog from a remote JSON endpoint.
type HTTPFetcher struct {
	url            string
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithCircuitBreaker guards requests with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) HTTPOption {
	return func(f *HTTPFetcher) {
		f.circuitBreaker = cb
	}
}

// NewHTTPFetcher creates a fetcher for url with the given request timeout.
func NewHTTPFetcher(url string, timeout time.Duration, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CircuitBreaker returns the breaker guarding this fetcher, if any.
func (f *HTTPFetcher) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return f.circuitBreaker
}

// Fetch performs GET url and decodes {"products": [...]}.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]model.Product, error) {
	start := time.Now()

	var products []model.Product
	var err error
	if f.circuitBreaker != nil {
		err = f.circuitBreaker.Execute(ctx, func() error {
			var fetchErr error
			products, fetchErr = f.fetch(ctx)
			return fetchErr
		})
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			err = NewFetchError(msgSourceUnavailable, err)
		}
	} else {
		products, err = f.fetch(ctx)
	}

	metrics.RecordCatalogFetch("http", time.Since(start), err)
	if err != nil {
		log.Warn().Err(err).Str("url", f.url).Msg("Catalog fetch failed")
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = NewFetchError("", err)
		}
		return nil, err
	}
	return products, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, NewFetchError("", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NewFetchError("", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxCatalogBytes))
		return nil, NewFetchError(fmt.Sprintf("catalog source responded with status %d", resp.StatusCode), nil)
	}

	var body Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBytes)).Decode(&body); err != nil {
		return nil, NewFetchError("", fmt.Errorf("decode catalog: %w", err))
	}
	if body.Products == nil {
		body.Products = []model.Product{}
	}
	return validated(body.Products)
}
