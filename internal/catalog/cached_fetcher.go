package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	flightKey = "catalog"

	// DefaultSharedFetchTimeout bounds an upstream fetch shared by concurrent misses.
	DefaultSharedFetchTimeout = 30 * time.Second
)

// CachedFetcher serves the catalog from a Cache and falls back to an upstream Fetcher.
// Concurrent misses share a single upstream fetch that outlives any one caller.
// Cache failures are logged and bypassed.
type CachedFetcher struct {
	upstream Fetcher
	cache    Cache
	group    singleflight.Group
	timeout  time.Duration

	// mu orders cache writes against Invalidate. A fetch started before an
	// invalidation never writes its result back.
	mu         sync.Mutex
	generation uint64
}

// NewCachedFetcher wraps upstream with cache.
func NewCachedFetcher(upstream Fetcher, cache Cache) *CachedFetcher {
	return &CachedFetcher{upstream: upstream, cache: cache, timeout: DefaultSharedFetchTimeout}
}

// Fetch returns the cached catalog or fetches and caches it. A caller whose ctx
// ends stops waiting without aborting the shared fetch.
func (f *CachedFetcher) Fetch(ctx context.Context) ([]model.Product, error) {
	if products, ok := f.lookup(ctx); ok {
		return products, nil
	}

	ch := f.group.DoChan(flightKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()
		return f.fill(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared, _ := res.Val.([]model.Product)
		out := make([]model.Product, len(shared))
		copy(out, shared)
		return out, nil
	}
}

func (f *CachedFetcher) fill(ctx context.Context) ([]model.Product, error) {
	generation := f.currentGeneration()

	if products, ok := f.lookup(ctx); ok {
		return products, nil
	}
	products, err := f.upstream.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if generation != f.generation {
		metrics.RecordCacheOperation("set", "stale")
		log.Debug().Msg("Catalog changed during fetch, result not cached")
		return products, nil
	}
	if err := f.cache.Set(ctx, products); err != nil {
		metrics.RecordCacheOperation("set", "error")
		log.Warn().Err(err).Msg("Failed to cache catalog")
	} else {
		metrics.RecordCacheOperation("set", "success")
	}
	return products, nil
}

// Invalidate drops the cached catalog so the next Fetch reaches upstream.
// Fetches already in flight still answer their callers but are not cached.
func (f *CachedFetcher) Invalidate(ctx context.Context) error {
	f.mu.Lock()
	f.generation++
	f.mu.Unlock()
	f.group.Forget(flightKey)
	return f.cache.Invalidate(ctx)
}

func (f *CachedFetcher) currentGeneration() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation
}

func (f *CachedFetcher) lookup(ctx context.Context) ([]model.Product, bool) {
	products, ok, err := f.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.RecordCacheOperation("get", "error")
		log.Warn().Err(err).Msg("Catalog cache read failed")
		return nil, false
	case !ok:
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	default:
		metrics.RecordCacheOperation("get", "hit")
		return products, true
	}
}
