//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCache(t *testing.T) {
	tests := []struct {
		name       string
		redis      config.RedisConfig
		ttl        time.Duration
		wantNil    bool
		wantMemory bool
	}{
		{
			name:    "caching disabled",
			ttl:     0,
			wantNil: true,
		},
		{
			name:       "memory cache when redis disabled",
			ttl:        time.Minute,
			wantMemory: true,
		},
		{
			name:       "memory cache when redis unreachable",
			redis:      config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"},
			ttl:        time.Minute,
			wantMemory: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeCache(tt.redis, config.CatalogConfig{CacheTTL: tt.ttl}, http.NewHealthHandler())

			if tt.wantNil {
				assert.Nil(t, components)
				return
			}
			require.NotNil(t, components)
			assert.Nil(t, components.Client)
			if tt.wantMemory {
				assert.IsType(t, &catalog.MemoryCache{}, components.Cache)
			}
		})
	}
}
