//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, "products", db.Products.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("indexes exist", func(t *testing.T) {
		cursor, err := db.Products.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "product_id_unique")
		assert.Contains(t, names, "position")
	})

	t.Run("connect with custom config", func(t *testing.T) {
		cfg := DefaultMongoConfig()
		cfg.EnableCompression = false
		cfg.ConnectTimeout = 5 * time.Second

		other, err := NewMongoDBWithConfig(getSharedContainerURI(), sanitizeDBName(t.Name()), cfg)
		require.NoError(t, err)
		assert.NoError(t, other.Close(ctx))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
}
