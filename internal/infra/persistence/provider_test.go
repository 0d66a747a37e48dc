package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, storage config.StorageConfig) (StoreParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: storage}

	return StoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewKeyValueStore_Providers(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		storage config.StorageConfig
		check   func(t *testing.T, store repository.KeyValueStore)
	}{
		{
			name:    "empty provider defaults to memory",
			storage: config.StorageConfig{},
			check: func(t *testing.T, store repository.KeyValueStore) {
				assert.IsType(t, &memory.Store{}, store)
			},
		},
		{
			name:    "blob",
			storage: config.StorageConfig{Provider: "blob", BlobURL: "mem://", Prefix: "sf"},
			check: func(t *testing.T, store repository.KeyValueStore) {
				assert.IsType(t, &blob.Store{}, store)
			},
		},
		{
			name:    "redis",
			storage: config.StorageConfig{Provider: "Redis", RedisURL: "redis://" + mr.Addr(), Prefix: "sf"},
			check: func(t *testing.T, store repository.KeyValueStore) {
				assert.IsType(t, &redis.Store{}, store)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, lc := newParams(t, tt.storage)

			store, err := NewKeyValueStore(params)
			require.NoError(t, err)
			tt.check(t, store)

			ctx := context.Background()
			key := repository.NewKey(repository.NamespaceCart, "ada@example.com")
			require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
			value, found, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte(`[]`), value)

			lc.RequireStart().RequireStop()
		})
	}
}

func TestNewKeyValueStore_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		storage config.StorageConfig
		wantErr string
	}{
		{name: "unknown provider", storage: config.StorageConfig{Provider: "dynamo"}, wantErr: "unknown storage provider"},
		{name: "blob without url", storage: config.StorageConfig{Provider: "blob"}, wantErr: "storage.blobUrl"},
		{name: "redis without url", storage: config.StorageConfig{Provider: "redis"}, wantErr: "storage.redisUrl"},
		{name: "postgres without config", storage: config.StorageConfig{Provider: "postgres"}, wantErr: "postgres config is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := newParams(t, tt.storage)

			_, err := NewKeyValueStore(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
