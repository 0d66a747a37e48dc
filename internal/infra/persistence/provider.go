// Package persistence selects the key-value backend configured by storage.provider.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Supported storage providers.
const (
	ProviderMemory   = "memory"
	ProviderBlob     = "blob"
	ProviderRedis    = "redis"
	ProviderPostgres = "postgres"
)

// StoreParams holds dependencies for NewKeyValueStore, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type closer interface {
	Close() error
}

// NewKeyValueStore opens the configured backend and closes it when the application stops.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	storage := params.Config.Storage
	provider := strings.ToLower(strings.TrimSpace(storage.Provider))

	var (
		store repository.KeyValueStore
		err   error
	)
	switch provider {
	case "", ProviderMemory:
		provider = ProviderMemory
		store = memory.NewStore()
	case ProviderBlob:
		if storage.BlobURL == "" {
			return nil, errors.New("storage.blobUrl is required for the blob provider")
		}
		store, err = blob.Open(params.Ctx, storage.BlobURL, storage.Prefix)
	case ProviderRedis:
		if storage.RedisURL == "" {
			return nil, errors.New("storage.redisUrl is required for the redis provider")
		}
		store, err = redis.Open(params.Ctx, storage.RedisURL, storage.Prefix)
	case ProviderPostgres:
		store, err = postgres.Open(params.Ctx, postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	default:
		return nil, errors.Errorf("unknown storage provider %q", storage.Provider)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s storage", provider)
	}

	if c, ok := store.(closer); ok {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return c.Close()
			},
		})
	}

	params.Logger.Info("Key-value storage ready", slog.String("provider", provider))

	return store, nil
}
