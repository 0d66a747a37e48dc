// Package record implements the typed storefront repositories as JSON documents
// on top of a repository.KeyValueStore.
package record

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"go.uber.org/fx"
)

// Params holds the dependencies shared by every record repository.
type Params struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// jsonRecord reads and writes one namespace of JSON documents.
type jsonRecord[T any] struct {
	store     repository.KeyValueStore
	namespace string
	logger    *slog.Logger
}

func newJSONRecord[T any](params Params, namespace string) jsonRecord[T] {
	return jsonRecord[T]{
		store:     params.Store,
		namespace: namespace,
		logger:    params.Logger,
	}
}

// load decodes the document stored under id. A missing or malformed document
// reports found=false; only backend failures are returned as errors.
func (r jsonRecord[T]) load(ctx context.Context, id string) (T, bool, error) {
	var value T
	key := repository.NewKey(r.namespace, id)

	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return value, false, domainerrors.NewStorageError(err, key.String())
	}
	if !found {
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
		logger.Warn("Discarding malformed record",
			slog.String("key", key.String()),
			slog.Any("error", err),
		)

		var zero T

		return zero, false, nil
	}

	return value, true, nil
}

func (r jsonRecord[T]) save(ctx context.Context, id string, value T) error {
	key := repository.NewKey(r.namespace, id)

	raw, err := json.Marshal(value)
	if err != nil {
		return domainerrors.NewStorageError(err, key.String())
	}

	if err := r.store.Set(ctx, key, raw); err != nil {
		return domainerrors.NewStorageError(err, key.String())
	}

	return nil
}

// create stores value under id only when no document exists there yet.
func (r jsonRecord[T]) create(ctx context.Context, id string, value T) (bool, error) {
	key := repository.NewKey(r.namespace, id)

	raw, err := json.Marshal(value)
	if err != nil {
		return false, domainerrors.NewStorageError(err, key.String())
	}

	created, err := r.store.SetIfAbsent(ctx, key, raw)
	if err != nil {
		return false, domainerrors.NewStorageError(err, key.String())
	}

	return created, nil
}

func (r jsonRecord[T]) delete(ctx context.Context, id string) error {
	key := repository.NewKey(r.namespace, id)
	if err := r.store.Delete(ctx, key); err != nil {
		return domainerrors.NewStorageError(err, key.String())
	}

	return nil
}
