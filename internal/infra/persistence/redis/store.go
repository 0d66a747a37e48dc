// Package redis provides a KeyValueStore backed by Redis string keys.
package redis

import (
	"context"
	"time"

	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const pingTimeout = 5 * time.Second

// Store maps each key to the Redis key {prefix}:{namespace}:{id}.
type Store struct {
	client *redis.Client
	prefix string
}

// Open parses redisURL, connects and verifies the connection.
func Open(ctx context.Context, redisURL, prefix string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis URL")
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return NewStore(client, prefix), nil
}

// NewStore wraps an existing client.
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) redisKey(key repository.Key) string {
	if s.prefix == "" {
		return key.String()
	}

	return s.prefix + ":" + key.String()
}

// Get reads the value for key.
func (s *Store) Get(ctx context.Context, key repository.Key) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to get %s", key)
	}

	return value, true, nil
}

// Set writes value without expiry.
func (s *Store) Set(ctx context.Context, key repository.Key, value []byte) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

// SetIfAbsent writes value with SETNX so only the first writer wins.
func (s *Store) SetIfAbsent(ctx context.Context, key repository.Key, value []byte) (bool, error) {
	created, err := s.client.SetNX(ctx, s.redisKey(key), value, 0).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to create %s", key)
	}

	return created, nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key repository.Key) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return errors.WithStack(s.client.Close())
}
