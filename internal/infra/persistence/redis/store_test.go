package redis

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance and a store bound to it
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client, "sf")

	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})

	return mr, store
}

func TestStore_SetGetDelete(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()
	key := repository.NewKey(repository.NamespaceCart, "ada@example.com")

	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
	assert.True(t, mr.Exists("sf:cart:ada@example.com"))

	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Delete(ctx, key))
	assert.False(t, mr.Exists("sf:cart:ada@example.com"))
}

func TestStore_NoExpiry(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	require.NoError(t, store.Set(ctx, key, []byte(`{}`)))
	assert.Zero(t, mr.TTL("sf:users:ada@example.com"))
}

func TestStore_BackendErrorIsReturned(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()
	key := repository.NewKey(repository.NamespaceCart, "ada@example.com")

	mr.SetError("READONLY simulated failure")
	_, _, err := store.Get(ctx, key)
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, key, []byte(`[]`)))
}

func TestOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := Open(context.Background(), "redis://"+mr.Addr()+"/0", "sf")
	require.NoError(t, err)
	defer store.Close()

	_, err = Open(context.Background(), "not-a-url", "sf")
	assert.Error(t, err)
}

func TestStore_SetIfAbsent(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	created, err := store.SetIfAbsent(ctx, key, []byte(`{"username":"ada"}`))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.SetIfAbsent(ctx, key, []byte(`{"username":"eve"}`))
	require.NoError(t, err)
	assert.False(t, created)

	value, err := mr.Get("sf:users:ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, `{"username":"ada"}`, value)
	assert.Zero(t, mr.TTL("sf:users:ada@example.com"))
}
