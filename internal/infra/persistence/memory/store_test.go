package memory

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	key := repository.NewKey(repository.NamespaceCart, "ada@example.com")

	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, key))
	_, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, key, value))
	value[0] = 'x'

	got, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, repository.NewKey(repository.NamespaceCart, "a"), []byte("cart")))
	require.NoError(t, store.Set(ctx, repository.NewKey(repository.NamespaceLocalProducts, "a"), []byte("products")))

	got, _, err := store.Get(ctx, repository.NewKey(repository.NamespaceCart, "a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cart"), got)
}

func TestStore_SetIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	created, err := store.SetIfAbsent(ctx, key, []byte(`{"username":"ada"}`))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.SetIfAbsent(ctx, key, []byte(`{"username":"eve"}`))
	require.NoError(t, err)
	assert.False(t, created)

	value, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"username":"ada"}`), value)
}
