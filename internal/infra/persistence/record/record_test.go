package record

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestParams(store repository.KeyValueStore) Params {
	return Params{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewUserRepository(newTestParams(store))

	_, err := repo.FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Create(ctx, &entity.RegisteredUser{
		Email:        " Ada@Example.com ",
		Username:     "ada",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)

	raw, found, err := store.Get(ctx, repository.NewKey(repository.NamespaceUsers, "ada@example.com"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"email":"ada@example.com","username":"ada","passwordHash":"hash"}`, string(raw))
}

func TestSessionRepository_RoundTripAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestParams(memory.NewStore()))

	session, err := repo.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, session)

	want := &entity.Session{Token: "t", Email: "ada@example.com", Username: "ada", Authenticated: true}
	require.NoError(t, repo.Save(ctx, "visitor-1", want))

	got, err := repo.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.Clear(ctx, "visitor-1"))
	got, err = repo.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(newTestParams(memory.NewStore()))

	items, err := repo.Load(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	want := entity.CartItems{
		{Product: entity.Product{ID: 1, Title: "Backpack", Price: 109.95}, Quantity: 2},
		{Product: entity.Product{ID: 2, Title: "Shirt", Price: 22.3}, Quantity: 1},
	}
	require.NoError(t, repo.Save(ctx, "Ada@example.com", want))

	got, err := repo.Load(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalProductRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalProductRepository(newTestParams(memory.NewStore()))

	want := []entity.Product{
		{ID: 1700000000000, Title: "Lamp", Price: 10, Category: "home", Local: true, OwnerEmail: "ada@example.com"},
	}
	require.NoError(t, repo.Save(ctx, "ada@example.com", want))

	got, err := repo.Load(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	other, err := repo.Load(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMalformedRecordsLoadEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	params := newTestParams(store)

	for _, ns := range []string{
		repository.NamespaceUsers,
		repository.NamespaceCart,
		repository.NamespaceLocalProducts,
	} {
		require.NoError(t, store.Set(ctx, repository.NewKey(ns, "ada@example.com"), []byte("{not json")))
	}
	require.NoError(t, store.Set(ctx, repository.NewKey(repository.NamespaceSession, "visitor-1"), []byte("garbage")))

	_, err := NewUserRepository(params).FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	items, err := NewCartRepository(params).Load(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)

	products, err := NewLocalProductRepository(params).Load(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, products)

	session, err := NewSessionRepository(params).Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestBackendFailureIsStorageError(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockKeyValueStore(t)
	backendErr := errors.New("connection refused")
	key := repository.NewKey(repository.NamespaceCart, "ada@example.com")

	store.EXPECT().Get(ctx, key).Return(nil, false, backendErr)
	store.EXPECT().Set(ctx, key, []byte(`[]`)).Return(backendErr)

	repo := NewCartRepository(newTestParams(store))

	_, err := repo.Load(ctx, "ada@example.com")
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, backendErr)

	err = repo.Save(ctx, "ada@example.com", nil)
	assert.ErrorIs(t, err, backendErr)
}

func TestUserRepository_CreateNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestParams(memory.NewStore()))

	require.NoError(t, repo.Create(ctx, &entity.RegisteredUser{
		Email:        "ada@example.com",
		Username:     "ada",
		PasswordHash: "first",
	}))

	err := repo.Create(ctx, &entity.RegisteredUser{
		Email:        "ADA@example.com",
		Username:     "eve",
		PasswordHash: "second",
	})
	require.ErrorIs(t, err, repository.ErrUserAlreadyExists)

	user, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "first", user.PasswordHash)
}

func TestUserRepository_CreateBackendFailure(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockKeyValueStore(t)
	backendErr := errors.New("connection refused")
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	store.EXPECT().SetIfAbsent(ctx, key, mock.Anything).Return(false, backendErr)

	err := NewUserRepository(newTestParams(store)).Create(ctx, &entity.RegisteredUser{Email: "ada@example.com"})
	require.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, repository.ErrUserAlreadyExists)
}
