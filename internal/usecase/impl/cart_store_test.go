package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	backpack = entity.Product{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"}
	shirt    = entity.Product{ID: 2, Title: "Shirt", Price: 22.3, Category: "men's clothing"}
)

func newMockedCartStore(t *testing.T) (*cartStore, *mockRepo.MockCartRepository) {
	repo := mockRepo.NewMockCartRepository(t)
	store := NewCartStore(StoreDeps{CartRepo: repo, Logger: newDiscardLogger()}).(*cartStore)

	return store, repo
}

func TestCartStore_AddItemTwiceIncrementsQuantity(t *testing.T) {
	store, _ := newMockedCartStore(t)
	ctx := context.Background()

	store.AddItem(ctx, backpack)
	store.AddItem(ctx, backpack)
	store.AddItem(ctx, shirt)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, store.TotalItems())
	assert.InDelta(t, 2*109.95+22.3, store.TotalPrice(), 1e-9)
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	store, _ := newMockedCartStore(t)
	ctx := context.Background()

	store.AddItem(ctx, backpack)
	store.AddItem(ctx, shirt)

	store.UpdateQuantity(ctx, backpack.ID, 5)
	assert.Equal(t, 5, store.Items()[0].Quantity)

	store.UpdateQuantity(ctx, backpack.ID, 0)
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, shirt.ID, items[0].Product.ID)

	store.UpdateQuantity(ctx, shirt.ID, -3)
	assert.Empty(t, store.Items())

	store.UpdateQuantity(ctx, 99, 4)
	assert.Empty(t, store.Items())
}

func TestCartStore_RemoveAndClear(t *testing.T) {
	store, _ := newMockedCartStore(t)
	ctx := context.Background()

	store.AddItem(ctx, backpack)
	store.AddItem(ctx, shirt)

	store.RemoveItem(ctx, backpack.ID)
	assert.Len(t, store.Items(), 1)

	store.ClearCart(ctx)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalPrice())
}

func TestCartStore_PersistsUnderCurrentEmail(t *testing.T) {
	store, repo := newMockedCartStore(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "ada@example.com").Return(entity.CartItems{}, nil)
	require.NoError(t, store.LoadCart(ctx, "Ada@Example.com"))
	assert.Equal(t, "ada@example.com", store.CurrentEmail())

	repo.EXPECT().Save(ctx, "ada@example.com", entity.CartItems{{Product: backpack, Quantity: 1}}).Return(nil).Once()
	store.AddItem(ctx, backpack)

	store.UnloadCart()
	assert.Empty(t, store.CurrentEmail())

	store.AddItem(ctx, backpack)
	assert.Equal(t, 2, store.TotalItems())
}

func TestCartStore_PersistenceFailureDoesNotFailMutation(t *testing.T) {
	store, repo := newMockedCartStore(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "ada@example.com").Return(entity.CartItems{}, nil)
	require.NoError(t, store.LoadCart(ctx, "ada@example.com"))

	repo.EXPECT().Save(ctx, "ada@example.com", mock.Anything).Return(errors.New("disk full"))
	store.AddItem(ctx, shirt)

	assert.Equal(t, 1, store.TotalItems())
}

func TestCartStore_FailedLoadKeepsSavedCart(t *testing.T) {
	deps, _ := newMemoryDeps(t)
	ctx := context.Background()

	saved := entity.CartItems{{Product: backpack, Quantity: 3}, {Product: shirt, Quantity: 1}}
	require.NoError(t, deps.CartRepo.Save(ctx, "ada@example.com", saved))

	failingRepo := mockRepo.NewMockCartRepository(t)
	failingRepo.EXPECT().Load(ctx, "ada@example.com").Return(nil, errors.New("backend down"))
	store := NewCartStore(StoreDeps{CartRepo: failingRepo, Logger: newDiscardLogger()})

	require.Error(t, store.LoadCart(ctx, "ada@example.com"))
	assert.Empty(t, store.CurrentEmail())

	store.AddItem(ctx, entity.Product{ID: 9, Title: "Ring", Price: 10})
	store.UpdateQuantity(ctx, 9, 2)
	assert.Equal(t, 2, store.TotalItems())

	stored, err := deps.CartRepo.Load(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved, stored)
}

func TestCartStore_ItemsReturnsCopy(t *testing.T) {
	store, _ := newMockedCartStore(t)
	ctx := context.Background()

	store.AddItem(ctx, backpack)
	items := store.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, store.Items()[0].Quantity)
}

func TestCartStore_ReloadRestoresItems(t *testing.T) {
	deps, _ := newMemoryDeps(t)
	ctx := context.Background()

	first := NewCartStore(deps)
	require.NoError(t, first.LoadCart(ctx, "ada@example.com"))
	first.AddItem(ctx, backpack)
	first.AddItem(ctx, backpack)
	first.AddItem(ctx, shirt)

	second := NewCartStore(deps)
	require.NoError(t, second.LoadCart(ctx, "ADA@example.com"))
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, 3, second.TotalItems())
}
