package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartStore implements usecase.CartStore for one visitor.
type cartStore struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger

	mu           sync.Mutex
	items        entity.CartItems
	currentEmail string
}

// NewCartStore builds an empty cart with no current email.
func NewCartStore(deps StoreDeps) usecase.CartStore {
	return &cartStore{
		cartRepo: deps.CartRepo,
		logger:   deps.Logger,
		items:    entity.CartItems{},
	}
}

func (s *cartStore) LoadCart(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cartRepo.Load(ctx, email)
	if err != nil {
		// Without the saved cart a later write would overwrite it, so stay memory-only.
		s.currentEmail = ""
		s.items = entity.CartItems{}

		return errors.Wrap(err, "failed to load cart")
	}
	s.currentEmail = email
	s.items = items

	return nil
}

func (s *cartStore) UnloadCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentEmail = ""
}

func (s *cartStore) AddItem(ctx context.Context, product entity.Product) {
	s.mutate(ctx, func(items entity.CartItems) entity.CartItems {
		if i := items.IndexOf(product.ID); i >= 0 {
			items[i].Quantity++

			return items
		}

		return append(items, entity.CartItem{Product: product, Quantity: 1})
	})
}

func (s *cartStore) RemoveItem(ctx context.Context, productID int64) {
	s.mutate(ctx, func(items entity.CartItems) entity.CartItems {
		return slices.DeleteFunc(items, func(item entity.CartItem) bool {
			return item.Product.ID == productID
		})
	})
}

func (s *cartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)

		return
	}

	s.mutate(ctx, func(items entity.CartItems) entity.CartItems {
		if i := items.IndexOf(productID); i >= 0 {
			items[i].Quantity = quantity
		}

		return items
	})
}

func (s *cartStore) ClearCart(ctx context.Context) {
	s.mutate(ctx, func(entity.CartItems) entity.CartItems {
		return entity.CartItems{}
	})
}

// mutate applies fn to a private copy of the items, swaps it in and persists it
// when an email is current. Persistence failures are logged only.
func (s *cartStore) mutate(ctx context.Context, fn func(entity.CartItems) entity.CartItems) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = fn(slices.Clone(s.items))
	if s.currentEmail == "" {
		return
	}

	if err := s.cartRepo.Save(ctx, s.currentEmail, s.items); err != nil {
		requestLogger(ctx, s.logger).Warn("Failed to persist cart",
			slog.String("email", s.currentEmail),
			slog.Any("error", err),
		)
	}
}

func (s *cartStore) Items() entity.CartItems {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *cartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items.TotalItems()
}

func (s *cartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items.TotalPrice()
}

func (s *cartStore) CurrentEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentEmail
}
