package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository persists cart contents per user email.
type CartRepository interface {
	// Load returns the persisted items. A missing or unreadable record yields an empty cart.
	Load(ctx context.Context, email string) (entity.CartItems, error)

	// Save replaces the persisted items.
	Save(ctx context.Context, email string, items entity.CartItems) error
}
