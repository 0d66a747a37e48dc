package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocalProductRepository persists the products authored by one owner.
type LocalProductRepository interface {
	// Load returns the owner's products. A missing or unreadable record yields an empty list.
	Load(ctx context.Context, ownerEmail string) ([]entity.Product, error)

	// Save replaces the owner's products.
	Save(ctx context.Context, ownerEmail string, products []entity.Product) error
}
