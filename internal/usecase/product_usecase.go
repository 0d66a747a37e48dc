package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductStore holds the catalog products and the signed-in visitor's own products.
type ProductStore interface {
	// SetAPIProducts replaces the catalog partition.
	SetAPIProducts(products []entity.Product)

	// AddLocalProduct creates a product owned by ownerEmail and persists the owner's list.
	AddLocalProduct(ctx context.Context, draft entity.ProductDraft, ownerEmail string) (entity.Product, error)

	// LoadUserProducts replaces the local partition with the products stored for email.
	LoadUserProducts(ctx context.Context, email string) error

	// ClearUserProducts empties the local partition without touching storage.
	ClearUserProducts()

	APILoaded() bool
	APIProducts() []entity.Product
	LocalProducts() []entity.Product

	// AllProducts is the catalog partition followed by the local partition.
	AllProducts() []entity.Product

	FindProduct(id int64) (entity.Product, bool)
}
