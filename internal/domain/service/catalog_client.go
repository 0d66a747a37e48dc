package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogClient reads the remote product catalog. Calls are fire-once: no retries and no caching.
type CatalogClient interface {
	// ListProducts returns every product in the catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// ListCategories returns the category names known to the catalog.
	ListCategories(ctx context.Context) ([]string, error)
}
