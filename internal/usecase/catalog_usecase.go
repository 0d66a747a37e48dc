package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Sort orders accepted by Browse.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// BrowseQuery selects one page of the product list.
type BrowseQuery struct {
	Category string
	Sort     string
	Page     int
	PageSize int
}

// ProductPage is one page of a filtered and sorted product list.
type ProductPage struct {
	Items      []entity.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CatalogUsecase moves remote catalog data into a visitor's ProductStore and
// answers list queries against it.
type CatalogUsecase interface {
	// Refresh fetches products and categories and replaces the store's catalog partition.
	// The store is left unchanged on failure.
	Refresh(ctx context.Context, store ProductStore) ([]string, error)

	// EnsureLoaded refreshes the store once if its catalog partition was never loaded.
	EnsureLoaded(ctx context.Context, store ProductStore) error

	// Browse filters, sorts and paginates the store's products.
	Browse(store ProductStore, query BrowseQuery) ProductPage

	// Categories returns the remote categories followed by any extra category used by a product.
	Categories(ctx context.Context, store ProductStore) ([]string, error)

	// Product looks the product up in the store first, then in the remote catalog.
	Product(ctx context.Context, store ProductStore, id int64) (*entity.Product, error)
}
