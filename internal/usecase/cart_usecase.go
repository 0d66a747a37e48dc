package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore holds the cart of a single visitor. Mutations persist the whole
// cart under the current email on a best-effort basis.
type CartStore interface {
	LoadCart(ctx context.Context, email string) error
	UnloadCart()
	AddItem(ctx context.Context, product entity.Product)
	RemoveItem(ctx context.Context, productID int64)
	UpdateQuantity(ctx context.Context, productID int64, quantity int)
	ClearCart(ctx context.Context)

	Items() entity.CartItems
	TotalItems() int
	TotalPrice() float64
	CurrentEmail() string
}
