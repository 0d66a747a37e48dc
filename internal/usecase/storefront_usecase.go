package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string
	Username string
	Password string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// Storefront is the state of one visitor: its session, cart and products.
// Sign-in and sign-out keep the three stores consistent with each other.
type Storefront interface {
	SignUp(ctx context.Context, input SignUpInput) (entity.Session, error)
	SignIn(ctx context.Context, input SignInInput) (entity.Session, error)
	SignOut(ctx context.Context) error

	// Restore hydrates the session and, when signed in, loads the user's cart and products.
	Restore(ctx context.Context) error

	VisitorID() string
	Auth() AuthStore
	Cart() CartStore
	Products() ProductStore
}

// VisitorRegistry hands out one restored Storefront per visitor ID.
type VisitorRegistry interface {
	Visit(ctx context.Context, visitorID string) (Storefront, error)
	Forget(visitorID string)
	Len() int
}
