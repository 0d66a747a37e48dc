// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthStore holds the session of a single visitor.
type AuthStore interface {
	// Register creates an account and signs the visitor in.
	Register(ctx context.Context, email, username, password string) error

	// Login verifies the credentials and signs the visitor in with the stored username.
	Login(ctx context.Context, email, password string) error

	// Logout clears the in-memory and persisted session. Accounts are untouched.
	Logout(ctx context.Context) error

	// Hydrate loads the persisted session and marks the store as hydrated.
	Hydrate(ctx context.Context) error

	// IsHydrated reports whether Hydrate has completed.
	IsHydrated() bool

	// Session returns a copy of the current session.
	Session() entity.Session
}
