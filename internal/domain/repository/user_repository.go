package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned by Create when the email is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the operations on the registered-user table.
type UserRepository interface {
	// FindByEmail retrieves a single user by their normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error)

	// Create persists a new user. It never replaces an existing one and
	// returns ErrUserAlreadyExists instead.
	Create(ctx context.Context, user *entity.RegisteredUser) error
}
