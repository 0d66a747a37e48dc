package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionRepository persists one visitor's session blob for reload continuity.
type SessionRepository interface {
	// Load returns the stored session. A missing or unreadable blob yields nil without error.
	Load(ctx context.Context, visitorID string) (*entity.Session, error)

	// Save replaces the stored session.
	Save(ctx context.Context, visitorID string, session *entity.Session) error

	// Clear removes the stored session.
	Clear(ctx context.Context, visitorID string) error
}
