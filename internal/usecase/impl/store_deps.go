// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// StoreDeps are the shared dependencies every per-visitor store is built from, injected by Fx.
type StoreDeps struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	CartRepo    repository.CartRepository
	ProductRepo repository.LocalProductRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// requestLogger returns a request-scoped logger if available, otherwise the fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
