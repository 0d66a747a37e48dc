package impl

import (
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/record"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

// newMemoryDeps wires real repositories and services over a fresh in-memory backend.
func newMemoryDeps(t *testing.T) (StoreDeps, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	logger := newDiscardLogger()
	params := record.Params{Store: store, Logger: logger}

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return StoreDeps{
		UserRepo:    record.NewUserRepository(params),
		SessionRepo: record.NewSessionRepository(params),
		CartRepo:    record.NewCartRepository(params),
		ProductRepo: record.NewLocalProductRepository(params),
		Hasher:      auth.NewBcryptHasher(newTestConfig()),
		Tokens:      tokens,
		Logger:      logger,
	}, store
}
