package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	fallback := slog.Default()
	ctx := context.Background()

	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "r-1"))
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Equal(t, "r-1", GetRequestIDFromContext(WithRequestID(ctx, "r-1")))
}

func TestEchoContextValues(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))
	SetRequestID(c, "r-2")
	assert.Equal(t, "r-2", GetRequestID(c))

	_, ok := GetStorefront(c)
	assert.False(t, ok)
	sf := mockUC.NewMockStorefront(t)
	SetStorefront(c, sf)
	got, ok := GetStorefront(c)
	assert.True(t, ok)
	assert.Same(t, sf, got)

	_, ok = GetSessionEmail(c)
	assert.False(t, ok)
	SetSessionEmail(c, "ada@example.com")
	email, ok := GetSessionEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", email)
}
