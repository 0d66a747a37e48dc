package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	usecasemocks "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	registry := usecasemocks.NewMockVisitorRegistry(t)

	r := NewRouter(RouterParams{
		AuthHandler:       &handler.AuthHandler{},
		ProductHandler:    &handler.ProductHandler{},
		CartHandler:       &handler.CartHandler{},
		AuthMiddleware:    middleware.NewAuthMiddleware(nil),
		VisitorMiddleware: middleware.NewVisitorMiddleware(registry),
	})
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/logout",
		"GET /auth/session",
		"GET /products",
		"POST /products",
		"POST /products/refresh",
		"GET /products/categories",
		"POST /products/scan",
		"GET /products/:id",
		"GET /products/:id/qr",
		"GET /cart",
		"DELETE /cart",
		"POST /cart/items",
		"PUT /cart/items/:id",
		"DELETE /cart/items/:id",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestRegisterRoutes_HealthSkipsVisitorResolution(t *testing.T) {
	e := echo.New()
	registry := usecasemocks.NewMockVisitorRegistry(t)

	r := NewRouter(RouterParams{
		AuthHandler:       &handler.AuthHandler{},
		ProductHandler:    &handler.ProductHandler{},
		CartHandler:       &handler.CartHandler{},
		AuthMiddleware:    middleware.NewAuthMiddleware(nil),
		VisitorMiddleware: middleware.NewVisitorMiddleware(registry),
	})
	r.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(deliverycontext.HeaderXVisitorID))
}
