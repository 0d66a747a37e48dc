package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	servicemocks "storefront/internal/mocks/service"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVisitorID = "0b7f5c8e-3a47-4a8e-9a43-7d0f6a2b9c11"

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestVisitorMiddleware_Resolve(t *testing.T) {
	e := echo.New()

	t.Run("generates a visitor ID when absent", func(t *testing.T) {
		sf := usecasemocks.NewMockStorefront(t)
		registry := usecasemocks.NewMockVisitorRegistry(t)

		var visited string
		registry.EXPECT().Visit(mock.Anything, mock.AnythingOfType("string")).
			RunAndReturn(func(_ context.Context, id string) (usecase.Storefront, error) {
				visited = id

				return sf, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewVisitorMiddleware(registry).Resolve(func(c echo.Context) error {
			got, ok := deliverycontext.GetStorefront(c)
			assert.True(t, ok)
			assert.Same(t, sf, got)

			return okHandler(c)
		})(c)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(visited)
		require.NoError(t, parseErr)
		assert.Equal(t, visited, rec.Header().Get(deliverycontext.HeaderXVisitorID))
	})

	t.Run("reuses the client visitor ID", func(t *testing.T) {
		sf := usecasemocks.NewMockStorefront(t)
		registry := usecasemocks.NewMockVisitorRegistry(t)
		registry.EXPECT().Visit(mock.Anything, testVisitorID).Return(sf, nil)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(deliverycontext.HeaderXVisitorID, testVisitorID)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, NewVisitorMiddleware(registry).Resolve(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, testVisitorID, rec.Header().Get(deliverycontext.HeaderXVisitorID))
	})

	t.Run("rejects a malformed visitor ID", func(t *testing.T) {
		registry := usecasemocks.NewMockVisitorRegistry(t)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(deliverycontext.HeaderXVisitorID, "../../etc")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, NewVisitorMiddleware(registry).Resolve(okHandler)(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_VISITOR_ID", decodeError(t, rec).Error.Code)
	})

	t.Run("propagates restore failures", func(t *testing.T) {
		registry := usecasemocks.NewMockVisitorRegistry(t)
		storageErr := domainerrors.NewStorageError(assert.AnError, "sessions:"+testVisitorID)
		registry.EXPECT().Visit(mock.Anything, testVisitorID).Return(nil, storageErr)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(deliverycontext.HeaderXVisitorID, testVisitorID)
		c := e.NewContext(req, httptest.NewRecorder())

		err := NewVisitorMiddleware(registry).Resolve(okHandler)(c)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func newAuthContext(t *testing.T, authHeader string, session entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	authStore := usecasemocks.NewMockAuthStore(t)
	authStore.EXPECT().Session().Return(session).Maybe()

	sf := usecasemocks.NewMockStorefront(t)
	sf.EXPECT().Auth().Return(authStore).Maybe()
	sf.EXPECT().VisitorID().Return(testVisitorID).Maybe()

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetStorefront(c, sf)

	return c, rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	session := entity.Session{
		Token:         "token-1",
		Email:         "ada@example.com",
		Username:      "ada",
		Authenticated: true,
	}
	claims := &service.SessionClaims{Email: "ada@example.com", Username: "ada"}

	tests := []struct {
		name       string
		header     string
		session    entity.Session
		setupMock  func(m *servicemocks.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			session:    session,
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrNotAuthenticated.ErrorCode(),
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			session:    session,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:    "invalid signature",
			header:  "Bearer token-1",
			session: session,
			setupMock: func(m *servicemocks.MockTokenService) {
				m.EXPECT().Validate("token-1").Return(nil, errors.New("bad signature"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrInvalidSessionToken.ErrorCode(),
		},
		{
			name:    "token replaced by a newer sign-in",
			header:  "Bearer token-0",
			session: session,
			setupMock: func(m *servicemocks.MockTokenService) {
				m.EXPECT().Validate("token-0").Return(claims, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrInvalidSessionToken.ErrorCode(),
		},
		{
			name:    "visitor signed out",
			header:  "Bearer token-1",
			session: entity.Session{},
			setupMock: func(m *servicemocks.MockTokenService) {
				m.EXPECT().Validate("token-1").Return(claims, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrInvalidSessionToken.ErrorCode(),
		},
		{
			name:    "current session token",
			header:  "Bearer token-1",
			session: session,
			setupMock: func(m *servicemocks.MockTokenService) {
				m.EXPECT().Validate("token-1").Return(claims, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := servicemocks.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			c, rec := newAuthContext(t, tt.header, tt.session)

			var gotEmail string
			err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
				gotEmail, _ = GetSessionEmail(c)

				return okHandler(c)
			})(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			} else {
				assert.Equal(t, "ada@example.com", gotEmail)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrProductNotFound.WithDetails("42")),
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.ErrProductNotFound.ErrorCode(),
		},
		{
			name:       "storage error",
			err:        domainerrors.NewStorageError(assert.AnError, "carts:ada@example.com"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	mw.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
