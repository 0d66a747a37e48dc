package middleware

import (
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a Bearer token that is valid and is the current session
// token of the visitor. It must run after VisitorMiddleware.Resolve.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidSessionToken)
		}

		sf, ok := deliverycontext.GetStorefront(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
		}

		session := sf.Auth().Session()
		if !session.Authenticated || session.Token != tokenString || session.Email != claims.Email {
			return response.HandleAppError(c, domainerrors.ErrInvalidSessionToken)
		}

		deliverycontext.SetSessionEmail(c, session.Email)

		return next(c)
	}
}

// GetSessionEmail returns the authenticated email set by Authenticate.
func GetSessionEmail(c echo.Context) (string, bool) {
	return deliverycontext.GetSessionEmail(c)
}
