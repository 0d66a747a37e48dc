package context

import (
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// KeyStorefront is the key for storing the visitor's storefront in echo.Context.
	KeyStorefront ContextKey = "storefront"

	// KeySessionEmail is the key for storing the authenticated email in echo.Context.
	KeySessionEmail ContextKey = "session_email"

	// HeaderXVisitorID is the HTTP header name for the visitor ID.
	HeaderXVisitorID = "X-Visitor-Id"
)

// SetStorefront stores the visitor's storefront in echo.Context.
func SetStorefront(c echo.Context, sf usecase.Storefront) {
	c.Set(string(KeyStorefront), sf)
}

// GetStorefront returns the visitor's storefront set by the visitor middleware.
func GetStorefront(c echo.Context) (usecase.Storefront, bool) {
	sf, ok := c.Get(string(KeyStorefront)).(usecase.Storefront)

	return sf, ok && sf != nil
}

// SetSessionEmail stores the authenticated email in echo.Context.
func SetSessionEmail(c echo.Context, email string) {
	c.Set(string(KeySessionEmail), email)
}

// GetSessionEmail returns the email set by the auth middleware.
func GetSessionEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeySessionEmail)).(string)

	return email, ok && email != ""
}
