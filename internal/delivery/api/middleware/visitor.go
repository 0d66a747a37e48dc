package middleware

import (
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VisitorMiddleware resolves the X-Visitor-Id header to the visitor's storefront.
type VisitorMiddleware struct {
	registry usecase.VisitorRegistry
}

// NewVisitorMiddleware is the constructor for VisitorMiddleware.
func NewVisitorMiddleware(registry usecase.VisitorRegistry) *VisitorMiddleware {
	return &VisitorMiddleware{registry: registry}
}

// Resolve attaches the visitor's restored storefront to the request. A visitor
// without an ID gets a new one, returned in the X-Visitor-Id response header.
func (m *VisitorMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		visitorID := c.Request().Header.Get(deliverycontext.HeaderXVisitorID)
		if visitorID == "" {
			visitorID = uuid.NewString()
		} else if _, err := uuid.Parse(visitorID); err != nil {
			return response.BadRequest(c, "INVALID_VISITOR_ID", "X-Visitor-Id must be a UUID")
		}

		sf, err := m.registry.Visit(c.Request().Context(), visitorID)
		if err != nil {
			return err
		}

		deliverycontext.SetStorefront(c, sf)
		c.Response().Header().Set(deliverycontext.HeaderXVisitorID, visitorID)

		return next(c)
	}
}
