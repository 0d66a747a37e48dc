// Package handler contains the echo handlers of the storefront API.
package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentStorefront returns the storefront attached by the visitor middleware.
func currentStorefront(c echo.Context) (usecase.Storefront, error) {
	sf, ok := deliverycontext.GetStorefront(c)
	if !ok {
		return nil, errors.New("visitor storefront missing from request context")
	}

	return sf, nil
}

func parseProductID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
