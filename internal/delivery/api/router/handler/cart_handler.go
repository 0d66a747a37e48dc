package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CartHandler serves the visitor's shopping cart.
type CartHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a product to the cart
type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartResponse is the cart content with its derived totals
type CartResponse struct {
	Items      entity.CartItems `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

func toCartResponse(cart usecase.CartStore) CartResponse {
	items := cart.Items()
	if items == nil {
		items = entity.CartItems{}
	}

	return CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// GetCart returns the visitor's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCartResponse(sf.Cart()))
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid cart input", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.Product(c.Request().Context(), sf.Products(), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sf.Cart().AddItem(c.Request().Context(), *product)

	return response.Success(c, http.StatusOK, toCartResponse(sf.Cart()))
}

// UpdateItem sets the quantity of a cart line; zero or less removes it
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid cart input", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	sf.Cart().UpdateQuantity(c.Request().Context(), productID, *req.Quantity)

	return response.Success(c, http.StatusOK, toCartResponse(sf.Cart()))
}

// RemoveItem drops a product line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	sf.Cart().RemoveItem(c.Request().Context(), productID)

	return response.Success(c, http.StatusOK, toCartResponse(sf.Cart()))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	sf.Cart().ClearCart(c.Request().Context())

	return response.Success(c, http.StatusOK, toCartResponse(sf.Cart()))
}
