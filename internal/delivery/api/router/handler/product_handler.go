package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// ProductHandler serves catalog browsing and local product authoring.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// BrowseProductsRequest holds the query parameters of a product listing
type BrowseProductsRequest struct {
	Category string `query:"category"`
	Sort     string `query:"sort" validate:"omitempty,oneof=default price_asc price_desc"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"pageSize" validate:"gte=0,lte=100"`
}

// ScanProductRequest carries the text decoded from a product QR code
type ScanProductRequest struct {
	Data string `json:"data" validate:"required"`
}

// CategoriesResponse lists the known product categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListProducts returns one page of the visitor's merged catalog
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var req BrowseProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid query parameters", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.EnsureLoaded(c.Request().Context(), sf.Products()); err != nil {
		return response.HandleAppError(c, err)
	}

	page := h.catalogUC.Browse(sf.Products(), usecase.BrowseQuery{
		Category: req.Category,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	return response.Success(c, http.StatusOK, page)
}

// RefreshProducts refetches the remote catalog for the visitor
func (h *ProductHandler) RefreshProducts(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	categories, err := h.catalogUC.Refresh(c.Request().Context(), sf.Products())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CategoriesResponse{Categories: categories})
}

// ListCategories returns the remote categories merged with those of local products
func (h *ProductHandler) ListCategories(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	categories, err := h.catalogUC.Categories(c.Request().Context(), sf.Products())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CategoriesResponse{Categories: categories})
}

// GetProduct returns one product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.Product(c.Request().Context(), sf.Products(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductQR renders a PNG QR code that links to the product
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	if _, err := h.catalogUC.Product(c.Request().Context(), sf.Products(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateProductQR(productID)
	if err != nil {
		return response.InternalServerError(c, "QR_GENERATION_FAILED", "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanProduct resolves the link inside a scanned product QR code to the product
func (h *ProductHandler) ScanProduct(c echo.Context) error {
	var req ScanProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid scan input", validator.FieldErrors(err))
	}

	productID, err := h.qrCodeSvc.ParseProductQR(req.Data)
	if err != nil {
		return response.BadRequest(c, "INVALID_QR_CODE", "QR code does not link to a product")
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.Product(c.Request().Context(), sf.Products(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct adds a local product owned by the signed-in visitor
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Sign in to add products")
	}

	var draft entity.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&draft); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid product input", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	product, err := sf.Products().AddLocalProduct(c.Request().Context(), draft, email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}
