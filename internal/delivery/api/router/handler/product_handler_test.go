package handler

import (
	"net/http"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	servicemocks "storefront/internal/mocks/service"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	sf       *usecasemocks.MockStorefront
	products *usecasemocks.MockProductStore
	catalog  *usecasemocks.MockCatalogUsecase
	qr       *servicemocks.MockQRCodeService
	handler  *ProductHandler
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	f := &productFixture{
		sf:       newStorefrontMock(t),
		products: usecasemocks.NewMockProductStore(t),
		catalog:  usecasemocks.NewMockCatalogUsecase(t),
		qr:       servicemocks.NewMockQRCodeService(t),
	}
	f.sf.EXPECT().Products().Return(f.products).Maybe()
	f.handler = NewProductHandler(ProductHandlerParams{
		CatalogUC: f.catalog,
		QRCodeSvc: f.qr,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("loads the catalog and returns a page", func(t *testing.T) {
		f := newProductFixture(t)
		page := usecase.ProductPage{
			Items:      []entity.Product{{ID: 2, Title: "Shirt", Price: 9.5, Category: "clothing"}},
			Total:      3,
			Page:       2,
			PageSize:   1,
			TotalPages: 3,
		}
		f.catalog.EXPECT().EnsureLoaded(mock.Anything, f.products).Return(nil)
		f.catalog.EXPECT().Browse(f.products, usecase.BrowseQuery{
			Category: "clothing",
			Sort:     usecase.SortPriceAsc,
			Page:     2,
			PageSize: 1,
		}).Return(page)

		c, rec := newContext(t, http.MethodGet, "/products?category=clothing&sort=price_asc&page=2&pageSize=1", "", f.sf)

		require.NoError(t, f.handler.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got usecase.ProductPage
		decodeData(t, rec, &got)
		assert.Equal(t, page, got)
	})

	t.Run("rejects an unknown sort order", func(t *testing.T) {
		f := newProductFixture(t)

		c, rec := newContext(t, http.MethodGet, "/products?sort=name", "", f.sf)

		require.NoError(t, f.handler.ListProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		f := newProductFixture(t)
		f.catalog.EXPECT().EnsureLoaded(mock.Anything, f.products).
			Return(domainerrors.ErrCatalogUnavailable.WrapMessage("status 503"))

		c, rec := newContext(t, http.MethodGet, "/products", "", f.sf)

		require.NoError(t, f.handler.ListProducts(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, domainerrors.ErrCatalogUnavailable.ErrorCode(), decode(t, rec).Error.Code)
	})
}

func TestProductHandler_RefreshAndCategories(t *testing.T) {
	f := newProductFixture(t)
	f.catalog.EXPECT().Refresh(mock.Anything, f.products).Return([]string{"electronics", "jewelery"}, nil)
	f.catalog.EXPECT().Categories(mock.Anything, f.products).Return([]string{"electronics", "jewelery", "handmade"}, nil)

	c, rec := newContext(t, http.MethodPost, "/products/refresh", "", f.sf)
	require.NoError(t, f.handler.RefreshProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var refreshed CategoriesResponse
	decodeData(t, rec, &refreshed)
	assert.Equal(t, []string{"electronics", "jewelery"}, refreshed.Categories)

	c, rec = newContext(t, http.MethodGet, "/products/categories", "", f.sf)
	require.NoError(t, f.handler.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listed CategoriesResponse
	decodeData(t, rec, &listed)
	assert.Equal(t, []string{"electronics", "jewelery", "handmade"}, listed.Categories)
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newProductFixture(t)
		f.catalog.EXPECT().Product(mock.Anything, f.products, int64(7)).
			Return(&entity.Product{ID: 7, Title: "Ring"}, nil)

		c, rec := newContext(t, http.MethodGet, "/products/7", "", f.sf)
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, f.handler.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got entity.Product
		decodeData(t, rec, &got)
		assert.Equal(t, "Ring", got.Title)
	})

	t.Run("not found", func(t *testing.T) {
		f := newProductFixture(t)
		f.catalog.EXPECT().Product(mock.Anything, f.products, int64(99)).
			Return(nil, domainerrors.ErrProductNotFound.WithDetails("99"))

		c, rec := newContext(t, http.MethodGet, "/products/99", "", f.sf)
		c.SetParamNames("id")
		c.SetParamValues("99")

		require.NoError(t, f.handler.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newProductFixture(t)

		c, rec := newContext(t, http.MethodGet, "/products/abc", "", f.sf)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, f.handler.GetProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})
}

func TestProductHandler_GetProductQR(t *testing.T) {
	f := newProductFixture(t)
	png := []byte("\x89PNG\r\n\x1a\n")
	f.catalog.EXPECT().Product(mock.Anything, f.products, int64(7)).Return(&entity.Product{ID: 7}, nil)
	f.qr.EXPECT().GenerateProductQR(int64(7)).Return(png, nil)

	c, rec := newContext(t, http.MethodGet, "/products/7/qr", "", f.sf)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, f.handler.GetProductQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProductHandler_ScanProduct(t *testing.T) {
	t.Run("resolves the product link", func(t *testing.T) {
		f := newProductFixture(t)
		f.qr.EXPECT().ParseProductQR("http://localhost:3000/products/7").Return(int64(7), nil)
		f.catalog.EXPECT().Product(mock.Anything, f.products, int64(7)).
			Return(&entity.Product{ID: 7, Title: "Ring"}, nil)

		c, rec := newContext(t, http.MethodPost, "/products/scan", `{"data":"http://localhost:3000/products/7"}`, f.sf)

		require.NoError(t, f.handler.ScanProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got entity.Product
		decodeData(t, rec, &got)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "Ring", got.Title)
	})

	t.Run("rejects a foreign link", func(t *testing.T) {
		f := newProductFixture(t)
		f.qr.EXPECT().ParseProductQR("https://other.example/items/7").Return(int64(0), errors.New("not a product link"))

		c, rec := newContext(t, http.MethodPost, "/products/scan", `{"data":"https://other.example/items/7"}`, f.sf)

		require.NoError(t, f.handler.ScanProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QR_CODE", decode(t, rec).Error.Code)
	})

	t.Run("requires data", func(t *testing.T) {
		f := newProductFixture(t)

		c, rec := newContext(t, http.MethodPost, "/products/scan", `{}`, f.sf)

		require.NoError(t, f.handler.ScanProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newProductFixture(t)
		f.qr.EXPECT().ParseProductQR("http://localhost:3000/products/99").Return(int64(99), nil)
		f.catalog.EXPECT().Product(mock.Anything, f.products, int64(99)).
			Return(nil, domainerrors.ErrProductNotFound.WithDetails("99"))

		c, rec := newContext(t, http.MethodPost, "/products/scan", `{"data":"http://localhost:3000/products/99"}`, f.sf)

		require.NoError(t, f.handler.ScanProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	body := `{"title":"Mug","description":"Hand thrown mug","price":12.5,"category":"handmade","image":"https://example.com/mug.png"}`

	t.Run("adds a local product for the signed-in visitor", func(t *testing.T) {
		f := newProductFixture(t)
		draft := entity.ProductDraft{
			Title:       "Mug",
			Description: "Hand thrown mug",
			Price:       12.5,
			Category:    "handmade",
			Image:       "https://example.com/mug.png",
		}
		created := draft.ToProduct(1712345678901, "ada@example.com")
		f.products.EXPECT().AddLocalProduct(mock.Anything, draft, "ada@example.com").Return(created, nil)

		c, rec := newContext(t, http.MethodPost, "/products", body, f.sf)
		deliverycontext.SetSessionEmail(c, "ada@example.com")

		require.NoError(t, f.handler.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got entity.Product
		decodeData(t, rec, &got)
		assert.True(t, got.Local)
		assert.Equal(t, "ada@example.com", got.OwnerEmail)
	})

	t.Run("requires a session", func(t *testing.T) {
		f := newProductFixture(t)

		c, rec := newContext(t, http.MethodPost, "/products", body, f.sf)

		require.NoError(t, f.handler.CreateProduct(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validates the draft", func(t *testing.T) {
		f := newProductFixture(t)

		c, rec := newContext(t, http.MethodPost, "/products", `{"title":"M","description":"short","price":0,"category":"","image":"nope"}`, f.sf)
		deliverycontext.SetSessionEmail(c, "ada@example.com")

		require.NoError(t, f.handler.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]string{
			"title":       "must be at least 3 characters",
			"description": "must be at least 10 characters",
			"price":       "must be greater than 0",
			"category":    "is required",
			"image":       "must be a valid URL",
		}, decode(t, rec).Error.Details)
	})
}
