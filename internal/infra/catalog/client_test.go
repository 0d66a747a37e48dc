package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://fakestoreapi.com/img/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"Slim Fit T-Shirt","price":22.3,"description":"Slim-fitting style","category":"men's clothing","image":"https://fakestoreapi.com/img/2.jpg","rating":{"rate":4.1,"count":259}}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newHTTPClient(server.URL+"/", server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = io.WriteString(w, productsJSON)
	})

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, 109.95, products[0].Price)
	require.NotNil(t, products[1].Rating)
	assert.Equal(t, 259, products[1].Rating.Count)
	assert.False(t, products[0].Local)
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantID  int64
	}{
		{name: "found", status: http.StatusOK, body: `{"id":7,"title":"Ring","price":9.99,"category":"jewelery"}`, wantID: 7},
		{name: "empty body", status: http.StatusOK, body: "", wantErr: domainerrors.ErrProductNotFound},
		{name: "null body", status: http.StatusOK, body: "null", wantErr: domainerrors.ErrProductNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: domainerrors.ErrCatalogUnavailable},
		{name: "malformed body", status: http.StatusOK, body: "{", wantErr: domainerrors.ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products/7", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			product, err := client.GetProduct(context.Background(), 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, product.ID)
		})
	}
}

func TestListCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		_, _ = io.WriteString(w, `["electronics","jewelery"]`)
	})

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery"}, categories)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := newHTTPClient(server.URL, &http.Client{Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ListProducts(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Failed to load products. Please try again.", appErr.Message())
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Params{Config: &config.Config{}, Logger: slog.Default()}).(*httpClient)
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	cfg := &config.Config{}
	cfg.Catalog.BaseURL = "http://catalog.local/"
	cfg.Catalog.Timeout = 3 * time.Second
	client = NewClient(Params{Config: cfg, Logger: slog.Default()}).(*httpClient)
	assert.Equal(t, "http://catalog.local", client.baseURL)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}
