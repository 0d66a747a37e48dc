// Package catalog is the HTTP client of the remote read-only product catalog.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://fakestoreapi.com"
	defaultTimeout = 10 * time.Second
	maxBodySize    = 8 << 20
)

// Params holds dependencies for the catalog client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a catalog client with a traced transport.
func NewClient(params Params) service.CatalogClient {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if params.Config != nil {
		if params.Config.Catalog.BaseURL != "" {
			baseURL = params.Config.Catalog.BaseURL
		}
		if params.Config.Catalog.Timeout > 0 {
			timeout = params.Config.Catalog.Timeout
		}
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	return newHTTPClient(baseURL, &http.Client{
		Transport: otelhttp.NewTransport(transport),
		Timeout:   timeout,
	}, params.Logger)
}

func newHTTPClient(baseURL string, client *http.Client, logger *slog.Logger) *httpClient {
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

func (c *httpClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if _, err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

func (c *httpClient) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product *entity.Product
	empty, err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &product)
	if err != nil {
		return nil, err
	}
	if empty || product == nil {
		return nil, domainerrors.ErrProductNotFound.WithDetails(strconv.FormatInt(id, 10))
	}

	return product, nil
}

func (c *httpClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if _, err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

// getJSON decodes the response of GET {base}{path} into out. It reports empty=true
// for a 2xx response without a body. Every failure maps to ErrCatalogUnavailable.
func (c *httpClient) getJSON(ctx context.Context, path string, out any) (bool, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, domainerrors.ErrCatalogUnavailable.WrapMessage(err.Error())
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, domainerrors.ErrCatalogUnavailable.WrapMessage(errors.Wrapf(err, "GET %s", path).Error())
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Catalog request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, domainerrors.ErrCatalogUnavailable.WrapMessage("GET " + path + ": " + resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return false, domainerrors.ErrCatalogUnavailable.WrapMessage(errors.Wrapf(err, "read %s", path).Error())
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, domainerrors.ErrCatalogUnavailable.WrapMessage(errors.Wrapf(err, "decode %s", path).Error())
	}

	return false, nil
}
