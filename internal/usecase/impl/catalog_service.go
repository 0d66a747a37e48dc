package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 10

// catalogService implements usecase.CatalogUsecase.
type catalogService struct {
	client   service.CatalogClient
	pageSize int
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Client service.CatalogClient
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	pageSize := defaultPageSize
	if params.Config != nil && params.Config.Browse != nil && params.Config.Browse.PageSize > 0 {
		pageSize = params.Config.Browse.PageSize
	}

	return &catalogService{
		client:   params.Client,
		pageSize: pageSize,
		logger:   params.Logger,
	}
}

func (srv *catalogService) Refresh(ctx context.Context, store usecase.ProductStore) ([]string, error) {
	products, err := srv.client.ListProducts(ctx)
	if err != nil {
		return nil, srv.unavailable(ctx, err)
	}

	categories, err := srv.client.ListCategories(ctx)
	if err != nil {
		return nil, srv.unavailable(ctx, err)
	}

	store.SetAPIProducts(products)
	requestLogger(ctx, srv.logger).Debug("Catalog refreshed",
		slog.Int("products", len(products)),
		slog.Int("categories", len(categories)),
	)

	return categories, nil
}

// unavailable keeps ErrCatalogUnavailable as the cause while preserving the transport error in the log.
func (srv *catalogService) unavailable(ctx context.Context, err error) error {
	requestLogger(ctx, srv.logger).Warn("Catalog fetch failed", slog.Any("error", err))
	if errors.Is(err, domainerrors.ErrCatalogUnavailable) {
		return err
	}

	return domainerrors.ErrCatalogUnavailable.WrapMessage(err.Error())
}

func (srv *catalogService) EnsureLoaded(ctx context.Context, store usecase.ProductStore) error {
	if store.APILoaded() {
		return nil
	}

	_, err := srv.Refresh(ctx, store)

	return err
}

func (srv *catalogService) Browse(store usecase.ProductStore, query usecase.BrowseQuery) usecase.ProductPage {
	list := store.AllProducts()

	if query.Category != "" && query.Category != usecase.CategoryAll {
		list = slices.DeleteFunc(list, func(p entity.Product) bool {
			return p.Category != query.Category
		})
	}

	switch query.Sort {
	case usecase.SortPriceAsc:
		slices.SortStableFunc(list, func(a, b entity.Product) int { return cmp.Compare(a.Price, b.Price) })
	case usecase.SortPriceDesc:
		slices.SortStableFunc(list, func(a, b entity.Product) int { return cmp.Compare(b.Price, a.Price) })
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = srv.pageSize
	}
	page := max(query.Page, 1)

	total := len(list)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	// Compare page numbers before multiplying so huge pages cannot overflow.
	start := total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := start + min(pageSize, total-start)

	return usecase.ProductPage{
		Items:      slices.Clone(list[start:end:end]),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func (srv *catalogService) Categories(ctx context.Context, store usecase.ProductStore) ([]string, error) {
	remote, err := srv.client.ListCategories(ctx)
	if err != nil {
		return nil, srv.unavailable(ctx, err)
	}

	seen := make(map[string]struct{}, len(remote))
	categories := make([]string, 0, len(remote))
	add := func(category string) {
		if _, ok := seen[category]; ok || category == "" {
			return
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	for _, category := range remote {
		add(category)
	}
	for _, p := range store.AllProducts() {
		add(p.Category)
	}

	return categories, nil
}

func (srv *catalogService) Product(ctx context.Context, store usecase.ProductStore, id int64) (*entity.Product, error) {
	if product, ok := store.FindProduct(id); ok {
		return &product, nil
	}

	product, err := srv.client.GetProduct(ctx, id)
	if errors.Is(err, domainerrors.ErrProductNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, srv.unavailable(ctx, err)
	}

	return product, nil
}
