package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// productStore implements usecase.ProductStore for one visitor.
type productStore struct {
	productRepo repository.LocalProductRepository
	logger      *slog.Logger
	now         func() time.Time

	mu            sync.Mutex
	apiProducts   []entity.Product
	localProducts []entity.Product
	loadedEmail   string
	apiLoaded     bool
	lastLocalID   int64
}

// NewProductStore builds an empty product store.
func NewProductStore(deps StoreDeps) usecase.ProductStore {
	return &productStore{
		productRepo:   deps.ProductRepo,
		logger:        deps.Logger,
		now:           time.Now,
		apiProducts:   []entity.Product{},
		localProducts: []entity.Product{},
	}
}

func (s *productStore) SetAPIProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apiProducts = slices.Clone(products)
	if s.apiProducts == nil {
		s.apiProducts = []entity.Product{}
	}
	s.apiLoaded = true
}

func (s *productStore) AddLocalProduct(ctx context.Context, draft entity.ProductDraft, ownerEmail string) (entity.Product, error) {
	ownerEmail = entity.NormalizeEmail(ownerEmail)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Appending to a list that was never loaded would overwrite the saved one.
	if s.loadedEmail != ownerEmail {
		stored, err := s.productRepo.Load(ctx, ownerEmail)
		if err != nil {
			return entity.Product{}, errors.Wrap(err, "failed to load local products")
		}
		s.localProducts = stored
		s.loadedEmail = ownerEmail
	}

	product := draft.ToProduct(s.nextLocalID(), ownerEmail)
	updated := append(slices.Clone(s.localProducts), product)

	if err := s.productRepo.Save(ctx, ownerEmail, updated); err != nil {
		return entity.Product{}, errors.Wrap(err, "failed to persist local products")
	}
	s.localProducts = updated

	requestLogger(ctx, s.logger).Info("Local product created",
		slog.Int64("product_id", product.ID),
		slog.String("owner", ownerEmail),
	)

	return product, nil
}

// nextLocalID returns the creation time in milliseconds, bumped past every local ID
// this store has seen. Callers hold s.mu.
func (s *productStore) nextLocalID() int64 {
	id := s.now().UnixMilli()
	for _, p := range s.localProducts {
		s.lastLocalID = max(s.lastLocalID, p.ID)
	}
	if id <= s.lastLocalID {
		id = s.lastLocalID + 1
	}
	s.lastLocalID = id

	return id
}

func (s *productStore) LoadUserProducts(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	products, err := s.productRepo.Load(ctx, email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.localProducts = []entity.Product{}
		s.loadedEmail = ""

		return errors.Wrap(err, "failed to load local products")
	}
	s.localProducts = products
	s.loadedEmail = email

	return nil
}

func (s *productStore) ClearUserProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.localProducts = []entity.Product{}
	s.loadedEmail = ""
}

func (s *productStore) APILoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apiLoaded
}

func (s *productStore) APIProducts() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.apiProducts)
}

func (s *productStore) LocalProducts() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.localProducts)
}

func (s *productStore) AllProducts() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.allLocked()
}

func (s *productStore) allLocked() []entity.Product {
	all := make([]entity.Product, 0, len(s.apiProducts)+len(s.localProducts))
	all = append(all, s.apiProducts...)

	return append(all, s.localProducts...)
}

func (s *productStore) FindProduct(id int64) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.allLocked() {
		if p.ID == id {
			return p, true
		}
	}

	return entity.Product{}, false
}
