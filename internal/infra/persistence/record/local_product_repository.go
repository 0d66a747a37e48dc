package record

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type localProductRepository struct {
	products jsonRecord[[]entity.Product]
}

// NewLocalProductRepository stores each owner's authored products under local_products/{email}.
func NewLocalProductRepository(params Params) repository.LocalProductRepository {
	return &localProductRepository{
		products: newJSONRecord[[]entity.Product](params, repository.NamespaceLocalProducts),
	}
}

func (repo *localProductRepository) Load(ctx context.Context, ownerEmail string) ([]entity.Product, error) {
	products, _, err := repo.products.load(ctx, entity.NormalizeEmail(ownerEmail))
	if err != nil {
		return []entity.Product{}, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

func (repo *localProductRepository) Save(ctx context.Context, ownerEmail string, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}

	return repo.products.save(ctx, entity.NormalizeEmail(ownerEmail), products)
}
