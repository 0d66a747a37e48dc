package record

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type cartRepository struct {
	carts jsonRecord[entity.CartItems]
}

// NewCartRepository stores each user's cart under cart/{email}.
func NewCartRepository(params Params) repository.CartRepository {
	return &cartRepository{
		carts: newJSONRecord[entity.CartItems](params, repository.NamespaceCart),
	}
}

func (repo *cartRepository) Load(ctx context.Context, email string) (entity.CartItems, error) {
	items, _, err := repo.carts.load(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return entity.CartItems{}, err
	}
	if items == nil {
		items = entity.CartItems{}
	}

	return items, nil
}

func (repo *cartRepository) Save(ctx context.Context, email string, items entity.CartItems) error {
	if items == nil {
		items = entity.CartItems{}
	}

	return repo.carts.save(ctx, entity.NormalizeEmail(email), items)
}
