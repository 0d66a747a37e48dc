package record

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type userRepository struct {
	users jsonRecord[entity.RegisteredUser]
}

// NewUserRepository stores each registered user under users/{email}.
func NewUserRepository(params Params) repository.UserRepository {
	return &userRepository{
		users: newJSONRecord[entity.RegisteredUser](params, repository.NamespaceUsers),
	}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error) {
	email = entity.NormalizeEmail(email)

	user, found, err := repo.users.load(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found || user.Email == "" {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.RegisteredUser) error {
	stored := *user
	stored.Email = entity.NormalizeEmail(user.Email)

	created, err := repo.users.create(ctx, stored.Email, stored)
	if err != nil {
		return err
	}
	if !created {
		return repository.ErrUserAlreadyExists
	}

	return nil
}
