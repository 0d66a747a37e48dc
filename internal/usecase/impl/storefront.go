package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// storefront implements usecase.Storefront by coordinating one visitor's stores.
type storefront struct {
	visitorID string
	auth      usecase.AuthStore
	cart      usecase.CartStore
	products  usecase.ProductStore
}

// NewStorefront builds the state of visitorID from fresh stores.
func NewStorefront(visitorID string, deps StoreDeps) usecase.Storefront {
	return newStorefront(visitorID,
		NewAuthStore(visitorID, deps),
		NewCartStore(deps),
		NewProductStore(deps),
	)
}

func newStorefront(visitorID string, auth usecase.AuthStore, cart usecase.CartStore, products usecase.ProductStore) *storefront {
	return &storefront{
		visitorID: visitorID,
		auth:      auth,
		cart:      cart,
		products:  products,
	}
}

func (sf *storefront) SignUp(ctx context.Context, input usecase.SignUpInput) (entity.Session, error) {
	if err := sf.auth.Register(ctx, input.Email, input.Username, input.Password); err != nil {
		return entity.Session{}, err
	}

	return sf.loadUserState(ctx)
}

func (sf *storefront) SignIn(ctx context.Context, input usecase.SignInInput) (entity.Session, error) {
	if err := sf.auth.Login(ctx, input.Email, input.Password); err != nil {
		return entity.Session{}, err
	}

	return sf.loadUserState(ctx)
}

// loadUserState points the cart and product stores at the signed-in email.
func (sf *storefront) loadUserState(ctx context.Context) (entity.Session, error) {
	session := sf.auth.Session()

	if err := sf.cart.LoadCart(ctx, session.Email); err != nil {
		return session, errors.Wrap(err, "failed to restore cart")
	}
	if err := sf.products.LoadUserProducts(ctx, session.Email); err != nil {
		return session, errors.Wrap(err, "failed to restore local products")
	}

	return session, nil
}

func (sf *storefront) SignOut(ctx context.Context) error {
	err := sf.auth.Logout(ctx)
	sf.cart.UnloadCart()
	sf.products.ClearUserProducts()

	return err
}

func (sf *storefront) Restore(ctx context.Context) error {
	if err := sf.auth.Hydrate(ctx); err != nil {
		return err
	}

	if !sf.auth.Session().Authenticated {
		return nil
	}

	_, err := sf.loadUserState(ctx)

	return err
}

func (sf *storefront) VisitorID() string {
	return sf.visitorID
}

func (sf *storefront) Auth() usecase.AuthStore {
	return sf.auth
}

func (sf *storefront) Cart() usecase.CartStore {
	return sf.cart
}

func (sf *storefront) Products() usecase.ProductStore {
	return sf.products
}
