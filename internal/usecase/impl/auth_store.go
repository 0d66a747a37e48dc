package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// authStore implements usecase.AuthStore for one visitor.
type authStore struct {
	visitorID   string
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
	now         func() time.Time

	mu       sync.Mutex
	session  entity.Session
	hydrated bool
}

// NewAuthStore builds the auth store of visitorID. It starts unhydrated and anonymous.
func NewAuthStore(visitorID string, deps StoreDeps) usecase.AuthStore {
	return &authStore{
		visitorID:   visitorID,
		userRepo:    deps.UserRepo,
		sessionRepo: deps.SessionRepo,
		hasher:      deps.Hasher,
		tokens:      deps.Tokens,
		logger:      deps.Logger,
		now:         time.Now,
	}
}

func (s *authStore) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, s.logger).With(slog.String("visitor_id", s.visitorID))
}

func (s *authStore) Register(ctx context.Context, email, username, password string) error {
	email = entity.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up account")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.RegisteredUser{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		// Another visitor registered the same email after the lookup above.
		return domainerrors.ErrEmailAlreadyRegistered
	}
	if err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	s.log(ctx).Info("Account registered", slog.String("email", email))

	return s.establish(ctx, user)
}

func (s *authStore) Login(ctx context.Context, email, password string) error {
	email = entity.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up account")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return domainerrors.ErrIncorrectPassword
	}

	return s.establish(ctx, user)
}

// establish signs user in and persists the session. Callers hold s.mu.
func (s *authStore) establish(ctx context.Context, user *entity.RegisteredUser) error {
	token, err := s.tokens.Issue(user.Email, user.Username)
	if err != nil {
		return errors.Wrap(err, "failed to issue session token")
	}

	session := entity.Session{
		Token:         token,
		Email:         user.Email,
		Username:      user.Username,
		Authenticated: true,
		IssuedAt:      s.now().UTC(),
	}
	if err := s.sessionRepo.Save(ctx, s.visitorID, &session); err != nil {
		return errors.Wrap(err, "failed to persist session")
	}

	s.session = session
	s.hydrated = true
	s.log(ctx).Info("Signed in", slog.String("email", user.Email))

	return nil
}

func (s *authStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = entity.Session{}
	if err := s.sessionRepo.Clear(ctx, s.visitorID); err != nil {
		return errors.Wrap(err, "failed to clear persisted session")
	}

	return nil
}

func (s *authStore) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionRepo.Load(ctx, s.visitorID)
	if err != nil {
		return errors.Wrap(err, "failed to load persisted session")
	}

	s.session = entity.Session{}
	if session != nil && session.Authenticated && session.Email != "" {
		s.session = *session
	}
	s.hydrated = true

	return nil
}

func (s *authStore) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hydrated
}

func (s *authStore) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}
