package record

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type sessionRepository struct {
	sessions jsonRecord[entity.Session]
}

// NewSessionRepository stores one session blob per visitor under auth_session/{visitorID}.
func NewSessionRepository(params Params) repository.SessionRepository {
	return &sessionRepository{
		sessions: newJSONRecord[entity.Session](params, repository.NamespaceSession),
	}
}

func (repo *sessionRepository) Load(ctx context.Context, visitorID string) (*entity.Session, error) {
	session, found, err := repo.sessions.load(ctx, visitorID)
	if err != nil || !found {
		return nil, err
	}

	return &session, nil
}

func (repo *sessionRepository) Save(ctx context.Context, visitorID string, session *entity.Session) error {
	return repo.sessions.save(ctx, visitorID, *session)
}

func (repo *sessionRepository) Clear(ctx context.Context, visitorID string) error {
	return repo.sessions.delete(ctx, visitorID)
}
