package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

// SessionRepository persists the single active session of this client.
// Load returns nil, nil when no session is stored.
type SessionRepository interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
