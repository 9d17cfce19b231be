package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*entity.LoginResult, error)
	Me(ctx context.Context) (*entity.User, error)
	ChangePassword(ctx context.Context, current, next string) error
}
