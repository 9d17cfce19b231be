package repository

import (
	"context"
	"net/url"

	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
)

type authRepository struct {
	client *api.Client
}

func NewAuthRepository(client *api.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

// Login exchanges credentials for an access token using the OAuth2 password form.
func (r *authRepository) Login(ctx context.Context, username, password string) (*entity.LoginResult, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	var result entity.LoginResult
	if err := r.client.PostForm(ctx, "/token", form, &result, "Incorrect credentials"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *authRepository) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.Get(ctx, "/usuarios/me", nil, &user, "Error loading profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"contrasena_actual": current,
		"contrasena_nueva":  next,
	}
	return r.client.Put(ctx, "/usuarios/cambiar-contrasena", body, nil, "Error changing password")
}
