package repository

import (
	"context"
	"errors"
	"testing"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/pkg/response"
)

func TestAuthRepository_Login(t *testing.T) {
	_, client, creds := newTestAPI(t)
	repo := NewAuthRepository(client)

	result, err := repo.Login(context.Background(), "laura@example.com", "Secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccessToken != fakeToken || result.Role != entity.RolePsychologist || result.UserID != 7 {
		t.Errorf("unexpected login result %+v", result)
	}

	_, err = repo.Login(context.Background(), "laura@example.com", "wrong")
	var apiErr *response.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Incorrect username or password" {
		t.Fatalf("expected credentials error, got %v", err)
	}
	if creds.invalidated {
		t.Error("a failed login must not invalidate the stored session")
	}
}
