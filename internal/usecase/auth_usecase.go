package usecase

import (
	"context"
	"errors"
	"fmt"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownRole    = errors.New("the account has a role this client does not support")
	ErrMissingToken   = errors.New("login response did not include an access token")
	ErrPasswordReused = errors.New("the new password must be different from the current one")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*dto.SessionResponse, error)
	CurrentUser(ctx context.Context) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
}

type authUsecase struct {
	log      *logrus.Logger
	authRepo repository.AuthRepository
	sessions *service.SessionManager
}

func NewAuthUsecase(log *logrus.Logger, authRepo repository.AuthRepository, sessions *service.SessionManager) AuthUsecase {
	return &authUsecase{
		log:      log,
		authRepo: authRepo,
		sessions: sessions,
	}
}

// Login exchanges credentials for a token and persists the resulting session.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	result, err := u.authRepo.Login(ctx, req.Username, req.Password)
	if err != nil {
		u.log.Warnf("Failed to login: %+v", err)
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, ErrMissingToken
	}
	if !result.Role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, result.Role)
	}

	displayName := result.FullName
	if displayName == "" {
		displayName = req.Username
	}

	session := &entity.Session{
		Token:              result.AccessToken,
		Role:               result.Role,
		UserID:             result.UserID,
		DisplayName:        displayName,
		MustChangePassword: result.MustChangePassword,
	}
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	u.log.Infof("User %d logged in as %s", session.UserID, session.Role)
	return converter.SessionToResponse(session), nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	return u.sessions.Clear(ctx)
}

func (u *authUsecase) Session(ctx context.Context) (*dto.SessionResponse, error) {
	session, err := u.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	return converter.SessionToResponse(session), nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	user, err := u.authRepo.Me(ctx)
	if err != nil {
		u.log.Warnf("Failed to get current user: %+v", err)
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

// ChangePassword updates the password and clears the first-login flag.
func (u *authUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	if req.NewPassword == req.CurrentPassword {
		return ErrPasswordReused
	}

	session, err := u.sessions.Load(ctx)
	if err != nil {
		return err
	}

	if err := u.authRepo.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		u.log.Warnf("Failed to change password: %+v", err)
		return err
	}

	if session.MustChangePassword {
		updated := *session
		updated.MustChangePassword = false
		if err := u.sessions.Save(ctx, &updated); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	u.log.Infof("Password changed for user %d", session.UserID)
	return nil
}
