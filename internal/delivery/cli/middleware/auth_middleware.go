package middleware

import (
	"context"
	"errors"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/service"

	"github.com/spf13/cobra"
)

type contextKey string

const SessionKey contextKey = "session"

var ErrPasswordChangeRequired = errors.New("you must replace your temporary password first, run `wellbeing password`")

// Middleware runs before a command, in the order it was registered.
type Middleware func(cmd *cobra.Command, args []string) error

// Chain composes middlewares into a cobra hook.
func Chain(middlewares ...Middleware) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, m := range middlewares {
			if err := m(cmd, args); err != nil {
				return err
			}
		}
		return nil
	}
}

type AuthMiddleware struct {
	sessions *service.SessionManager
}

func NewAuthMiddleware(sessions *service.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate loads the stored session and puts it in the command context.
func (m *AuthMiddleware) Authenticate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := m.sessions.Load(ctx)
	if err != nil {
		return err
	}

	cmd.SetContext(context.WithValue(ctx, SessionKey, session))
	return nil
}

// RequirePasswordChanged blocks accounts still using the temporary password
// issued at registration.
func RequirePasswordChanged(cmd *cobra.Command, args []string) error {
	session, ok := GetSessionFromContext(cmd.Context())
	if !ok {
		return service.ErrNotLoggedIn
	}
	if session.MustChangePassword {
		return ErrPasswordChangeRequired
	}
	return nil
}

// GetSessionFromContext returns the session set by Authenticate.
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}
