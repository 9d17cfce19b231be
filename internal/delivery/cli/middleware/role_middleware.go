package middleware

import (
	"errors"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/service"

	"github.com/spf13/cobra"
)

var ErrForbidden = errors.New("you don't have permission to use this command")

// RequireRole allows the command only for sessions of the given roles.
// Authenticate must run first.
func RequireRole(allowed ...entity.Role) Middleware {
	return func(cmd *cobra.Command, args []string) error {
		session, ok := GetSessionFromContext(cmd.Context())
		if !ok {
			return service.ErrNotLoggedIn
		}

		for _, role := range allowed {
			if session.Role == role {
				return nil
			}
		}
		return ErrForbidden
	}
}

func RequireAdmin(cmd *cobra.Command, args []string) error {
	return RequireRole(entity.RoleAdmin)(cmd, args)
}

func RequirePsychologist(cmd *cobra.Command, args []string) error {
	return RequireRole(entity.RolePsychologist)(cmd, args)
}

func RequirePatient(cmd *cobra.Command, args []string) error {
	return RequireRole(entity.RolePatient)(cmd, args)
}
