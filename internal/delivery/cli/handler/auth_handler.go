package handler

import (
	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/usecase"
	"wellbeing-client/pkg/validator"

	"github.com/spf13/cobra"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	printer     *output.Printer
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, printer *output.Printer) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		printer:     printer,
	}
}

func (h *AuthHandler) Login(cmd *cobra.Command, args []string) error {
	req := dto.LoginRequest{
		Username: flagString(cmd, "username"),
		Password: flagString(cmd, "password"),
	}

	var err error
	if req.Username == "" {
		if req.Username, err = prompt(cmd, "Email: "); err != nil {
			return err
		}
	}
	if req.Password == "" {
		if req.Password, err = prompt(cmd, "Password: "); err != nil {
			return err
		}
	}

	if err := validate(h.validator, &req); err != nil {
		return err
	}

	session, err := h.authUsecase.Login(cmd.Context(), &req)
	if err != nil {
		return err
	}

	return h.printer.Render(session, func() {
		h.printer.Printf("Welcome, %s (%s)\n", session.DisplayName, session.RoleLabel)
		if session.MustChangePassword {
			h.printer.Println("This is a temporary password. Run `wellbeing password` to choose your own.")
		}
	})
}

func (h *AuthHandler) Logout(cmd *cobra.Command, args []string) error {
	if err := h.authUsecase.Logout(cmd.Context()); err != nil {
		return err
	}
	h.printer.Println("Logged out")
	return nil
}

func (h *AuthHandler) WhoAmI(cmd *cobra.Command, args []string) error {
	session, err := h.authUsecase.Session(cmd.Context())
	if err != nil {
		return err
	}
	user, err := h.authUsecase.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}

	data := struct {
		Session *dto.SessionResponse `json:"session"`
		User    *dto.UserResponse    `json:"user"`
	}{session, user}

	return h.printer.Render(data, func() {
		expires := ""
		if !session.ExpiresAt.IsZero() {
			expires = session.ExpiresAt.Local().Format("2006-01-02 15:04")
		}
		h.printer.Fields(
			output.Field{Label: "Name", Value: user.FullName},
			output.Field{Label: "Email", Value: user.Email},
			output.Field{Label: "Phone", Value: user.Phone},
			output.Field{Label: "Role", Value: session.RoleLabel},
			output.Field{Label: "Session expires", Value: expires},
		)
	})
}

func (h *AuthHandler) ChangePassword(cmd *cobra.Command, args []string) error {
	req := dto.ChangePasswordRequest{
		CurrentPassword: flagString(cmd, "current"),
		NewPassword:     flagString(cmd, "new"),
		Confirmation:    flagString(cmd, "confirm"),
	}

	if err := validate(h.validator, &req); err != nil {
		return err
	}

	if err := h.authUsecase.ChangePassword(cmd.Context(), &req); err != nil {
		return err
	}
	h.printer.Println("Password updated")
	return nil
}
