package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"contrasena_actual" validate:"required"`
	NewPassword     string `json:"contrasena_nueva" validate:"required,strongpassword,nefield=CurrentPassword"`
	Confirmation    string `json:"confirmar_contrasena" validate:"required,eqfield=NewPassword"`
}

// Response DTOs

type SessionResponse struct {
	UserID             int64     `json:"user_id"`
	Role               string    `json:"role"`
	RoleLabel          string    `json:"role_label"`
	DisplayName        string    `json:"display_name"`
	MustChangePassword bool      `json:"must_change_password"`
	ExpiresAt          time.Time `json:"expires_at,omitempty"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// RegistrationResponse is shown once after an account is created, since it
// carries the temporary password.
type RegistrationResponse struct {
	Message           string `json:"message"`
	UserID            int64  `json:"user_id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
	EmailSent         bool   `json:"email_sent"`
	Instructions      string `json:"instructions,omitempty"`
}
