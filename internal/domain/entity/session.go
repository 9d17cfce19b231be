package entity

import "time"

// Session is the client-held identity persisted between invocations.
type Session struct {
	Token              string    `json:"token"`
	Role               Role      `json:"role"`
	UserID             int64     `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at,omitempty"`
}

// IsExpired reports whether the session's token expiry has passed.
// A zero ExpiresAt means the expiry is unknown.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// LoginResult is the token payload returned by the login endpoint.
type LoginResult struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type"`
	Role               Role   `json:"role"`
	UserID             int64  `json:"user_id"`
	FullName           string `json:"nombre_completo"`
	MustChangePassword bool   `json:"debe_cambiar_password"`
}

// User is the profile of the authenticated account.
type User struct {
	ID           int64  `json:"id_usuario"`
	FullName     string `json:"nombre_completo"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellido"`
	Email        string `json:"correo"`
	Phone        string `json:"telefono,omitempty"`
	Address      string `json:"direccion,omitempty"`
	Role         Role   `json:"rol,omitempty"`
	Active       bool   `json:"activo"`
	RegisteredAt string `json:"fecha_registro,omitempty"`
}

// DisplayName prefers the backend's full name.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return PersonName{FirstName: u.FirstName, LastName: u.LastName}.Full()
}
