package converter

import (
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		FullName: user.DisplayName(),
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		Role:     user.Role.Label(),
		Active:   user.Active,
	}
}

func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	return &dto.SessionResponse{
		UserID:             session.UserID,
		Role:               string(session.Role),
		RoleLabel:          session.Role.Label(),
		DisplayName:        session.DisplayName,
		MustChangePassword: session.MustChangePassword,
		ExpiresAt:          session.ExpiresAt,
	}
}
