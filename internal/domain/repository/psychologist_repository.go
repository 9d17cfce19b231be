package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

type PsychologistRepository interface {
	FindAll(ctx context.Context) ([]entity.Psychologist, error)
	FindByID(ctx context.Context, id int64) (*entity.Psychologist, error)
	Register(ctx context.Context, reg *entity.PsychologistRegistration) (*entity.RegistrationResult, error)
	ToggleStatus(ctx context.Context, id int64) (*entity.StatusChange, error)
}
