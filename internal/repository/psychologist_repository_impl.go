package repository

import (
	"context"
	"errors"
	"fmt"

	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
	"wellbeing-client/pkg/response"
)

type psychologistRepository struct {
	client *api.Client
}

func NewPsychologistRepository(client *api.Client) domainRepo.PsychologistRepository {
	return &psychologistRepository{client: client}
}

func (r *psychologistRepository) FindAll(ctx context.Context) ([]entity.Psychologist, error) {
	var list struct {
		Psychologists []entity.Psychologist `json:"psicologos"`
		Total         int                   `json:"total"`
	}
	if err := r.client.Get(ctx, "/admin/psicologos", nil, &list, "Error loading psychologists"); err != nil {
		return nil, err
	}
	return list.Psychologists, nil
}

func (r *psychologistRepository) FindByID(ctx context.Context, id int64) (*entity.Psychologist, error) {
	var psychologist entity.Psychologist
	err := r.client.Get(ctx, fmt.Sprintf("/admin/psicologos/%d", id), nil, &psychologist, "Error loading psychologist")
	if err != nil {
		var apiErr *response.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, nil
		}
		return nil, err
	}
	return &psychologist, nil
}

func (r *psychologistRepository) Register(ctx context.Context, reg *entity.PsychologistRegistration) (*entity.RegistrationResult, error) {
	var result entity.RegistrationResult
	if err := r.client.Post(ctx, "/admin/register/psicologo", reg, &result, "Error registering psychologist"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *psychologistRepository) ToggleStatus(ctx context.Context, id int64) (*entity.StatusChange, error) {
	var change entity.StatusChange
	path := fmt.Sprintf("/admin/psicologos/%d/toggle-estado", id)
	if err := r.client.Put(ctx, path, nil, &change, "Error changing psychologist status"); err != nil {
		return nil, err
	}
	return &change, nil
}
