package usecase

import (
	"context"
	"errors"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrPsychologistNotFound = errors.New("psychologist not found")

type PsychologistUsecase interface {
	List(ctx context.Context) (*dto.PsychologistListResponse, error)
	Get(ctx context.Context, id int64) (*dto.PsychologistResponse, error)
	Register(ctx context.Context, req *dto.RegisterPsychologistRequest) (*dto.RegistrationResponse, error)
	ToggleStatus(ctx context.Context, id int64) (*dto.StatusChangeResponse, error)
}

type psychologistUsecase struct {
	log              *logrus.Logger
	psychologistRepo repository.PsychologistRepository
}

func NewPsychologistUsecase(log *logrus.Logger, psychologistRepo repository.PsychologistRepository) PsychologistUsecase {
	return &psychologistUsecase{
		log:              log,
		psychologistRepo: psychologistRepo,
	}
}

func (u *psychologistUsecase) List(ctx context.Context) (*dto.PsychologistListResponse, error) {
	psychologists, err := u.psychologistRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find psychologists: %+v", err)
		return nil, err
	}

	response := &dto.PsychologistListResponse{
		Psychologists: converter.PsychologistsToResponses(psychologists),
		Total:         len(psychologists),
	}
	for _, p := range psychologists {
		if p.Active {
			response.Active++
		}
	}
	return response, nil
}

func (u *psychologistUsecase) Get(ctx context.Context, id int64) (*dto.PsychologistResponse, error) {
	psychologist, err := u.psychologistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find psychologist %d: %+v", id, err)
		return nil, err
	}
	if psychologist == nil {
		return nil, ErrPsychologistNotFound
	}
	return converter.PsychologistToResponse(psychologist), nil
}

func (u *psychologistUsecase) Register(ctx context.Context, req *dto.RegisterPsychologistRequest) (*dto.RegistrationResponse, error) {
	result, err := u.psychologistRepo.Register(ctx, converter.RegisterPsychologistRequestToEntity(req))
	if err != nil {
		u.log.Warnf("Failed to register psychologist: %+v", err)
		return nil, err
	}

	u.log.Infof("Psychologist registered: id=%d, email=%s", result.User.ID, result.User.Email)
	return converter.RegistrationToResponse(result), nil
}

// ToggleStatus activates an inactive account or deactivates an active one.
func (u *psychologistUsecase) ToggleStatus(ctx context.Context, id int64) (*dto.StatusChangeResponse, error) {
	change, err := u.psychologistRepo.ToggleStatus(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to toggle status of psychologist %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Psychologist %d active=%t", id, change.Active)
	return &dto.StatusChangeResponse{Message: change.Message, Active: change.Active}, nil
}
