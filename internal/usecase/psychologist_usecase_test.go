package usecase

import (
	"context"
	"errors"
	"testing"

	"wellbeing-client/internal/domain/entity"
)

type fakePsychologistRepo struct {
	psychologists []entity.Psychologist
	toggled       []int64
}

func (r *fakePsychologistRepo) FindAll(ctx context.Context) ([]entity.Psychologist, error) {
	return r.psychologists, nil
}

func (r *fakePsychologistRepo) FindByID(ctx context.Context, id int64) (*entity.Psychologist, error) {
	for i := range r.psychologists {
		if r.psychologists[i].ID == id {
			return &r.psychologists[i], nil
		}
	}
	return nil, nil
}

func (r *fakePsychologistRepo) Register(ctx context.Context, reg *entity.PsychologistRegistration) (*entity.RegistrationResult, error) {
	return &entity.RegistrationResult{Message: "Psicólogo registrado"}, nil
}

func (r *fakePsychologistRepo) ToggleStatus(ctx context.Context, id int64) (*entity.StatusChange, error) {
	r.toggled = append(r.toggled, id)
	return &entity.StatusChange{Message: "Estado actualizado", Active: false}, nil
}

func TestPsychologistUsecase(t *testing.T) {
	repo := &fakePsychologistRepo{psychologists: []entity.Psychologist{
		{ID: 1, FullName: "Laura Méndez", Active: true},
		{ID: 2, FullName: "Jorge Ríos", Active: false},
		{ID: 3, FullName: "Sara Pinto", Active: true},
	}}
	uc := NewPsychologistUsecase(quietLogger(), repo)

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 3 || list.Active != 2 {
		t.Errorf("expected 3 total and 2 active, got %d/%d", list.Total, list.Active)
	}

	got, err := uc.Get(context.Background(), 2)
	if err != nil || got.FullName != "Jorge Ríos" {
		t.Errorf("unexpected Get result %+v, %v", got, err)
	}
	if _, err := uc.Get(context.Background(), 9); !errors.Is(err, ErrPsychologistNotFound) {
		t.Errorf("expected ErrPsychologistNotFound, got %v", err)
	}

	change, err := uc.ToggleStatus(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change.Active || len(repo.toggled) != 1 {
		t.Errorf("unexpected toggle result %+v", change)
	}
}
