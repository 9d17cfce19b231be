package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
)

type patientRepository struct {
	client *api.Client
}

func NewPatientRepository(client *api.Client) domainRepo.PatientRepository {
	return &patientRepository{client: client}
}

func (r *patientRepository) FindMine(ctx context.Context) ([]entity.Patient, error) {
	var list struct {
		Total    int              `json:"total_pacientes"`
		Patients []entity.Patient `json:"pacientes"`
	}
	if err := r.client.Get(ctx, "/psicologos/mis-pacientes", nil, &list, "Error loading patients"); err != nil {
		return nil, err
	}
	return list.Patients, nil
}

func (r *patientRepository) Register(ctx context.Context, reg *entity.PatientRegistration) (*entity.RegistrationResult, error) {
	var result entity.RegistrationResult
	if err := r.client.Post(ctx, "/psicologos/registrar-paciente", reg, &result, "Error registering patient"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *patientRepository) Update(ctx context.Context, id int64, update *domainRepo.PatientUpdate) error {
	return r.client.Put(ctx, fmt.Sprintf("/psicologos/paciente/%d", id), update, nil, "Error updating patient")
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/psicologos/paciente/%d", id), nil, "Error removing patient")
}

func (r *patientRepository) FindEmotionalRecords(ctx context.Context, patientID int64, limit int) ([]entity.EmotionalRecord, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limite", strconv.Itoa(limit))
	}

	var list struct {
		Records []entity.EmotionalRecord `json:"registros"`
		Total   int                      `json:"total"`
	}
	path := fmt.Sprintf("/pacientes/%d/registros-emocionales", patientID)
	if err := r.client.Get(ctx, path, query, &list, "Error loading emotional records"); err != nil {
		return nil, err
	}
	return list.Records, nil
}
