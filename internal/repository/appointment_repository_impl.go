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

type appointmentList struct {
	Appointments []entity.Appointment `json:"citas"`
	Total        int                  `json:"total"`
}

type appointmentRepository struct {
	client *api.Client
}

func NewAppointmentRepository(client *api.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{client: client}
}

// FindMine returns the psychologist's appointments in the order the backend sent them.
func (r *appointmentRepository) FindMine(ctx context.Context) ([]entity.Appointment, error) {
	var list appointmentList
	if err := r.client.Get(ctx, "/citas/psicologo/mis-citas", nil, &list, "Error loading appointments"); err != nil {
		return nil, err
	}
	return list.Appointments, nil
}

func (r *appointmentRepository) FindForPatient(ctx context.Context) ([]entity.Appointment, error) {
	var list appointmentList
	if err := r.client.Get(ctx, "/citas/paciente/mis-citas", nil, &list, "Error loading appointments"); err != nil {
		return nil, err
	}
	return list.Appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.client.Get(ctx, fmt.Sprintf("/citas/%d", id), nil, &appointment, "Error loading appointment")
	if err != nil {
		var apiErr *response.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, input *domainRepo.AppointmentInput) (*domainRepo.AppointmentSaved, error) {
	var saved domainRepo.AppointmentSaved
	if err := r.client.Post(ctx, "/citas/", input, &saved, "Error saving appointment"); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, input *domainRepo.AppointmentInput) (*domainRepo.AppointmentSaved, error) {
	var saved domainRepo.AppointmentSaved
	if err := r.client.Put(ctx, fmt.Sprintf("/citas/%d", id), input, &saved, "Error saving appointment"); err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		saved.ID = id
	}
	return &saved, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/citas/%d", id), nil, "Error cancelling appointment")
}

func (r *appointmentRepository) RecordAttendance(ctx context.Context, id int64, attended bool) (*entity.AttendanceResult, error) {
	var result entity.AttendanceResult
	body := map[string]bool{"asistio": attended}
	if err := r.client.Put(ctx, fmt.Sprintf("/citas/%d/asistencia", id), body, &result, "Error recording attendance"); err != nil {
		return nil, err
	}
	return &result, nil
}
