package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

// AppointmentInput is the writable part of an appointment.
type AppointmentInput struct {
	PatientID     int64                    `json:"id_paciente,omitempty"`
	Date          string                   `json:"fecha,omitempty"`
	StartTime     string                   `json:"hora_inicio,omitempty"`
	EndTime       string                   `json:"hora_fin,omitempty"`
	Modality      string                   `json:"modalidad,omitempty"`
	Status        entity.AppointmentStatus `json:"estado,omitempty"`
	PreviousNotes string                   `json:"notas_previas,omitempty"`
	VideoURL      string                   `json:"url_videollamada,omitempty"`
	Objectives    string                   `json:"objetivos,omitempty"`
}

// AppointmentSaved is the acknowledgement returned for create and update.
type AppointmentSaved struct {
	Message string `json:"mensaje"`
	ID      int64  `json:"id_cita"`
}

type AppointmentRepository interface {
	FindMine(ctx context.Context) ([]entity.Appointment, error)
	FindForPatient(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	Create(ctx context.Context, input *AppointmentInput) (*AppointmentSaved, error)
	Update(ctx context.Context, id int64, input *AppointmentInput) (*AppointmentSaved, error)
	Delete(ctx context.Context, id int64) error
	RecordAttendance(ctx context.Context, id int64, attended bool) (*entity.AttendanceResult, error)
}
