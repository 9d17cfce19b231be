package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

// PatientUpdate carries the editable profile fields of a patient. Empty
// fields are left unchanged by the backend.
type PatientUpdate struct {
	FirstName string `json:"nombre,omitempty"`
	LastName  string `json:"apellido,omitempty"`
	IDNumber  string `json:"cedula,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion,omitempty"`
}

type PatientRepository interface {
	FindMine(ctx context.Context) ([]entity.Patient, error)
	Register(ctx context.Context, reg *entity.PatientRegistration) (*entity.RegistrationResult, error)
	Update(ctx context.Context, id int64, update *PatientUpdate) error
	Delete(ctx context.Context, id int64) error
	FindEmotionalRecords(ctx context.Context, patientID int64, limit int) ([]entity.EmotionalRecord, error)
}
