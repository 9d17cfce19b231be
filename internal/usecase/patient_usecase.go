package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/service"

	"github.com/sirupsen/logrus"
)

// DefaultRecordLimit is how many emotional records a patient detail shows.
const DefaultRecordLimit = 30

var ErrPatientNotFound = errors.New("patient not found or not assigned to you")

type PatientUsecase interface {
	ListMine(ctx context.Context, filter string) (*dto.PatientListResponse, error)
	Get(ctx context.Context, id int64) (*dto.PatientDetailResponse, error)
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) error
	Delete(ctx context.Context, id int64) error
	EmotionalRecords(ctx context.Context, id int64, limit int) (*dto.EmotionalHistoryResponse, error)
}

type patientUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

// ListMine returns the psychologist's patients, keeping only those whose
// name or email contains filter (case-insensitive) when filter is set.
func (u *patientUsecase) ListMine(ctx context.Context, filter string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter != "" {
		matched := patients[:0:0]
		for _, p := range patients {
			if strings.Contains(strings.ToLower(p.FullName), filter) || strings.Contains(strings.ToLower(p.Email), filter) {
				matched = append(matched, p)
			}
		}
		patients = matched
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// Get assembles the patient detail screen: profile, recent records with
// their local summary, and the patient's upcoming appointments.
func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientDetailResponse, error) {
	patient, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := u.patientRepo.FindEmotionalRecords(ctx, id, DefaultRecordLimit)
	if err != nil {
		u.log.Warnf("Failed to find emotional records of patient %d: %+v", id, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	var own []entity.Appointment
	for _, a := range appointments {
		if a.PatientID == id {
			own = append(own, a)
		}
	}

	return &dto.PatientDetailResponse{
		Patient:  *converter.PatientToResponse(patient),
		Records:  converter.EmotionalRecordsToResponses(records),
		Summary:  converter.MoodSummaryToResponse(service.Summarize(records, 0)),
		Upcoming: converter.AppointmentsToResponses(upcoming(own, u.now(), 0)),
	}, nil
}

func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error) {
	result, err := u.patientRepo.Register(ctx, converter.RegisterPatientRequestToEntity(req))
	if err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%d, email=%s", result.User.ID, result.User.Email)
	return converter.RegistrationToResponse(result), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) error {
	if _, err := u.find(ctx, id); err != nil {
		return err
	}

	if err := u.patientRepo.Update(ctx, id, converter.UpdatePatientRequestToUpdate(req)); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return err
	}
	return nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.find(ctx, id); err != nil {
		return err
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}

	u.log.Infof("Patient deleted: id=%d", id)
	return nil
}

func (u *patientUsecase) EmotionalRecords(ctx context.Context, id int64, limit int) (*dto.EmotionalHistoryResponse, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}

	records, err := u.patientRepo.FindEmotionalRecords(ctx, id, limit)
	if err != nil {
		u.log.Warnf("Failed to find emotional records of patient %d: %+v", id, err)
		return nil, err
	}

	return &dto.EmotionalHistoryResponse{
		Records: converter.EmotionalRecordsToResponses(records),
		Summary: converter.MoodSummaryToResponse(service.Summarize(records, 0)),
	}, nil
}

// find looks the patient up in the assigned list; the backend has no
// single-patient endpoint for psychologists.
func (u *patientUsecase) find(ctx context.Context, id int64) (*entity.Patient, error) {
	patients, err := u.patientRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, ErrPatientNotFound
}
