package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/service"
	"wellbeing-client/pkg/timeofday"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentInPast           = errors.New("cannot schedule an appointment on a past date")
	ErrEndBeforeStart              = errors.New("end time must be after start time")
)

// ConflictError blocks a submission whose slot overlaps an existing appointment.
type ConflictError struct {
	Conflict service.Conflict
}

func (e *ConflictError) Error() string {
	return "scheduling conflict: " + e.Conflict.Message()
}

type AppointmentUsecase interface {
	ListMine(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Check(ctx context.Context, req *dto.ConflictCheckRequest) (*dto.ConflictCheckResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentSavedResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentSavedResponse, error)
	Cancel(ctx context.Context, id int64) error
	RecordAttendance(ctx context.Context, id int64, attended bool) (*dto.AttendanceResponse, error)
	Upcoming(ctx context.Context, limit int) ([]dto.AppointmentResponse, error)
	UpcomingForPatient(ctx context.Context, limit int) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

// ListMine returns the psychologist's appointments ordered by date and start time.
func (u *appointmentUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindForPatient(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Check reports every appointment the candidate slot overlaps without saving anything.
func (u *appointmentUsecase) Check(ctx context.Context, req *dto.ConflictCheckRequest) (*dto.ConflictCheckResponse, error) {
	appointments, err := u.appointmentRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments for conflict check: %+v", err)
		return nil, err
	}

	conflicts, err := service.FindAllConflicts(service.ConflictQuery{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ExcludeID: req.ExcludeID,
	}, appointments)
	if err != nil {
		return nil, err
	}

	if len(conflicts) == 0 {
		return &dto.ConflictCheckResponse{Available: true}, nil
	}

	response := &dto.ConflictCheckResponse{Message: conflicts[0].Message()}
	for i := range conflicts {
		response.Conflicts = append(response.Conflicts, *converter.AppointmentToResponse(&conflicts[i].Appointment))
	}
	return response, nil
}

// Create validates the slot against the current appointment list and submits it.
//
// Flow:
// 1. Reject past dates and inverted ranges
// 2. Fetch a fresh snapshot of the psychologist's appointments
// 3. Block on the first overlapping appointment
// 4. POST the appointment
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentSavedResponse, error) {
	date, err := timeofday.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if date.Before(today(u.now())) {
		return nil, ErrAppointmentInPast
	}
	if err := checkRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if err := u.ensureNoConflict(ctx, service.ConflictQuery{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}); err != nil {
		return nil, err
	}

	saved, err := u.appointmentRepo.Create(ctx, converter.CreateAppointmentRequestToInput(req))
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, date=%s, start=%s", saved.ID, req.PatientID, req.Date, req.StartTime)
	return &dto.AppointmentSavedResponse{ID: saved.ID, Message: saved.Message}, nil
}

// Update merges the changes over the stored appointment and re-checks the
// resulting slot, ignoring the appointment itself. Cancelling skips the check.
func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentSavedResponse, error) {
	current, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	date := pick(req.Date, current.Date)
	start := pick(req.StartTime, current.StartTime)
	end := pick(req.EndTime, current.EndTime)
	status := entity.AppointmentStatus(pick(req.Status, string(current.Status)))

	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	if status != entity.AppointmentStatusCancelled {
		if err := u.ensureNoConflict(ctx, service.ConflictQuery{
			Date:      date,
			StartTime: start,
			EndTime:   end,
			ExcludeID: id,
		}); err != nil {
			return nil, err
		}
	}

	saved, err := u.appointmentRepo.Update(ctx, id, converter.UpdateAppointmentRequestToInput(req))
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment updated: id=%d, date=%s, start=%s, status=%s", id, date, start, status)
	return &dto.AppointmentSavedResponse{ID: saved.ID, Message: saved.Message}, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id int64) error {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d", id)
	return nil
}

func (u *appointmentUsecase) RecordAttendance(ctx context.Context, id int64, attended bool) (*dto.AttendanceResponse, error) {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentAlreadyCancelled
	}

	result, err := u.appointmentRepo.RecordAttendance(ctx, id, attended)
	if err != nil {
		u.log.Warnf("Failed to record attendance for appointment %d: %+v", id, err)
		return nil, err
	}
	return converter.AttendanceToResponse(result), nil
}

// Upcoming returns the next scheduled appointments of the psychologist.
func (u *appointmentUsecase) Upcoming(ctx context.Context, limit int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(upcoming(appointments, u.now(), limit)), nil
}

func (u *appointmentUsecase) UpcomingForPatient(ctx context.Context, limit int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindForPatient(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(upcoming(appointments, u.now(), limit)), nil
}

func (u *appointmentUsecase) find(ctx context.Context, id int64) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// ensureNoConflict runs the checker over a fresh snapshot in backend order.
func (u *appointmentUsecase) ensureNoConflict(ctx context.Context, query service.ConflictQuery) error {
	appointments, err := u.appointmentRepo.FindMine(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments for conflict check: %+v", err)
		return err
	}

	conflict, err := service.FindConflict(query, appointments)
	if err != nil {
		return fmt.Errorf("conflict check: %w", err)
	}
	if conflict != nil {
		return &ConflictError{Conflict: *conflict}
	}
	return nil
}

func checkRange(start, end string) error {
	if end == "" {
		return nil
	}
	s, err := timeofday.Parse(start)
	if err != nil {
		return err
	}
	e, err := timeofday.Parse(end)
	if err != nil {
		return err
	}
	if e <= s {
		return ErrEndBeforeStart
	}
	return nil
}

func listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	sorted := make([]entity.Appointment, len(appointments))
	copy(sorted, appointments)
	sortByDateAndStart(sorted)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(sorted),
		Total:        len(sorted),
	}
}

func sortByDateAndStart(appointments []entity.Appointment) {
	key := func(a entity.Appointment) string {
		date, _ := timeofday.NormalizeDate(a.Date)
		start, _ := timeofday.Normalize(a.StartTime)
		return date + " " + start
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return key(appointments[i]) < key(appointments[j])
	})
}

func upcoming(appointments []entity.Appointment, now time.Time, limit int) []entity.Appointment {
	nowKey := now.Format(timeofday.DateLayout + " 15:04")

	var result []entity.Appointment
	for _, a := range appointments {
		if !a.IsScheduled() {
			continue
		}
		date, err := timeofday.NormalizeDate(a.Date)
		if err != nil {
			continue
		}
		start, err := timeofday.Normalize(a.StartTime)
		if err != nil {
			continue
		}
		if date+" "+start < nowKey {
			continue
		}
		result = append(result, a)
	}

	sortByDateAndStart(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
