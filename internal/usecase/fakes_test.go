package usecase

import (
	"context"
	"io"
	"sync"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
	created      []*repository.AppointmentInput
	updated      map[int64]*repository.AppointmentInput
	deleted      []int64
	attendance   map[int64]bool
	err          error
	nextID       int64
}

func newFakeAppointmentRepo(appointments ...entity.Appointment) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: appointments,
		updated:      map[int64]*repository.AppointmentInput{},
		attendance:   map[int64]bool{},
		nextID:       500,
	}
}

func (r *fakeAppointmentRepo) FindMine(ctx context.Context) ([]entity.Appointment, error) {
	return r.appointments, r.err
}

func (r *fakeAppointmentRepo) FindForPatient(ctx context.Context) ([]entity.Appointment, error) {
	return r.appointments, r.err
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			return &r.appointments[i], nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, input *repository.AppointmentInput) (*repository.AppointmentSaved, error) {
	r.created = append(r.created, input)
	r.nextID++
	return &repository.AppointmentSaved{Message: "Cita creada exitosamente", ID: r.nextID}, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, id int64, input *repository.AppointmentInput) (*repository.AppointmentSaved, error) {
	r.updated[id] = input
	return &repository.AppointmentSaved{Message: "Cita actualizada exitosamente", ID: id}, nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeAppointmentRepo) RecordAttendance(ctx context.Context, id int64, attended bool) (*entity.AttendanceResult, error) {
	r.attendance[id] = attended
	status := entity.AppointmentStatusCompleted
	if !attended {
		status = entity.AppointmentStatusNoShow
	}
	return &entity.AttendanceResult{Message: "Asistencia registrada", Attended: attended, Status: status}, nil
}

type fakePatientRepo struct {
	patients   []entity.Patient
	records    map[int64][]entity.EmotionalRecord
	lastLimit  int
	updated    map[int64]*repository.PatientUpdate
	deleted    []int64
	registered []*entity.PatientRegistration
}

func (r *fakePatientRepo) FindMine(ctx context.Context) ([]entity.Patient, error) {
	return r.patients, nil
}

func (r *fakePatientRepo) Register(ctx context.Context, reg *entity.PatientRegistration) (*entity.RegistrationResult, error) {
	r.registered = append(r.registered, reg)
	result := &entity.RegistrationResult{Message: "Paciente registrado"}
	result.User.ID = 77
	result.User.Email = reg.Email
	result.User.FullName = reg.FirstName + " " + reg.LastName
	result.Credentials.TemporaryPassword = "Temp1234"
	return result, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, id int64, update *repository.PatientUpdate) error {
	if r.updated == nil {
		r.updated = map[int64]*repository.PatientUpdate{}
	}
	r.updated[id] = update
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakePatientRepo) FindEmotionalRecords(ctx context.Context, patientID int64, limit int) ([]entity.EmotionalRecord, error) {
	r.lastLimit = limit
	return r.records[patientID], nil
}

type memorySessionRepo struct {
	mu      sync.Mutex
	session *entity.Session
}

func (r *memorySessionRepo) Load(ctx context.Context) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, nil
	}
	copied := *r.session
	return &copied, nil
}

func (r *memorySessionRepo) Save(ctx context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.session = &copied
	return nil
}

func (r *memorySessionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
