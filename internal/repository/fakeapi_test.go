package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"wellbeing-client/config"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/infrastructure/api"
	"wellbeing-client/pkg/response"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const fakeToken = "test-token"

// fakeBackend mimics the wellbeing REST API closely enough for repository tests.
type fakeBackend struct {
	mu           sync.Mutex
	appointments []entity.Appointment
	patients     []entity.Patient
	records      map[int64][]entity.EmotionalRecord
	nextID       int64
	lastBody     map[string]interface{}
	lastQuery    map[string]string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{records: map[int64][]entity.EmotionalRecord{}, nextID: 100}
}

func (f *fakeBackend) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/token", f.login).Methods(http.MethodPost)

	v1 := r.PathPrefix("/api").Subrouter()
	v1.Use(f.requireToken)
	v1.HandleFunc("/citas/psicologo/mis-citas", f.listAppointments).Methods(http.MethodGet)
	v1.HandleFunc("/citas/", f.createAppointment).Methods(http.MethodPost)
	v1.HandleFunc("/citas/{id:[0-9]+}", f.getAppointment).Methods(http.MethodGet)
	v1.HandleFunc("/citas/{id:[0-9]+}", f.updateAppointment).Methods(http.MethodPut)
	v1.HandleFunc("/citas/{id:[0-9]+}", f.deleteAppointment).Methods(http.MethodDelete)
	v1.HandleFunc("/citas/{id:[0-9]+}/asistencia", f.attendance).Methods(http.MethodPut)
	v1.HandleFunc("/psicologos/mis-pacientes", f.listPatients).Methods(http.MethodGet)
	v1.HandleFunc("/psicologos/paciente/{id:[0-9]+}", f.updatePatient).Methods(http.MethodPut)
	v1.HandleFunc("/pacientes/{id:[0-9]+}/registros-emocionales", f.patientRecords).Methods(http.MethodGet)
	v1.HandleFunc("/admin/reportes/general", f.generalReport).Methods(http.MethodGet)
	return r
}

func (f *fakeBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fakeToken {
			response.Unauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeBackend) readBody(r *http.Request) {
	f.lastBody = nil
	data, _ := io.ReadAll(r.Body)
	if len(data) > 0 {
		json.Unmarshal(data, &f.lastBody)
	}
	f.lastQuery = map[string]string{}
	for k := range r.URL.Query() {
		f.lastQuery[k] = r.URL.Query().Get(k)
	}
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (f *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.PostForm.Get("password") != "Secret123" {
		response.Unauthorized(w, "Incorrect username or password")
		return
	}
	response.JSON(w, http.StatusOK, entity.LoginResult{
		AccessToken: fakeToken,
		TokenType:   "bearer",
		Role:        entity.RolePsychologist,
		UserID:      7,
		FullName:    "Laura Gómez",
	})
}

func (f *fakeBackend) listAppointments(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	response.JSON(w, http.StatusOK, map[string]interface{}{"citas": f.appointments, "total": len(f.appointments)})
}

func (f *fakeBackend) find(id int64) int {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeBackend) getAppointment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(pathID(r))
	if i < 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}
	response.JSON(w, http.StatusOK, f.appointments[i])
}

func (f *fakeBackend) createAppointment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)

	var a entity.Appointment
	data, _ := json.Marshal(f.lastBody)
	json.Unmarshal(data, &a)
	f.nextID++
	a.ID = f.nextID
	a.Status = entity.AppointmentStatusScheduled
	f.appointments = append(f.appointments, a)
	response.JSON(w, http.StatusOK, map[string]interface{}{"mensaje": "Cita creada exitosamente", "id_cita": a.ID})
}

func (f *fakeBackend) updateAppointment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)
	id := pathID(r)
	i := f.find(id)
	if i < 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}
	if v, ok := f.lastBody["hora_inicio"].(string); ok {
		f.appointments[i].StartTime = v
	}
	if v, ok := f.lastBody["estado"].(string); ok {
		f.appointments[i].Status = entity.AppointmentStatus(v)
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"mensaje": "Cita actualizada exitosamente", "id_cita": id})
}

func (f *fakeBackend) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(pathID(r))
	if i < 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}
	f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
	response.JSON(w, http.StatusOK, map[string]string{"mensaje": "Cita eliminada exitosamente"})
}

func (f *fakeBackend) attendance(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)
	i := f.find(pathID(r))
	if i < 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}
	attended, _ := f.lastBody["asistio"].(bool)
	f.appointments[i].Attended = &attended
	f.appointments[i].Status = entity.AppointmentStatusNoShow
	if attended {
		f.appointments[i].Status = entity.AppointmentStatusCompleted
	}
	response.JSON(w, http.StatusOK, entity.AttendanceResult{
		Message:  "Asistencia registrada exitosamente",
		Attended: attended,
		Status:   f.appointments[i].Status,
	})
}

func (f *fakeBackend) listPatients(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	response.JSON(w, http.StatusOK, map[string]interface{}{"total_pacientes": len(f.patients), "pacientes": f.patients})
}

func (f *fakeBackend) updatePatient(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)
	response.JSON(w, http.StatusOK, map[string]string{"mensaje": "Paciente actualizado"})
}

func (f *fakeBackend) patientRecords(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)
	id := pathID(r)
	if _, ok := f.records[id]; !ok {
		response.Forbidden(w, "El paciente no está asignado a este psicólogo")
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"registros": f.records[id], "total": len(f.records[id])})
}

func (f *fakeBackend) generalReport(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readBody(r)
	days, _ := strconv.Atoi(r.URL.Query().Get("dias"))
	response.JSON(w, http.StatusOK, entity.GeneralReport{
		PeriodDays:          days,
		TotalRecords:        3,
		EmotionDistribution: map[string]int{"calma": 2, "ansiedad": 1},
		RiskDistribution:    map[string]int{"bajo": 3},
		RecordsPerDay:       []entity.DailyCount{{Date: "2024-03-10", Total: 3}},
	})
}

type tokenSource struct {
	token       string
	invalidated bool
}

func (s *tokenSource) AccessToken(ctx context.Context) (string, error) { return s.token, nil }

func (s *tokenSource) Invalidate(ctx context.Context) error {
	s.invalidated = true
	return nil
}

// newTestAPI starts the fake backend and returns a client authenticated against it.
func newTestAPI(t *testing.T) (*fakeBackend, *api.Client, *tokenSource) {
	t.Helper()
	backend := newFakeBackend()
	server := httptest.NewServer(backend.router())
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	creds := &tokenSource{token: fakeToken}
	client := api.NewClient(log, config.APIConfig{
		BaseURL: server.URL + "/api",
		AuthURL: server.URL,
		Timeout: 2 * time.Second,
	}, creds)
	return backend, client, creds
}

func fakePatient(id int64) entity.Patient {
	return entity.Patient{
		ID:               id,
		FullName:         gofakeit.FirstName() + " " + gofakeit.LastName(),
		Email:            gofakeit.Email(),
		Phone:            gofakeit.Numerify("09########"),
		RecordsLastWeek:  gofakeit.Number(0, 7),
		AverageMood7Days: 6.5,
	}
}
