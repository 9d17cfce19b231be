package entity

import "strings"

// AppointmentStatus is the lifecycle state of an appointment as stored by the backend.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "programada"
	AppointmentStatusCompleted AppointmentStatus = "completada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
	AppointmentStatusNoShow    AppointmentStatus = "no_asistio"
)

// Modality of a session
const (
	ModalityVirtual  = "virtual"
	ModalityInPerson = "presencial"
)

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Label returns the English display name of the status.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusScheduled:
		return "scheduled"
	case AppointmentStatusCompleted:
		return "completed"
	case AppointmentStatusCancelled:
		return "cancelled"
	case AppointmentStatusNoShow:
		return "no-show"
	}
	return string(s)
}

// ParseAppointmentStatus accepts either the backend value or the English label.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "programada", "scheduled":
		return AppointmentStatusScheduled, true
	case "completada", "completed":
		return AppointmentStatusCompleted, true
	case "cancelada", "cancelled", "canceled":
		return AppointmentStatusCancelled, true
	case "no_asistio", "no-show", "noshow":
		return AppointmentStatusNoShow, true
	}
	return "", false
}

// PersonName is the short name block embedded in appointment listings.
type PersonName struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
}

func (n PersonName) Full() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

// Appointment represents a therapy session between a psychologist and a patient.
// Date is YYYY-MM-DD and times are wall-clock strings; no time zone is applied.
type Appointment struct {
	ID               int64             `json:"id_cita"`
	PatientID        int64             `json:"id_paciente"`
	PsychologistID   int64             `json:"id_psicologo,omitempty"`
	Patient          *PersonName       `json:"paciente,omitempty"`
	Psychologist     *PersonName       `json:"psicologo,omitempty"`
	PatientFullName  string            `json:"paciente_nombre,omitempty"`
	PsychologistName string            `json:"psicologo_nombre,omitempty"`
	Date             string            `json:"fecha"`
	StartTime        string            `json:"hora_inicio"`
	EndTime          string            `json:"hora_fin,omitempty"`
	Modality         string            `json:"modalidad,omitempty"`
	Status           AppointmentStatus `json:"estado"`
	PreviousNotes    string            `json:"notas_previas,omitempty"`
	VideoURL         string            `json:"url_videollamada,omitempty"`
	Objectives       string            `json:"objetivos,omitempty"`
	SessionNotes     string            `json:"notas_sesion,omitempty"`
	Attended         *bool             `json:"asistio,omitempty"`
	Past             bool              `json:"ya_paso,omitempty"`
	CreatedAt        string            `json:"fecha_creacion,omitempty"`
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsScheduled checks if appointment is still pending
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// PatientName returns the best available display name for the patient.
func (a *Appointment) PatientName() string {
	if a.PatientFullName != "" {
		return a.PatientFullName
	}
	if a.Patient != nil {
		if name := a.Patient.Full(); name != "" {
			return name
		}
	}
	return ""
}

// PsychologistDisplayName returns the therapist name shown to patients.
func (a *Appointment) PsychologistDisplayName() string {
	if a.PsychologistName != "" {
		return a.PsychologistName
	}
	if a.Psychologist != nil {
		return a.Psychologist.Full()
	}
	return ""
}

// AttendanceResult is returned after recording whether the patient attended.
type AttendanceResult struct {
	Message  string            `json:"mensaje"`
	Attended bool              `json:"asistio"`
	Status   AppointmentStatus `json:"estado"`
}
