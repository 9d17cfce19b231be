package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID     int64  `json:"id_paciente" validate:"required,gte=1"`
	Date          string `json:"fecha" validate:"required,isodate"`
	StartTime     string `json:"hora_inicio" validate:"required,hhmm"`
	EndTime       string `json:"hora_fin" validate:"omitempty,hhmm"`
	Modality      string `json:"modalidad" validate:"omitempty,oneof=virtual presencial telefonica"`
	PreviousNotes string `json:"notas_previas" validate:"omitempty,max=1000"`
	VideoURL      string `json:"url_videollamada" validate:"omitempty,url"`
	Objectives    string `json:"objetivos" validate:"omitempty,max=1000"`
}

// UpdateAppointmentRequest changes only the fields that are set.
type UpdateAppointmentRequest struct {
	Date          string `json:"fecha" validate:"omitempty,isodate"`
	StartTime     string `json:"hora_inicio" validate:"omitempty,hhmm"`
	EndTime       string `json:"hora_fin" validate:"omitempty,hhmm"`
	Modality      string `json:"modalidad" validate:"omitempty,oneof=virtual presencial telefonica"`
	Status        string `json:"estado" validate:"omitempty,oneof=programada completada cancelada no_asistio"`
	PreviousNotes string `json:"notas_previas" validate:"omitempty,max=1000"`
	VideoURL      string `json:"url_videollamada" validate:"omitempty,url"`
}

// ConflictCheckRequest asks whether a slot is free without saving anything.
type ConflictCheckRequest struct {
	Date      string `json:"fecha" validate:"required,isodate"`
	StartTime string `json:"hora_inicio" validate:"required,hhmm"`
	EndTime   string `json:"hora_fin" validate:"omitempty,hhmm"`
	ExcludeID int64  `json:"exclude_id" validate:"gte=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           int64  `json:"id"`
	PatientID    int64  `json:"patient_id,omitempty"`
	PatientName  string `json:"patient_name,omitempty"`
	Psychologist string `json:"psychologist,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
	Modality     string `json:"modality,omitempty"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	VideoURL     string `json:"video_url,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Attended     *bool  `json:"attended,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AppointmentSavedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ConflictCheckResponse struct {
	Available bool                  `json:"available"`
	Message   string                `json:"message,omitempty"`
	Conflicts []AppointmentResponse `json:"conflicts,omitempty"`
}

type AttendanceResponse struct {
	Message     string `json:"message"`
	Attended    bool   `json:"attended"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}
