package dto

// Request DTOs

type RegisterPatientRequest struct {
	FirstName             string `json:"primer_nombre" validate:"required,min=2,max=50"`
	MiddleName            string `json:"segundo_nombre" validate:"omitempty,max=50"`
	LastName              string `json:"primer_apellido" validate:"required,min=2,max=50"`
	SecondLastName        string `json:"segundo_apellido" validate:"omitempty,max=50"`
	IDNumber              string `json:"cedula" validate:"required,min=10,max=20"`
	Email                 string `json:"correo" validate:"required,email"`
	Phone                 string `json:"telefono" validate:"required,phone"`
	Address               string `json:"direccion" validate:"required,min=10"`
	BirthDate             string `json:"fecha_nacimiento" validate:"required,isodate,minage=13,maxage=120"`
	Gender                string `json:"genero" validate:"omitempty,oneof=masculino femenino otro prefiero_no_decir"`
	EmergencyName         string `json:"contacto_emergencia_nombre" validate:"required,min=5"`
	EmergencyPhone        string `json:"contacto_emergencia_telefono" validate:"required,phone"`
	EmergencyRelationship string `json:"contacto_emergencia_relacion" validate:"required"`
	Allergies             string `json:"alergias"`
	CurrentMedication     string `json:"medicamentos_actuales"`
	MedicalConditions     string `json:"condiciones_medicas"`
	ConsultationReason    string `json:"motivo_consulta" validate:"required,min=20"`
}

type UpdatePatientRequest struct {
	FirstName string `json:"nombre" validate:"omitempty,min=2,max=50"`
	LastName  string `json:"apellido" validate:"omitempty,min=2,max=50"`
	IDNumber  string `json:"cedula" validate:"omitempty,min=10,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"telefono" validate:"omitempty,phone"`
	Address   string `json:"direccion" validate:"omitempty,min=10"`
}

// Response DTOs

type PatientResponse struct {
	ID               int64   `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	AssignedAt       string  `json:"assigned_at,omitempty"`
	RecordsLastWeek  int     `json:"records_last_week"`
	AverageMood7Days float64 `json:"average_mood_7_days"`
	ActiveAlerts     int     `json:"active_alerts"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientDetailResponse struct {
	Patient  PatientResponse           `json:"patient"`
	Records  []EmotionalRecordResponse `json:"records"`
	Summary  MoodSummaryResponse       `json:"summary"`
	Upcoming []AppointmentResponse     `json:"upcoming,omitempty"`
}
