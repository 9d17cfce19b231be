package entity

// Patient is a patient as listed for the assigned psychologist, including
// the short-term tracking aggregates the backend computes.
type Patient struct {
	ID               int64   `json:"id_paciente"`
	FullName         string  `json:"nombre_completo"`
	Email            string  `json:"email"`
	Phone            string  `json:"telefono,omitempty"`
	AssignedAt       string  `json:"fecha_asignacion,omitempty"`
	RecordsLastWeek  int     `json:"registros_ultima_semana"`
	AverageMood7Days float64 `json:"promedio_animo_7dias"`
	ActiveAlerts     int     `json:"alertas_activas"`
}

// PatientRegistration is the full intake form submitted by a psychologist.
type PatientRegistration struct {
	FirstName             string `json:"primer_nombre"`
	MiddleName            string `json:"segundo_nombre,omitempty"`
	LastName              string `json:"primer_apellido"`
	SecondLastName        string `json:"segundo_apellido,omitempty"`
	IDNumber              string `json:"cedula"`
	Email                 string `json:"correo"`
	Phone                 string `json:"telefono"`
	Address               string `json:"direccion"`
	BirthDate             string `json:"fecha_nacimiento"`
	Gender                string `json:"genero,omitempty"`
	EmergencyName         string `json:"contacto_emergencia_nombre"`
	EmergencyPhone        string `json:"contacto_emergencia_telefono"`
	EmergencyRelationship string `json:"contacto_emergencia_relacion"`
	Allergies             string `json:"alergias,omitempty"`
	CurrentMedication     string `json:"medicamentos_actuales,omitempty"`
	MedicalConditions     string `json:"condiciones_medicas,omitempty"`
	ConsultationReason    string `json:"motivo_consulta"`
}

// RegistrationResult is returned when the backend creates an account and
// issues its initial credentials.
type RegistrationResult struct {
	Message string `json:"mensaje"`
	User    struct {
		ID       int64  `json:"id"`
		FullName string `json:"nombre_completo"`
		Email    string `json:"email"`
		Role     Role   `json:"rol"`
	} `json:"usuario"`
	Credentials struct {
		Email             string `json:"email"`
		TemporaryPassword string `json:"password_temporal"`
		EmailSent         bool   `json:"correo_enviado"`
	} `json:"credenciales"`
	Instructions string `json:"instrucciones,omitempty"`
}

// CareAssignment tells a patient which psychologist follows them.
type CareAssignment struct {
	HasPsychologist bool                  `json:"tiene_psicologo"`
	Message         string                `json:"mensaje,omitempty"`
	Psychologist    *AssignedPsychologist `json:"psicologo,omitempty"`
}

type AssignedPsychologist struct {
	ID         int64  `json:"id_usuario"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Phone      string `json:"telefono,omitempty"`
	AssignedAt string `json:"fecha_asignacion,omitempty"`
}
