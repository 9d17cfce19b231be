package entity

// Psychologist is a psychologist account as seen by administrators.
type Psychologist struct {
	ID                  int64  `json:"id"`
	FullName            string `json:"nombre_completo"`
	FirstName           string `json:"nombre"`
	LastName            string `json:"apellido"`
	IDNumber            string `json:"cedula,omitempty"`
	Email               string `json:"email"`
	Phone               string `json:"telefono,omitempty"`
	Address             string `json:"direccion,omitempty"`
	BirthDate           string `json:"fecha_nacimiento,omitempty"`
	Active              bool   `json:"activo"`
	CreatedAt           string `json:"fecha_registro,omitempty"`
	LastAccess          string `json:"ultimo_acceso,omitempty"`
	TotalPatients       int    `json:"total_pacientes"`
	Specialty           string `json:"especialidad,omitempty"`
	CompletedSessions   int    `json:"citas_completadas,omitempty"`
	SessionsThisMonth   int    `json:"citas_este_mes,omitempty"`
	LicenseNumber       string `json:"numero_licencia,omitempty"`
	ProfessionalTitle   string `json:"titulo_profesional,omitempty"`
	YearsOfExperience   *int   `json:"años_experiencia,omitempty"`
	TrainingInstitution string `json:"institucion_formacion,omitempty"`
}

// PsychologistRegistration is the form an administrator submits to create
// a psychologist account.
type PsychologistRegistration struct {
	FirstName           string `json:"primer_nombre"`
	MiddleName          string `json:"segundo_nombre,omitempty"`
	LastName            string `json:"primer_apellido"`
	SecondLastName      string `json:"segundo_apellido,omitempty"`
	PersonalEmail       string `json:"email_personal"`
	Phone               string `json:"telefono"`
	Address             string `json:"direccion"`
	BirthDate           string `json:"fecha_nacimiento"`
	LicenseNumber       string `json:"numero_licencia"`
	ProfessionalTitle   string `json:"titulo_profesional"`
	Specialty           string `json:"especialidad,omitempty"`
	YearsOfExperience   int    `json:"años_experiencia"`
	TrainingInstitution string `json:"institucion_formacion"`
}

// StatusChange is returned after activating or deactivating an account.
type StatusChange struct {
	Message string `json:"mensaje"`
	Active  bool   `json:"nuevo_estado"`
}
