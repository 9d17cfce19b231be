package dto

// Request DTOs

type RegisterPsychologistRequest struct {
	FirstName           string `json:"primer_nombre" validate:"required,min=2,max=50"`
	MiddleName          string `json:"segundo_nombre" validate:"omitempty,max=50"`
	LastName            string `json:"primer_apellido" validate:"required,min=2,max=50"`
	SecondLastName      string `json:"segundo_apellido" validate:"omitempty,max=50"`
	PersonalEmail       string `json:"email_personal" validate:"required,email"`
	Phone               string `json:"telefono" validate:"required,phone"`
	Address             string `json:"direccion" validate:"required,min=10"`
	BirthDate           string `json:"fecha_nacimiento" validate:"required,isodate,minage=23"`
	LicenseNumber       string `json:"numero_licencia" validate:"required,min=5"`
	ProfessionalTitle   string `json:"titulo_profesional" validate:"required"`
	Specialty           string `json:"especialidad"`
	YearsOfExperience   int    `json:"años_experiencia" validate:"gte=0,lte=50"`
	TrainingInstitution string `json:"institucion_formacion" validate:"required"`
}

// Response DTOs

type PsychologistResponse struct {
	ID                int64  `json:"id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	IDNumber          string `json:"id_number,omitempty"`
	Specialty         string `json:"specialty,omitempty"`
	Active            bool   `json:"active"`
	RegisteredAt      string `json:"registered_at,omitempty"`
	LastAccess        string `json:"last_access,omitempty"`
	TotalPatients     int    `json:"total_patients"`
	CompletedSessions int    `json:"completed_sessions"`
	SessionsThisMonth int    `json:"sessions_this_month"`
}

type PsychologistListResponse struct {
	Psychologists []PsychologistResponse `json:"psychologists"`
	Total         int                    `json:"total"`
	Active        int                    `json:"active"`
}

type StatusChangeResponse struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}
