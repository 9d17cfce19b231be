package entity

// Role is the user role issued by the backend at login.
type Role string

const (
	RoleAdmin        Role = "admin"
	RolePsychologist Role = "psicologo"
	RolePatient      Role = "paciente"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePsychologist, RolePatient:
		return true
	}
	return false
}

// Label returns the English display name of the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "administrator"
	case RolePsychologist:
		return "psychologist"
	case RolePatient:
		return "patient"
	}
	return string(r)
}
