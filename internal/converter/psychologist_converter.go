package converter

import (
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
)

func PsychologistToResponse(p *entity.Psychologist) *dto.PsychologistResponse {
	if p == nil {
		return nil
	}

	name := p.FullName
	if name == "" {
		name = entity.PersonName{FirstName: p.FirstName, LastName: p.LastName}.Full()
	}

	return &dto.PsychologistResponse{
		ID:                p.ID,
		FullName:          name,
		Email:             p.Email,
		Phone:             p.Phone,
		IDNumber:          p.IDNumber,
		Specialty:         p.Specialty,
		Active:            p.Active,
		RegisteredAt:      displayDate(p.CreatedAt),
		LastAccess:        p.LastAccess,
		TotalPatients:     p.TotalPatients,
		CompletedSessions: p.CompletedSessions,
		SessionsThisMonth: p.SessionsThisMonth,
	}
}

func PsychologistsToResponses(psychologists []entity.Psychologist) []dto.PsychologistResponse {
	responses := make([]dto.PsychologistResponse, len(psychologists))
	for i := range psychologists {
		responses[i] = *PsychologistToResponse(&psychologists[i])
	}
	return responses
}

func RegisterPsychologistRequestToEntity(req *dto.RegisterPsychologistRequest) *entity.PsychologistRegistration {
	return &entity.PsychologistRegistration{
		FirstName:           req.FirstName,
		MiddleName:          req.MiddleName,
		LastName:            req.LastName,
		SecondLastName:      req.SecondLastName,
		PersonalEmail:       req.PersonalEmail,
		Phone:               req.Phone,
		Address:             req.Address,
		BirthDate:           req.BirthDate,
		LicenseNumber:       req.LicenseNumber,
		ProfessionalTitle:   req.ProfessionalTitle,
		Specialty:           req.Specialty,
		YearsOfExperience:   req.YearsOfExperience,
		TrainingInstitution: req.TrainingInstitution,
	}
}
