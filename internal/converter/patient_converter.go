package converter

import (
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		FullName:         patient.FullName,
		Email:            patient.Email,
		Phone:            patient.Phone,
		AssignedAt:       displayDate(patient.AssignedAt),
		RecordsLastWeek:  patient.RecordsLastWeek,
		AverageMood7Days: patient.AverageMood7Days,
		ActiveAlerts:     patient.ActiveAlerts,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func RegisterPatientRequestToEntity(req *dto.RegisterPatientRequest) *entity.PatientRegistration {
	return &entity.PatientRegistration{
		FirstName:             req.FirstName,
		MiddleName:            req.MiddleName,
		LastName:              req.LastName,
		SecondLastName:        req.SecondLastName,
		IDNumber:              req.IDNumber,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Address:               req.Address,
		BirthDate:             req.BirthDate,
		Gender:                req.Gender,
		EmergencyName:         req.EmergencyName,
		EmergencyPhone:        req.EmergencyPhone,
		EmergencyRelationship: req.EmergencyRelationship,
		Allergies:             req.Allergies,
		CurrentMedication:     req.CurrentMedication,
		MedicalConditions:     req.MedicalConditions,
		ConsultationReason:    req.ConsultationReason,
	}
}

func UpdatePatientRequestToUpdate(req *dto.UpdatePatientRequest) *domainRepo.PatientUpdate {
	return &domainRepo.PatientUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IDNumber:  req.IDNumber,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
}

// RegistrationToResponse flattens the backend's account-creation reply.
func RegistrationToResponse(result *entity.RegistrationResult) *dto.RegistrationResponse {
	return &dto.RegistrationResponse{
		Message:           result.Message,
		UserID:            result.User.ID,
		FullName:          result.User.FullName,
		Email:             result.User.Email,
		TemporaryPassword: result.Credentials.TemporaryPassword,
		EmailSent:         result.Credentials.EmailSent,
		Instructions:      result.Instructions,
	}
}
