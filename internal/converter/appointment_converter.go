package converter

import (
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/pkg/timeofday"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Times are shown as HH:MM even when the backend sends seconds.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		PatientID:    appointment.PatientID,
		PatientName:  appointment.PatientName(),
		Psychologist: appointment.PsychologistDisplayName(),
		Date:         displayDate(appointment.Date),
		StartTime:    displayTime(appointment.StartTime),
		EndTime:      displayTime(appointment.EndTime),
		Modality:     appointment.Modality,
		Status:       string(appointment.Status),
		StatusLabel:  appointment.Status.Label(),
		VideoURL:     appointment.VideoURL,
		Notes:        appointment.PreviousNotes,
		Attended:     appointment.Attended,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// CreateAppointmentRequestToInput maps the form onto the backend payload.
func CreateAppointmentRequestToInput(req *dto.CreateAppointmentRequest) *domainRepo.AppointmentInput {
	modality := req.Modality
	if modality == "" {
		modality = entity.ModalityVirtual
	}
	return &domainRepo.AppointmentInput{
		PatientID:     req.PatientID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Modality:      modality,
		PreviousNotes: req.PreviousNotes,
		VideoURL:      req.VideoURL,
		Objectives:    req.Objectives,
	}
}

// UpdateAppointmentRequestToInput sends only the fields that changed.
func UpdateAppointmentRequestToInput(req *dto.UpdateAppointmentRequest) *domainRepo.AppointmentInput {
	return &domainRepo.AppointmentInput{
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Modality:      req.Modality,
		Status:        entity.AppointmentStatus(req.Status),
		PreviousNotes: req.PreviousNotes,
		VideoURL:      req.VideoURL,
	}
}

func AttendanceToResponse(result *entity.AttendanceResult) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		Message:     result.Message,
		Attended:    result.Attended,
		Status:      string(result.Status),
		StatusLabel: result.Status.Label(),
	}
}

func displayTime(s string) string {
	if s == "" {
		return ""
	}
	if normalized, err := timeofday.Normalize(s); err == nil {
		return normalized
	}
	return s
}

func displayDate(s string) string {
	if normalized, err := timeofday.NormalizeDate(s); err == nil {
		return normalized
	}
	return s
}
