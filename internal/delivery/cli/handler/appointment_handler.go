package handler

import (
	"context"
	"fmt"

	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/usecase"
	"wellbeing-client/pkg/validator"

	"github.com/spf13/cobra"
)

// UpcomingLimit is how many appointments dashboards show.
const UpcomingLimit = 5

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	printer            *output.Printer
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, printer *output.Printer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		printer:            printer,
	}
}

// List shows the psychologist's agenda, or the patient's own appointments.
func (h *AppointmentHandler) List(cmd *cobra.Command, args []string) error {
	role, err := sessionRole(cmd)
	if err != nil {
		return err
	}
	if role == entity.RolePatient {
		return h.listForPatient(cmd.Context())
	}
	return h.listMine(cmd.Context())
}

func (h *AppointmentHandler) listMine(ctx context.Context) error {
	list, err := h.appointmentUsecase.ListMine(ctx)
	if err != nil {
		return err
	}
	return h.printer.Render(list, func() {
		h.table(list.Appointments, false)
		h.printer.Printf("\n%d appointment(s)\n", list.Total)
	})
}

func (h *AppointmentHandler) listForPatient(ctx context.Context) error {
	list, err := h.appointmentUsecase.ListForPatient(ctx)
	if err != nil {
		return err
	}
	return h.printer.Render(list, func() {
		h.table(list.Appointments, true)
		h.printer.Printf("\n%d appointment(s)\n", list.Total)
	})
}

func (h *AppointmentHandler) table(appointments []dto.AppointmentResponse, forPatient bool) {
	who := "PATIENT"
	if forPatient {
		who = "PSYCHOLOGIST"
	}

	rows := make([][]string, len(appointments))
	for i, a := range appointments {
		name := a.PatientName
		if forPatient {
			name = a.Psychologist
		}
		rows[i] = []string{idString(a.ID), a.Date, timeRange(a.StartTime, a.EndTime), name, a.Modality, a.StatusLabel}
	}
	h.printer.Table([]string{"ID", "DATE", "TIME", who, "MODALITY", "STATUS"}, rows)
}

func (h *AppointmentHandler) Show(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "appointment")
	if err != nil {
		return err
	}

	a, err := h.appointmentUsecase.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	return h.printer.Render(a, func() {
		attended := ""
		if a.Attended != nil {
			attended = yesNo(*a.Attended)
		}
		h.printer.Fields(
			output.Field{Label: "Appointment", Value: idString(a.ID)},
			output.Field{Label: "Patient", Value: a.PatientName},
			output.Field{Label: "Psychologist", Value: a.Psychologist},
			output.Field{Label: "Date", Value: a.Date},
			output.Field{Label: "Time", Value: timeRange(a.StartTime, a.EndTime)},
			output.Field{Label: "Modality", Value: a.Modality},
			output.Field{Label: "Status", Value: a.StatusLabel},
			output.Field{Label: "Video call", Value: a.VideoURL},
			output.Field{Label: "Notes", Value: a.Notes},
			output.Field{Label: "Attended", Value: attended},
		)
	})
}

// Check previews whether a slot is free without saving anything.
func (h *AppointmentHandler) Check(cmd *cobra.Command, args []string) error {
	req := dto.ConflictCheckRequest{
		Date:      flagString(cmd, "date"),
		StartTime: flagString(cmd, "start"),
		EndTime:   flagString(cmd, "end"),
		ExcludeID: int64(flagInt(cmd, "exclude")),
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	result, err := h.appointmentUsecase.Check(cmd.Context(), &req)
	if err != nil {
		return err
	}

	return h.printer.Render(result, func() {
		if result.Available {
			h.printer.Println("Time slot available")
			return
		}
		h.printer.Println("Warning: " + result.Message)
		h.table(result.Conflicts, false)
	})
}

func (h *AppointmentHandler) Create(cmd *cobra.Command, args []string) error {
	req := dto.CreateAppointmentRequest{
		PatientID:     int64(flagInt(cmd, "patient")),
		Date:          flagString(cmd, "date"),
		StartTime:     flagString(cmd, "start"),
		EndTime:       flagString(cmd, "end"),
		Modality:      flagString(cmd, "modality"),
		PreviousNotes: flagString(cmd, "notes"),
		VideoURL:      flagString(cmd, "video-url"),
		Objectives:    flagString(cmd, "objectives"),
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	saved, err := h.appointmentUsecase.Create(cmd.Context(), &req)
	if err != nil {
		return err
	}
	return h.saved(saved)
}

// Update sends only the flags the user set.
func (h *AppointmentHandler) Update(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "appointment")
	if err != nil {
		return err
	}

	req := dto.UpdateAppointmentRequest{
		Date:          flagString(cmd, "date"),
		StartTime:     flagString(cmd, "start"),
		EndTime:       flagString(cmd, "end"),
		Modality:      flagString(cmd, "modality"),
		PreviousNotes: flagString(cmd, "notes"),
		VideoURL:      flagString(cmd, "video-url"),
	}
	if status := flagString(cmd, "status"); status != "" {
		parsed, ok := entity.ParseAppointmentStatus(status)
		if !ok {
			return &ValidationError{Fields: map[string]string{"estado": "estado must be one of: scheduled completed cancelled no-show"}}
		}
		req.Status = string(parsed)
	}
	if req == (dto.UpdateAppointmentRequest{}) {
		return fmt.Errorf("nothing to update, pass at least one flag")
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	saved, err := h.appointmentUsecase.Update(cmd.Context(), id, &req)
	if err != nil {
		return err
	}
	return h.saved(saved)
}

func (h *AppointmentHandler) saved(saved *dto.AppointmentSavedResponse) error {
	return h.printer.Render(saved, func() {
		h.printer.Printf("%s (appointment %d)\n", saved.Message, saved.ID)
	})
}

func (h *AppointmentHandler) Cancel(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "appointment")
	if err != nil {
		return err
	}
	if err := confirm(cmd, fmt.Sprintf("Cancel appointment %d?", id)); err != nil {
		return err
	}

	if err := h.appointmentUsecase.Cancel(cmd.Context(), id); err != nil {
		return err
	}
	h.printer.Printf("Appointment %d cancelled\n", id)
	return nil
}

func (h *AppointmentHandler) Attend(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "appointment")
	if err != nil {
		return err
	}

	result, err := h.appointmentUsecase.RecordAttendance(cmd.Context(), id, !flagBool(cmd, "no-show"))
	if err != nil {
		return err
	}
	return h.printer.Render(result, func() {
		h.printer.Printf("%s: %s\n", result.Message, result.StatusLabel)
	})
}

func (h *AppointmentHandler) upcoming(ctx context.Context, forPatient bool) ([]dto.AppointmentResponse, error) {
	if forPatient {
		return h.appointmentUsecase.UpcomingForPatient(ctx, UpcomingLimit)
	}
	return h.appointmentUsecase.Upcoming(ctx, UpcomingLimit)
}
