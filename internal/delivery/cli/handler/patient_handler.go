package handler

import (
	"context"
	"fmt"

	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/usecase"
	"wellbeing-client/pkg/validator"

	"github.com/spf13/cobra"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	printer        *output.Printer
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, printer *output.Printer) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		printer:        printer,
	}
}

func (h *PatientHandler) List(cmd *cobra.Command, args []string) error {
	return h.list(cmd.Context(), flagString(cmd, "search"))
}

func (h *PatientHandler) list(ctx context.Context, filter string) error {
	list, err := h.patientUsecase.ListMine(ctx, filter)
	if err != nil {
		return err
	}

	return h.printer.Render(list, func() {
		rows := make([][]string, len(list.Patients))
		for i, p := range list.Patients {
			rows[i] = []string{idString(p.ID), p.FullName, p.Email, p.Phone, itoa(p.RecordsLastWeek), mood(p.AverageMood7Days), itoa(p.ActiveAlerts)}
		}
		h.printer.Table([]string{"ID", "NAME", "EMAIL", "PHONE", "RECORDS (7D)", "AVG MOOD", "ALERTS"}, rows)
		h.printer.Printf("\n%d patient(s)\n", list.Total)
	})
}

func (h *PatientHandler) Show(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "patient")
	if err != nil {
		return err
	}
	return h.show(cmd.Context(), id)
}

// show renders the patient detail screen.
func (h *PatientHandler) show(ctx context.Context, id int64) error {
	detail, err := h.patientUsecase.Get(ctx, id)
	if err != nil {
		return err
	}

	return h.printer.Render(detail, func() {
		p := detail.Patient
		h.printer.Fields(
			output.Field{Label: "Patient", Value: p.FullName},
			output.Field{Label: "Email", Value: p.Email},
			output.Field{Label: "Phone", Value: p.Phone},
			output.Field{Label: "Assigned since", Value: p.AssignedAt},
			output.Field{Label: "Active alerts", Value: itoa(p.ActiveAlerts)},
		)

		h.printer.Section("Mood summary")
		renderSummary(h.printer, detail.Summary)

		h.printer.Section("Recent emotional records")
		renderRecords(h.printer, detail.Records)

		h.printer.Section("Upcoming appointments")
		rows := make([][]string, len(detail.Upcoming))
		for i, a := range detail.Upcoming {
			rows[i] = []string{idString(a.ID), a.Date, timeRange(a.StartTime, a.EndTime), a.Modality}
		}
		h.printer.Table([]string{"ID", "DATE", "TIME", "MODALITY"}, rows)
	})
}

func (h *PatientHandler) Register(cmd *cobra.Command, args []string) error {
	req := dto.RegisterPatientRequest{
		FirstName:             flagString(cmd, "first-name"),
		MiddleName:            flagString(cmd, "middle-name"),
		LastName:              flagString(cmd, "last-name"),
		SecondLastName:        flagString(cmd, "second-last-name"),
		IDNumber:              flagString(cmd, "id-number"),
		Email:                 flagString(cmd, "email"),
		Phone:                 flagString(cmd, "phone"),
		Address:               flagString(cmd, "address"),
		BirthDate:             flagString(cmd, "birth-date"),
		Gender:                flagString(cmd, "gender"),
		EmergencyName:         flagString(cmd, "emergency-name"),
		EmergencyPhone:        flagString(cmd, "emergency-phone"),
		EmergencyRelationship: flagString(cmd, "emergency-relationship"),
		Allergies:             flagString(cmd, "allergies"),
		CurrentMedication:     flagString(cmd, "medication"),
		MedicalConditions:     flagString(cmd, "conditions"),
		ConsultationReason:    flagString(cmd, "reason"),
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	result, err := h.patientUsecase.Register(cmd.Context(), &req)
	if err != nil {
		return err
	}
	return renderRegistration(h.printer, result)
}

func (h *PatientHandler) Update(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "patient")
	if err != nil {
		return err
	}

	req := dto.UpdatePatientRequest{
		FirstName: flagString(cmd, "first-name"),
		LastName:  flagString(cmd, "last-name"),
		IDNumber:  flagString(cmd, "id-number"),
		Email:     flagString(cmd, "email"),
		Phone:     flagString(cmd, "phone"),
		Address:   flagString(cmd, "address"),
	}
	if req == (dto.UpdatePatientRequest{}) {
		return fmt.Errorf("nothing to update, pass at least one flag")
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	if err := h.patientUsecase.Update(cmd.Context(), id, &req); err != nil {
		return err
	}
	h.printer.Printf("Patient %d updated\n", id)
	return nil
}

func (h *PatientHandler) Delete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "patient")
	if err != nil {
		return err
	}
	if err := confirm(cmd, fmt.Sprintf("Delete patient %d? Their records stay on the server.", id)); err != nil {
		return err
	}

	if err := h.patientUsecase.Delete(cmd.Context(), id); err != nil {
		return err
	}
	h.printer.Printf("Patient %d deleted\n", id)
	return nil
}

func (h *PatientHandler) Records(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "patient")
	if err != nil {
		return err
	}

	history, err := h.patientUsecase.EmotionalRecords(cmd.Context(), id, flagInt(cmd, "limit"))
	if err != nil {
		return err
	}
	return h.printer.Render(history, func() {
		renderRecords(h.printer, history.Records)
		h.printer.Section("Summary")
		renderSummary(h.printer, history.Summary)
	})
}

func renderRegistration(p *output.Printer, result *dto.RegistrationResponse) error {
	return p.Render(result, func() {
		p.Println(result.Message)
		p.Fields(
			output.Field{Label: "User", Value: fmt.Sprintf("%s (id %d)", result.FullName, result.UserID)},
			output.Field{Label: "Login email", Value: result.Email},
			output.Field{Label: "Temporary password", Value: result.TemporaryPassword},
			output.Field{Label: "Credentials emailed", Value: yesNo(result.EmailSent)},
		)
		if result.Instructions != "" {
			p.Println()
			p.Println(result.Instructions)
		}
	})
}
