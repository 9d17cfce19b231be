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

type PsychologistHandler struct {
	psychologistUsecase usecase.PsychologistUsecase
	validator           *validator.CustomValidator
	printer             *output.Printer
}

func NewPsychologistHandler(psychologistUsecase usecase.PsychologistUsecase, validator *validator.CustomValidator, printer *output.Printer) *PsychologistHandler {
	return &PsychologistHandler{
		psychologistUsecase: psychologistUsecase,
		validator:           validator,
		printer:             printer,
	}
}

func (h *PsychologistHandler) List(cmd *cobra.Command, args []string) error {
	return h.list(cmd.Context())
}

func (h *PsychologistHandler) list(ctx context.Context) error {
	list, err := h.psychologistUsecase.List(ctx)
	if err != nil {
		return err
	}

	return h.printer.Render(list, func() {
		rows := make([][]string, len(list.Psychologists))
		for i, p := range list.Psychologists {
			status := "inactive"
			if p.Active {
				status = "active"
			}
			rows[i] = []string{idString(p.ID), p.FullName, p.Email, p.Specialty, itoa(p.TotalPatients), status}
		}
		h.printer.Table([]string{"ID", "NAME", "EMAIL", "SPECIALTY", "PATIENTS", "STATUS"}, rows)
		h.printer.Printf("\n%d psychologist(s), %d active\n", list.Total, list.Active)
	})
}

func (h *PsychologistHandler) Show(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "psychologist")
	if err != nil {
		return err
	}
	return h.show(cmd.Context(), id)
}

func (h *PsychologistHandler) show(ctx context.Context, id int64) error {
	p, err := h.psychologistUsecase.Get(ctx, id)
	if err != nil {
		return err
	}

	return h.printer.Render(p, func() {
		h.printer.Fields(
			output.Field{Label: "Psychologist", Value: p.FullName},
			output.Field{Label: "Email", Value: p.Email},
			output.Field{Label: "Phone", Value: p.Phone},
			output.Field{Label: "ID number", Value: p.IDNumber},
			output.Field{Label: "Specialty", Value: p.Specialty},
			output.Field{Label: "Active", Value: yesNo(p.Active)},
			output.Field{Label: "Registered", Value: p.RegisteredAt},
			output.Field{Label: "Last access", Value: p.LastAccess},
			output.Field{Label: "Patients", Value: itoa(p.TotalPatients)},
			output.Field{Label: "Completed sessions", Value: itoa(p.CompletedSessions)},
			output.Field{Label: "Sessions this month", Value: itoa(p.SessionsThisMonth)},
		)
	})
}

func (h *PsychologistHandler) Register(cmd *cobra.Command, args []string) error {
	req := dto.RegisterPsychologistRequest{
		FirstName:           flagString(cmd, "first-name"),
		MiddleName:          flagString(cmd, "middle-name"),
		LastName:            flagString(cmd, "last-name"),
		SecondLastName:      flagString(cmd, "second-last-name"),
		PersonalEmail:       flagString(cmd, "email"),
		Phone:               flagString(cmd, "phone"),
		Address:             flagString(cmd, "address"),
		BirthDate:           flagString(cmd, "birth-date"),
		LicenseNumber:       flagString(cmd, "license"),
		ProfessionalTitle:   flagString(cmd, "title"),
		Specialty:           flagString(cmd, "specialty"),
		YearsOfExperience:   flagInt(cmd, "experience"),
		TrainingInstitution: flagString(cmd, "institution"),
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	result, err := h.psychologistUsecase.Register(cmd.Context(), &req)
	if err != nil {
		return err
	}
	return renderRegistration(h.printer, result)
}

func (h *PsychologistHandler) Toggle(cmd *cobra.Command, args []string) error {
	id, err := parseID(args, "psychologist")
	if err != nil {
		return err
	}
	if err := confirm(cmd, fmt.Sprintf("Change the status of psychologist %d?", id)); err != nil {
		return err
	}

	change, err := h.psychologistUsecase.ToggleStatus(cmd.Context(), id)
	if err != nil {
		return err
	}
	return h.printer.Render(change, func() {
		state := "deactivated"
		if change.Active {
			state = "activated"
		}
		h.printer.Printf("%s (psychologist %d %s)\n", change.Message, id, state)
	})
}
