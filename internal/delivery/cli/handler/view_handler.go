package handler

import (
	"context"
	"fmt"

	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/delivery/view"

	"github.com/spf13/cobra"
)

// DashboardAnalyticsDays is the analytics window on the patient dashboard.
const DashboardAnalyticsDays = 7

// ViewHandler renders the role screens by composing the resource handlers.
type ViewHandler struct {
	appointments  *AppointmentHandler
	patients      *PatientHandler
	psychologists *PsychologistHandler
	records       *EmotionalRecordHandler
	reports       *ReportHandler
	printer       *output.Printer
	forms         map[string]*cobra.Command
}

var _ view.Handler = (*ViewHandler)(nil)

func NewViewHandler(
	appointments *AppointmentHandler,
	patients *PatientHandler,
	psychologists *PsychologistHandler,
	records *EmotionalRecordHandler,
	reports *ReportHandler,
	printer *output.Printer,
) *ViewHandler {
	return &ViewHandler{
		appointments:  appointments,
		patients:      patients,
		psychologists: psychologists,
		records:       records,
		reports:       reports,
		printer:       printer,
		forms:         map[string]*cobra.Command{},
	}
}

// RegisterForm links a form screen to the command that submits it.
func (h *ViewHandler) RegisterForm(route string, cmd *cobra.Command) {
	h.forms[route] = cmd
}

// Open resolves `open <screen> [arg]` for the session role and renders it.
func (h *ViewHandler) Open(cmd *cobra.Command, args []string) error {
	role, err := sessionRole(cmd)
	if err != nil {
		return err
	}

	route, err := view.Resolve(role, args[0], args[1:])
	if err != nil {
		return err
	}
	return view.Dispatch(cmd.Context(), role, route, h)
}

func (h *ViewHandler) Dashboard(cmd *cobra.Command, args []string) error {
	role, err := sessionRole(cmd)
	if err != nil {
		return err
	}

	route, err := view.Home(role)
	if err != nil {
		return err
	}
	return view.Dispatch(cmd.Context(), role, route, h)
}

// Menu lists the screens available to the session role.
func (h *ViewHandler) Menu(cmd *cobra.Command, args []string) error {
	role, err := sessionRole(cmd)
	if err != nil {
		return err
	}

	items := view.ForRole(role)
	return h.printer.Render(items, func() {
		rows := make([][]string, len(items))
		for i, item := range items {
			rows[i] = []string{item.Title, "wellbeing open " + item.Name + " " + item.Args}
		}
		h.printer.Table([]string{"SCREEN", "COMMAND"}, rows)
	})
}

func (h *ViewHandler) form(route string) error {
	cmd, ok := h.forms[route]
	if !ok {
		return fmt.Errorf("%w: %s", view.ErrUnknownRoute, route)
	}

	data := struct {
		Command string `json:"command"`
		Flags   string `json:"flags"`
	}{cmd.CommandPath(), cmd.LocalFlags().FlagUsages()}

	return h.printer.Render(data, func() {
		h.printer.Println(cmd.Short)
		h.printer.Printf("\nSubmit with:\n  %s [flags]\n\nFields:\n%s", data.Command, data.Flags)
	})
}

func (h *ViewHandler) AdminDashboard(ctx context.Context) error {
	stats, err := h.reports.reportUsecase.Statistics(ctx)
	if err != nil {
		return err
	}
	users, err := h.reports.reportUsecase.UsersSummary(ctx)
	if err != nil {
		return err
	}

	data := struct {
		Statistics *dto.StatisticsResponse   `json:"statistics"`
		Users      *dto.UsersSummaryResponse `json:"users"`
	}{stats, users}

	return h.printer.Render(data, func() {
		h.printer.Section("Platform")
		h.reports.renderStatistics(stats)
		h.printer.Section("Users")
		h.reports.renderUsers(users)
	})
}

func (h *ViewHandler) Psychologists(ctx context.Context) error {
	return h.psychologists.list(ctx)
}

func (h *ViewHandler) PsychologistDetail(ctx context.Context, id int64) error {
	return h.psychologists.show(ctx, id)
}

func (h *ViewHandler) RegisterPsychologist(ctx context.Context) error {
	return h.form("register-psychologist")
}

func (h *ViewHandler) Reports(ctx context.Context, days int) error {
	return h.reports.general(ctx, days)
}

func (h *ViewHandler) PsychologistDashboard(ctx context.Context) error {
	patients, err := h.patients.patientUsecase.ListMine(ctx, "")
	if err != nil {
		return err
	}
	upcoming, err := h.appointments.upcoming(ctx, false)
	if err != nil {
		return err
	}

	alerts := 0
	for _, p := range patients.Patients {
		if p.ActiveAlerts > 0 {
			alerts++
		}
	}

	data := struct {
		Patients          int                       `json:"patients"`
		PatientsWithAlert int                       `json:"patients_with_alerts"`
		Upcoming          []dto.AppointmentResponse `json:"upcoming"`
	}{patients.Total, alerts, upcoming}

	return h.printer.Render(data, func() {
		h.printer.Fields(
			output.Field{Label: "Patients", Value: itoa(data.Patients)},
			output.Field{Label: "Patients with alerts", Value: itoa(data.PatientsWithAlert)},
		)
		h.printer.Section("Next appointments")
		h.appointments.table(upcoming, false)
	})
}

func (h *ViewHandler) Patients(ctx context.Context) error {
	return h.patients.list(ctx, "")
}

func (h *ViewHandler) PatientDetail(ctx context.Context, id int64) error {
	return h.patients.show(ctx, id)
}

func (h *ViewHandler) RegisterPatient(ctx context.Context) error {
	return h.form("register-patient")
}

func (h *ViewHandler) Appointments(ctx context.Context) error {
	return h.appointments.listMine(ctx)
}

func (h *ViewHandler) PatientDashboard(ctx context.Context) error {
	overview, err := h.records.recordUsecase.Overview(ctx)
	if err != nil {
		return err
	}
	analytics, err := h.records.recordUsecase.Analytics(ctx, DashboardAnalyticsDays)
	if err != nil {
		return err
	}
	upcoming, err := h.appointments.upcoming(ctx, true)
	if err != nil {
		return err
	}

	data := struct {
		Overview  *dto.PatientOverviewResponse `json:"overview"`
		Analytics *dto.AnalyticsResponse       `json:"analytics"`
		Upcoming  []dto.AppointmentResponse    `json:"upcoming"`
	}{overview, analytics, upcoming}

	return h.printer.Render(data, func() {
		h.records.renderOverview(overview)
		h.printer.Section("This week")
		h.records.renderAnalytics(analytics)
		h.printer.Section("Next appointments")
		h.appointments.table(upcoming, true)
	})
}

func (h *ViewHandler) RecordEmotion(ctx context.Context) error {
	return h.form("record")
}

func (h *ViewHandler) History(ctx context.Context) error {
	return h.records.history(ctx, 0)
}

func (h *ViewHandler) MyAppointments(ctx context.Context) error {
	return h.appointments.listForPatient(ctx)
}
