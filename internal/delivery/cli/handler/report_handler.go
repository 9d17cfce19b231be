package handler

import (
	"context"
	"fmt"

	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/usecase"

	"github.com/spf13/cobra"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	printer       *output.Printer
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, printer *output.Printer) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		printer:       printer,
	}
}

func (h *ReportHandler) Statistics(cmd *cobra.Command, args []string) error {
	stats, err := h.reportUsecase.Statistics(cmd.Context())
	if err != nil {
		return err
	}
	return h.printer.Render(stats, func() {
		h.renderStatistics(stats)
	})
}

func (h *ReportHandler) renderStatistics(s *dto.StatisticsResponse) {
	h.printer.Fields(
		output.Field{Label: "Active patients", Value: itoa(s.ActivePatients)},
		output.Field{Label: "Active psychologists", Value: itoa(s.ActivePsychologists)},
		output.Field{Label: "Emotional records", Value: itoa(s.TotalEmotionalRecords)},
		output.Field{Label: "Records last month", Value: itoa(s.RecordsLastMonth)},
		output.Field{Label: "Scheduled appointments", Value: itoa(s.ScheduledAppointments)},
	)
}

func (h *ReportHandler) General(cmd *cobra.Command, args []string) error {
	return h.general(cmd.Context(), flagInt(cmd, "days"))
}

func (h *ReportHandler) general(ctx context.Context, days int) error {
	report, err := h.reportUsecase.General(ctx, days)
	if err != nil {
		return err
	}

	return h.printer.Render(report, func() {
		h.printer.Printf("%d emotional records in the last %d days\n", report.TotalRecords, report.PeriodDays)

		h.printer.Section("Emotions")
		h.printer.Table([]string{"EMOTION", "RECORDS"}, countRows(report.Emotions))

		h.printer.Section("Risk levels")
		h.printer.Table([]string{"RISK", "RECORDS"}, countRows(report.Risks))

		h.printer.Section("Records per day")
		h.printer.Table([]string{"DATE", "RECORDS"}, countRows(report.RecordsPerDay))
	})
}

func (h *ReportHandler) Psychologists(cmd *cobra.Command, args []string) error {
	rows, err := h.reportUsecase.ByPsychologist(cmd.Context())
	if err != nil {
		return err
	}

	return h.printer.Render(rows, func() {
		table := make([][]string, len(rows))
		for i, r := range rows {
			table[i] = []string{idString(r.ID), r.Name, r.Email, itoa(r.ActivePatients), itoa(r.SessionsThisMonth), itoa(r.CompletedSessions), r.LastAccess}
		}
		h.printer.Table([]string{"ID", "NAME", "EMAIL", "PATIENTS", "THIS MONTH", "COMPLETED", "LAST ACCESS"}, table)
	})
}

func (h *ReportHandler) Users(cmd *cobra.Command, args []string) error {
	summary, err := h.reportUsecase.UsersSummary(cmd.Context())
	if err != nil {
		return err
	}
	return h.printer.Render(summary, func() {
		h.renderUsers(summary)
	})
}

func (h *ReportHandler) renderUsers(s *dto.UsersSummaryResponse) {
	h.printer.Table([]string{"ROLE", "USERS"}, countRows(s.ByRole))
	h.printer.Printf("\n%d users: %d active, %d inactive\n", s.Total, s.Active, s.Inactive)
}

func countRows(counts []dto.CountResponse) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		rows[i] = []string{label, fmt.Sprint(c.Count)}
	}
	return rows
}
