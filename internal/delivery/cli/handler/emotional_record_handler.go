package handler

import (
	"context"
	"fmt"
	"strings"

	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/service"
	"wellbeing-client/internal/usecase"
	"wellbeing-client/pkg/validator"

	"github.com/spf13/cobra"
)

type EmotionalRecordHandler struct {
	recordUsecase usecase.EmotionalRecordUsecase
	validator     *validator.CustomValidator
	printer       *output.Printer
}

func NewEmotionalRecordHandler(recordUsecase usecase.EmotionalRecordUsecase, validator *validator.CustomValidator, printer *output.Printer) *EmotionalRecordHandler {
	return &EmotionalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
		printer:       printer,
	}
}

func (h *EmotionalRecordHandler) Add(cmd *cobra.Command, args []string) error {
	req := dto.CreateEmotionalRecordRequest{
		MoodLevel: flagInt(cmd, "mood"),
		Notes:     flagString(cmd, "notes"),
		Context:   flagString(cmd, "context"),
		Location:  flagString(cmd, "location"),
		Weather:   flagString(cmd, "weather"),
	}
	if cmd.Flags().Changed("intensity") {
		intensity, _ := cmd.Flags().GetFloat64("intensity")
		req.Intensity = &intensity
	}
	if err := validate(h.validator, &req); err != nil {
		return err
	}

	created, err := h.recordUsecase.Record(cmd.Context(), &req)
	if err != nil {
		return err
	}
	return h.printer.Render(created, func() {
		h.printer.Printf("%s (record %d)\n", created.Message, created.ID)
		h.printer.Printf("Mood %d/10: %s\n", req.MoodLevel, service.MoodDescription(float64(req.MoodLevel)))
	})
}

func (h *EmotionalRecordHandler) History(cmd *cobra.Command, args []string) error {
	return h.history(cmd.Context(), flagInt(cmd, "limit"))
}

func (h *EmotionalRecordHandler) history(ctx context.Context, limit int) error {
	history, err := h.recordUsecase.History(ctx, limit)
	if err != nil {
		return err
	}
	return h.printer.Render(history, func() {
		renderRecords(h.printer, history.Records)
		h.printer.Section("Summary")
		renderSummary(h.printer, history.Summary)
	})
}

func (h *EmotionalRecordHandler) Analytics(cmd *cobra.Command, args []string) error {
	analytics, err := h.recordUsecase.Analytics(cmd.Context(), flagInt(cmd, "days"))
	if err != nil {
		return err
	}
	return h.printer.Render(analytics, func() {
		h.renderAnalytics(analytics)
	})
}

func (h *EmotionalRecordHandler) renderAnalytics(a *dto.AnalyticsResponse) {
	h.printer.Fields(
		output.Field{Label: "Period", Value: fmt.Sprintf("last %d days", a.Days)},
		output.Field{Label: "Records", Value: itoa(a.TotalRecords)},
		output.Field{Label: "Average mood", Value: fmt.Sprintf("%s (%s)", mood(a.AverageMood), a.Description)},
		output.Field{Label: "Trend", Value: a.Trend},
		output.Field{Label: "Main emotion", Value: a.EmotionLabel},
	)
}

func (h *EmotionalRecordHandler) Overview(cmd *cobra.Command, args []string) error {
	overview, err := h.recordUsecase.Overview(cmd.Context())
	if err != nil {
		return err
	}
	return h.printer.Render(overview, func() {
		h.renderOverview(overview)
	})
}

func (h *EmotionalRecordHandler) renderOverview(o *dto.PatientOverviewResponse) {
	psychologist := o.Message
	if o.Psychologist != "" {
		psychologist = o.Psychologist
		if o.PsychologistMail != "" {
			psychologist += " <" + o.PsychologistMail + ">"
		}
	}
	h.printer.Fields(
		output.Field{Label: "Records", Value: itoa(o.TotalRecords)},
		output.Field{Label: "This week", Value: itoa(o.RecordsLastWeek)},
		output.Field{Label: "Average mood", Value: fmt.Sprintf("%s (%s)", mood(o.AverageMood), o.Description)},
		output.Field{Label: "Psychologist", Value: psychologist},
	)
}

// Emotions lists the emotions the backend may detect.
func (h *EmotionalRecordHandler) Emotions(cmd *cobra.Command, args []string) error {
	emotions := service.Emotions()
	return h.printer.Render(emotions, func() {
		rows := make([][]string, len(emotions))
		for i, e := range emotions {
			rows[i] = []string{e.Emoji, e.Key, e.Label}
		}
		h.printer.Table([]string{"", "KEY", "LABEL"}, rows)
	})
}

func renderRecords(p *output.Printer, records []dto.EmotionalRecordResponse) {
	rows := make([][]string, len(records))
	for i, r := range records {
		risk := r.RiskLevel
		if r.HighRisk {
			risk = "HIGH"
		}
		rows[i] = []string{idString(r.ID), r.RecordedAt, itoa(r.MoodLevel), strings.TrimSpace(r.EmotionEmoji + " " + r.EmotionLabel), risk, truncate(r.Notes, 40)}
	}
	p.Table([]string{"ID", "WHEN", "MOOD", "EMOTION", "RISK", "NOTES"}, rows)
}

func renderSummary(p *output.Printer, s dto.MoodSummaryResponse) {
	frequent := make([]string, len(s.Frequent))
	for i, f := range s.Frequent {
		frequent[i] = fmt.Sprintf("%s %s (%d)", f.Emoji, f.Label, f.Count)
	}
	p.Fields(
		output.Field{Label: "Records", Value: itoa(s.Records)},
		output.Field{Label: "Average mood", Value: fmt.Sprintf("%s (%s)", mood(s.AverageMood), s.Description)},
		output.Field{Label: "Frequent emotions", Value: strings.Join(frequent, ", ")},
		output.Field{Label: "High-risk records", Value: itoa(s.HighRisk)},
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
