package converter

import (
	"sort"

	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/service"
)

func StatisticsToResponse(stats *entity.Statistics) *dto.StatisticsResponse {
	return &dto.StatisticsResponse{
		ActivePatients:        stats.ActivePatients,
		ActivePsychologists:   stats.ActivePsychologists,
		TotalEmotionalRecords: stats.TotalEmotionalRecords,
		RecordsLastMonth:      stats.RecordsLastMonth,
		ScheduledAppointments: stats.ScheduledAppointments,
		QueriedAt:             stats.QueriedAt,
	}
}

func GeneralReportToResponse(report *entity.GeneralReport) *dto.GeneralReportResponse {
	emotions := countsToResponses(report.EmotionDistribution, func(key string) string {
		return service.LookupEmotion(key).Label
	})
	risks := countsToResponses(report.RiskDistribution, riskLabel)

	perDay := make([]dto.CountResponse, len(report.RecordsPerDay))
	for i, d := range report.RecordsPerDay {
		perDay[i] = dto.CountResponse{Key: d.Date, Label: displayDate(d.Date), Count: d.Total}
	}

	return &dto.GeneralReportResponse{
		PeriodDays:    report.PeriodDays,
		TotalRecords:  report.TotalRecords,
		Emotions:      emotions,
		Risks:         risks,
		RecordsPerDay: perDay,
	}
}

func PsychologistActivityToResponses(rows []entity.PsychologistActivity) []dto.PsychologistActivityResponse {
	responses := make([]dto.PsychologistActivityResponse, len(rows))
	for i, r := range rows {
		responses[i] = dto.PsychologistActivityResponse{
			ID:                r.ID,
			Name:              r.Name,
			Email:             r.Email,
			ActivePatients:    r.ActivePatients,
			SessionsThisMonth: r.SessionsThisMonth,
			CompletedSessions: r.CompletedSessions,
			LastAccess:        r.LastAccess,
		}
	}
	return responses
}

func UsersSummaryToResponse(summary *entity.UsersSummary) *dto.UsersSummaryResponse {
	return &dto.UsersSummaryResponse{
		ByRole: countsToResponses(summary.ByRole, func(key string) string {
			return entity.Role(key).Label()
		}),
		Active:   summary.ByStatus.Active,
		Inactive: summary.ByStatus.Inactive,
		Total:    summary.Total,
	}
}

// countsToResponses orders a distribution by count, then key, so output is stable.
func countsToResponses(counts map[string]int, label func(string) string) []dto.CountResponse {
	responses := make([]dto.CountResponse, 0, len(counts))
	for key, count := range counts {
		responses = append(responses, dto.CountResponse{Key: key, Label: label(key), Count: count})
	}
	sort.Slice(responses, func(i, j int) bool {
		if responses[i].Count != responses[j].Count {
			return responses[i].Count > responses[j].Count
		}
		return responses[i].Key < responses[j].Key
	})
	return responses
}

func riskLabel(level string) string {
	switch level {
	case entity.RiskLow:
		return "low"
	case entity.RiskMedium:
		return "medium"
	case entity.RiskHigh:
		return "high"
	}
	return level
}
