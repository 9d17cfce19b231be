package converter

import (
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/service"
)

func EmotionalRecordToResponse(record *entity.EmotionalRecord) *dto.EmotionalRecordResponse {
	if record == nil {
		return nil
	}

	info := service.LookupEmotion(record.PrimaryEmotion)
	return &dto.EmotionalRecordResponse{
		ID:           record.ID,
		RecordedAt:   record.RecordedAt,
		MoodLevel:    record.MoodLevel,
		Emotion:      record.PrimaryEmotion,
		EmotionLabel: info.Label,
		EmotionEmoji: info.Emoji,
		Intensity:    record.Intensity,
		Notes:        record.Notes,
		Context:      record.Context,
		RiskLevel:    record.RiskLevel,
		HighRisk:     record.IsHighRisk(),
	}
}

func EmotionalRecordsToResponses(records []entity.EmotionalRecord) []dto.EmotionalRecordResponse {
	responses := make([]dto.EmotionalRecordResponse, len(records))
	for i := range records {
		responses[i] = *EmotionalRecordToResponse(&records[i])
	}
	return responses
}

func MoodSummaryToResponse(summary service.MoodSummary) dto.MoodSummaryResponse {
	frequent := make([]dto.EmotionCountResponse, len(summary.Frequent))
	for i, f := range summary.Frequent {
		frequent[i] = dto.EmotionCountResponse{
			Emotion: f.Emotion,
			Label:   f.Info.Label,
			Emoji:   f.Info.Emoji,
			Count:   f.Count,
		}
	}

	return dto.MoodSummaryResponse{
		Records:     summary.Records,
		AverageMood: summary.AverageMood,
		Description: summary.Description,
		Frequent:    frequent,
		HighRisk:    summary.HighRisk,
	}
}

func CreateEmotionalRecordRequestToInput(req *dto.CreateEmotionalRecordRequest) *domainRepo.EmotionalRecordInput {
	return &domainRepo.EmotionalRecordInput{
		MoodLevel: req.MoodLevel,
		Intensity: req.Intensity,
		Notes:     req.Notes,
		Context:   req.Context,
		Location:  req.Location,
		Weather:   req.Weather,
	}
}

func AnalyticsToResponse(days int, analytics *entity.EmotionalAnalytics) *dto.AnalyticsResponse {
	response := &dto.AnalyticsResponse{
		Days:         days,
		TotalRecords: analytics.TotalRecords,
		AverageMood:  analytics.AverageMood,
		Description:  "No data",
		Trend:        trendLabel(analytics.Trend),
	}
	if analytics.TotalRecords > 0 {
		response.Description = service.MoodDescription(analytics.AverageMood)
	}
	if analytics.PrimaryEmotion != nil && *analytics.PrimaryEmotion != "" {
		response.Emotion = *analytics.PrimaryEmotion
		response.EmotionLabel = service.LookupEmotion(*analytics.PrimaryEmotion).Label
	}
	return response
}

func trendLabel(trend string) string {
	switch trend {
	case entity.TrendImproving:
		return "improving"
	case entity.TrendWorsening:
		return "worsening"
	case entity.TrendStable, "":
		return "stable"
	}
	return trend
}
