package dto

// Request DTOs

type CreateEmotionalRecordRequest struct {
	MoodLevel int      `json:"nivel_animo" validate:"required,gte=1,lte=10"`
	Intensity *float64 `json:"intensidad_emocion" validate:"omitempty,gte=0,lte=1"`
	Notes     string   `json:"notas" validate:"omitempty,max=2000"`
	Context   string   `json:"contexto" validate:"omitempty,max=200"`
	Location  string   `json:"ubicacion" validate:"omitempty,max=200"`
	Weather   string   `json:"clima" validate:"omitempty,max=100"`
}

// Response DTOs

type EmotionalRecordResponse struct {
	ID           int64    `json:"id"`
	RecordedAt   string   `json:"recorded_at"`
	MoodLevel    int      `json:"mood_level"`
	Emotion      string   `json:"emotion,omitempty"`
	EmotionLabel string   `json:"emotion_label"`
	EmotionEmoji string   `json:"emotion_emoji"`
	Intensity    *float64 `json:"intensity,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Context      string   `json:"context,omitempty"`
	RiskLevel    string   `json:"risk_level,omitempty"`
	HighRisk     bool     `json:"high_risk"`
}

type EmotionCountResponse struct {
	Emotion string `json:"emotion"`
	Label   string `json:"label"`
	Emoji   string `json:"emoji"`
	Count   int    `json:"count"`
}

type MoodSummaryResponse struct {
	Records     int                    `json:"records"`
	AverageMood float64                `json:"average_mood"`
	Description string                 `json:"description"`
	Frequent    []EmotionCountResponse `json:"frequent_emotions"`
	HighRisk    int                    `json:"high_risk"`
}

type EmotionalHistoryResponse struct {
	Records []EmotionalRecordResponse `json:"records"`
	Summary MoodSummaryResponse       `json:"summary"`
}

type RecordCreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type AnalyticsResponse struct {
	Days         int     `json:"days"`
	TotalRecords int     `json:"total_records"`
	AverageMood  float64 `json:"average_mood"`
	Description  string  `json:"description"`
	Trend        string  `json:"trend"`
	Emotion      string  `json:"emotion,omitempty"`
	EmotionLabel string  `json:"emotion_label,omitempty"`
}

type PatientOverviewResponse struct {
	TotalRecords     int     `json:"total_records"`
	AverageMood      float64 `json:"average_mood"`
	Description      string  `json:"description"`
	RecordsLastWeek  int     `json:"records_last_week"`
	Psychologist     string  `json:"psychologist,omitempty"`
	PsychologistMail string  `json:"psychologist_email,omitempty"`
	Message          string  `json:"message,omitempty"`
}
