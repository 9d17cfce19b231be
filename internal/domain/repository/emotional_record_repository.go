package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

// EmotionalRecordInput is a new mood check-in.
type EmotionalRecordInput struct {
	MoodLevel int      `json:"nivel_animo"`
	Intensity *float64 `json:"intensidad_emocion,omitempty"`
	Notes     string   `json:"notas,omitempty"`
	Context   string   `json:"contexto,omitempty"`
	Location  string   `json:"ubicacion,omitempty"`
	Weather   string   `json:"clima,omitempty"`
}

// RecordCreated is returned by the backend after saving a check-in.
type RecordCreated struct {
	Message string `json:"mensaje"`
	ID      int64  `json:"id_registro"`
}

type EmotionalRecordRepository interface {
	Create(ctx context.Context, input *EmotionalRecordInput) (*RecordCreated, error)
	FindMine(ctx context.Context, limit int) ([]entity.EmotionalRecord, error)
	Analytics(ctx context.Context, days int) (*entity.EmotionalAnalytics, error)
	Statistics(ctx context.Context) (*entity.PatientStatistics, error)
	MyPsychologist(ctx context.Context) (*entity.CareAssignment, error)
}
