package repository

import (
	"context"

	"wellbeing-client/internal/domain/entity"
)

type ReportRepository interface {
	Statistics(ctx context.Context) (*entity.Statistics, error)
	General(ctx context.Context, days int) (*entity.GeneralReport, error)
	ByPsychologist(ctx context.Context) ([]entity.PsychologistActivity, error)
	UsersSummary(ctx context.Context) (*entity.UsersSummary, error)
}
