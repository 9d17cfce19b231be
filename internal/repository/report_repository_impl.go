package repository

import (
	"context"
	"net/url"
	"strconv"

	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
)

type reportRepository struct {
	client *api.Client
}

func NewReportRepository(client *api.Client) domainRepo.ReportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) Statistics(ctx context.Context) (*entity.Statistics, error) {
	var stats entity.Statistics
	if err := r.client.Get(ctx, "/admin/estadisticas", nil, &stats, "Error loading statistics"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) General(ctx context.Context, days int) (*entity.GeneralReport, error) {
	query := url.Values{"dias": {strconv.Itoa(days)}}

	var report entity.GeneralReport
	if err := r.client.Get(ctx, "/admin/reportes/general", query, &report, "Error loading report"); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ByPsychologist(ctx context.Context) ([]entity.PsychologistActivity, error) {
	var report struct {
		Rows  []entity.PsychologistActivity `json:"reporte"`
		Total int                           `json:"total_psicologos"`
	}
	if err := r.client.Get(ctx, "/admin/reportes/psicologos", nil, &report, "Error loading report"); err != nil {
		return nil, err
	}
	return report.Rows, nil
}

func (r *reportRepository) UsersSummary(ctx context.Context) (*entity.UsersSummary, error) {
	var summary entity.UsersSummary
	if err := r.client.Get(ctx, "/admin/usuarios/resumen", nil, &summary, "Error loading user summary"); err != nil {
		return nil, err
	}
	return &summary, nil
}
