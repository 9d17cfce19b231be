package repository

import (
	"context"
	"net/url"
	"strconv"

	"wellbeing-client/internal/domain/entity"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
)

type emotionalRecordRepository struct {
	client *api.Client
}

func NewEmotionalRecordRepository(client *api.Client) domainRepo.EmotionalRecordRepository {
	return &emotionalRecordRepository{client: client}
}

func (r *emotionalRecordRepository) Create(ctx context.Context, input *domainRepo.EmotionalRecordInput) (*domainRepo.RecordCreated, error) {
	var created domainRepo.RecordCreated
	if err := r.client.Post(ctx, "/registros-emocionales", input, &created, "Error saving check-in"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *emotionalRecordRepository) FindMine(ctx context.Context, limit int) ([]entity.EmotionalRecord, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var records []entity.EmotionalRecord
	if err := r.client.Get(ctx, "/registros-emocionales", query, &records, "Error loading history"); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *emotionalRecordRepository) Analytics(ctx context.Context, days int) (*entity.EmotionalAnalytics, error) {
	query := url.Values{"dias": {strconv.Itoa(days)}}

	var analytics entity.EmotionalAnalytics
	if err := r.client.Get(ctx, "/registros-emocionales/analytics", query, &analytics, "Error loading analytics"); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *emotionalRecordRepository) Statistics(ctx context.Context) (*entity.PatientStatistics, error) {
	var stats entity.PatientStatistics
	if err := r.client.Get(ctx, "/pacientes/estadisticas", nil, &stats, "Error loading statistics"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *emotionalRecordRepository) MyPsychologist(ctx context.Context) (*entity.CareAssignment, error) {
	var assignment entity.CareAssignment
	if err := r.client.Get(ctx, "/pacientes/mi-psicologo", nil, &assignment, "Error loading your psychologist"); err != nil {
		return nil, err
	}
	return &assignment, nil
}
