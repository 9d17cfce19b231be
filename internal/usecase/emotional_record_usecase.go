package usecase

import (
	"context"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/service"

	"github.com/sirupsen/logrus"
)

// DefaultAnalyticsDays is the analytics window when none is given.
const DefaultAnalyticsDays = 30

type EmotionalRecordUsecase interface {
	Record(ctx context.Context, req *dto.CreateEmotionalRecordRequest) (*dto.RecordCreatedResponse, error)
	History(ctx context.Context, limit int) (*dto.EmotionalHistoryResponse, error)
	Analytics(ctx context.Context, days int) (*dto.AnalyticsResponse, error)
	Overview(ctx context.Context) (*dto.PatientOverviewResponse, error)
}

type emotionalRecordUsecase struct {
	log        *logrus.Logger
	recordRepo repository.EmotionalRecordRepository
}

func NewEmotionalRecordUsecase(log *logrus.Logger, recordRepo repository.EmotionalRecordRepository) EmotionalRecordUsecase {
	return &emotionalRecordUsecase{
		log:        log,
		recordRepo: recordRepo,
	}
}

func (u *emotionalRecordUsecase) Record(ctx context.Context, req *dto.CreateEmotionalRecordRequest) (*dto.RecordCreatedResponse, error) {
	created, err := u.recordRepo.Create(ctx, converter.CreateEmotionalRecordRequestToInput(req))
	if err != nil {
		u.log.Warnf("Failed to create emotional record: %+v", err)
		return nil, err
	}

	u.log.Infof("Emotional record created: id=%d, mood=%d", created.ID, req.MoodLevel)
	return &dto.RecordCreatedResponse{ID: created.ID, Message: created.Message}, nil
}

// History returns the patient's own records with the chart summary.
func (u *emotionalRecordUsecase) History(ctx context.Context, limit int) (*dto.EmotionalHistoryResponse, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}

	records, err := u.recordRepo.FindMine(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to find emotional records: %+v", err)
		return nil, err
	}

	return &dto.EmotionalHistoryResponse{
		Records: converter.EmotionalRecordsToResponses(records),
		Summary: converter.MoodSummaryToResponse(service.Summarize(records, 0)),
	}, nil
}

func (u *emotionalRecordUsecase) Analytics(ctx context.Context, days int) (*dto.AnalyticsResponse, error) {
	if days <= 0 {
		days = DefaultAnalyticsDays
	}

	analytics, err := u.recordRepo.Analytics(ctx, days)
	if err != nil {
		u.log.Warnf("Failed to get emotional analytics: %+v", err)
		return nil, err
	}
	return converter.AnalyticsToResponse(days, analytics), nil
}

// Overview feeds the patient dashboard. A missing psychologist assignment
// is not an error; the backend's message is shown instead.
func (u *emotionalRecordUsecase) Overview(ctx context.Context) (*dto.PatientOverviewResponse, error) {
	stats, err := u.recordRepo.Statistics(ctx)
	if err != nil {
		u.log.Warnf("Failed to get patient statistics: %+v", err)
		return nil, err
	}

	assignment, err := u.recordRepo.MyPsychologist(ctx)
	if err != nil {
		u.log.Warnf("Failed to get assigned psychologist: %+v", err)
		return nil, err
	}

	response := &dto.PatientOverviewResponse{
		TotalRecords:    stats.TotalRecords,
		AverageMood:     stats.AverageMood,
		Description:     "No data",
		RecordsLastWeek: stats.RecordsLastWeek,
		Message:         assignment.Message,
	}
	if stats.TotalRecords > 0 {
		response.Description = service.MoodDescription(stats.AverageMood)
	}
	if assignment.HasPsychologist && assignment.Psychologist != nil {
		p := assignment.Psychologist
		response.Psychologist = entity.PersonName{FirstName: p.FirstName, LastName: p.LastName}.Full()
		response.PsychologistMail = p.Email
	}
	return response, nil
}
