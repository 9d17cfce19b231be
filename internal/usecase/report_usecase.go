package usecase

import (
	"context"

	"wellbeing-client/internal/converter"
	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DefaultReportDays is the general report window when none is given.
const DefaultReportDays = 30

type ReportUsecase interface {
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
	General(ctx context.Context, days int) (*dto.GeneralReportResponse, error)
	ByPsychologist(ctx context.Context) ([]dto.PsychologistActivityResponse, error)
	UsersSummary(ctx context.Context) (*dto.UsersSummaryResponse, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	stats, err := u.reportRepo.Statistics(ctx)
	if err != nil {
		u.log.Warnf("Failed to get statistics: %+v", err)
		return nil, err
	}
	return converter.StatisticsToResponse(stats), nil
}

func (u *reportUsecase) General(ctx context.Context, days int) (*dto.GeneralReportResponse, error) {
	if days <= 0 {
		days = DefaultReportDays
	}

	report, err := u.reportRepo.General(ctx, days)
	if err != nil {
		u.log.Warnf("Failed to get general report: %+v", err)
		return nil, err
	}
	return converter.GeneralReportToResponse(report), nil
}

func (u *reportUsecase) ByPsychologist(ctx context.Context) ([]dto.PsychologistActivityResponse, error) {
	rows, err := u.reportRepo.ByPsychologist(ctx)
	if err != nil {
		u.log.Warnf("Failed to get psychologist report: %+v", err)
		return nil, err
	}
	return converter.PsychologistActivityToResponses(rows), nil
}

func (u *reportUsecase) UsersSummary(ctx context.Context) (*dto.UsersSummaryResponse, error) {
	summary, err := u.reportRepo.UsersSummary(ctx)
	if err != nil {
		u.log.Warnf("Failed to get users summary: %+v", err)
		return nil, err
	}
	return converter.UsersSummaryToResponse(summary), nil
}
