package usecase

import (
	"context"
	"testing"

	"wellbeing-client/internal/domain/entity"
)

type fakeReportRepo struct {
	lastDays int
}

func (r *fakeReportRepo) Statistics(ctx context.Context) (*entity.Statistics, error) {
	return &entity.Statistics{ActivePatients: 40, ActivePsychologists: 6}, nil
}

func (r *fakeReportRepo) General(ctx context.Context, days int) (*entity.GeneralReport, error) {
	r.lastDays = days
	return &entity.GeneralReport{
		PeriodDays:          days,
		TotalRecords:        5,
		EmotionDistribution: map[string]int{"tristeza": 1, "alegria": 3, "calma": 1},
	}, nil
}

func (r *fakeReportRepo) ByPsychologist(ctx context.Context) ([]entity.PsychologistActivity, error) {
	return []entity.PsychologistActivity{{ID: 1}, {ID: 2}}, nil
}

func (r *fakeReportRepo) UsersSummary(ctx context.Context) (*entity.UsersSummary, error) {
	return &entity.UsersSummary{}, nil
}

func TestReportUsecase_General(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUsecase(quietLogger(), repo)

	got, err := uc.General(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDays != DefaultReportDays || got.PeriodDays != DefaultReportDays {
		t.Errorf("expected default window, got %d", repo.lastDays)
	}
	want := []string{"alegria", "calma", "tristeza"}
	for i, key := range want {
		if got.Emotions[i].Key != key {
			t.Errorf("position %d: expected %s, got %s", i, key, got.Emotions[i].Key)
		}
	}

	if _, err := uc.General(context.Background(), 7); err != nil || repo.lastDays != 7 {
		t.Errorf("expected 7 day window, got %d (%v)", repo.lastDays, err)
	}
}

func TestReportUsecase_Passthrough(t *testing.T) {
	uc := NewReportUsecase(quietLogger(), &fakeReportRepo{})

	stats, err := uc.Statistics(context.Background())
	if err != nil || stats.ActivePatients != 40 {
		t.Errorf("unexpected statistics %+v, %v", stats, err)
	}
	rows, err := uc.ByPsychologist(context.Background())
	if err != nil || len(rows) != 2 {
		t.Errorf("unexpected activity rows %+v, %v", rows, err)
	}
	if _, err := uc.UsersSummary(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
