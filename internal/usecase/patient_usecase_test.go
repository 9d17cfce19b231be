package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
)

func newTestPatientUsecase(patients *fakePatientRepo, appointments *fakeAppointmentRepo) *patientUsecase {
	uc := NewPatientUsecase(quietLogger(), patients, appointments).(*patientUsecase)
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return uc
}

func patientFixture() *fakePatientRepo {
	return &fakePatientRepo{
		patients: []entity.Patient{
			{ID: 10, FullName: "Ana Ruiz", Email: "ana@example.com"},
			{ID: 11, FullName: "Luis Peña", Email: "lpena@example.com"},
			{ID: 12, FullName: "Mariana Soto", Email: gofakeit.Email()},
		},
		records: map[int64][]entity.EmotionalRecord{
			10: {
				{ID: 1, MoodLevel: 8, PrimaryEmotion: "alegría"},
				{ID: 2, MoodLevel: 3, PrimaryEmotion: "tristeza", RiskLevel: entity.RiskHigh},
				{ID: 3, MoodLevel: 6, PrimaryEmotion: "calma"},
			},
		},
	}
}

func TestPatientUsecase_ListMineFilter(t *testing.T) {
	tests := []struct {
		filter string
		want   []int64
	}{
		{"", []int64{10, 11, 12}},
		{"ANA", []int64{10, 12}},
		{"  peña ", []int64{11}},
		{"lpena@", []int64{11}},
		{"nobody", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			uc := newTestPatientUsecase(patientFixture(), newFakeAppointmentRepo())

			got, err := uc.ListMine(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Total != len(tt.want) {
				t.Fatalf("expected %d patients, got %d", len(tt.want), got.Total)
			}
			for i, id := range tt.want {
				if got.Patients[i].ID != id {
					t.Errorf("position %d: expected %d, got %d", i, id, got.Patients[i].ID)
				}
			}
		})
	}
}

func TestPatientUsecase_Get(t *testing.T) {
	patients := patientFixture()
	appointments := newFakeAppointmentRepo(scheduleFixture()...)
	uc := newTestPatientUsecase(patients, appointments)

	got, err := uc.Get(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Patient.FullName != "Ana Ruiz" {
		t.Errorf("unexpected patient: %+v", got.Patient)
	}
	if len(got.Records) != 3 || patients.lastLimit != DefaultRecordLimit {
		t.Errorf("expected 3 records fetched with default limit, got %d (limit %d)", len(got.Records), patients.lastLimit)
	}
	if got.Summary.AverageMood != 5.7 || got.Summary.HighRisk != 1 {
		t.Errorf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Summary.Frequent) == 0 || got.Summary.Frequent[0].Count != 1 {
		t.Errorf("unexpected frequent emotions: %+v", got.Summary.Frequent)
	}
	if len(got.Upcoming) != 1 || got.Upcoming[0].ID != 1 {
		t.Errorf("expected upcoming appointment 1 only, got %+v", got.Upcoming)
	}
}

func TestPatientUsecase_NotAssigned(t *testing.T) {
	patients := patientFixture()
	uc := newTestPatientUsecase(patients, newFakeAppointmentRepo())

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Get: expected ErrPatientNotFound, got %v", err)
	}
	if err := uc.Update(context.Background(), 99, &dto.UpdatePatientRequest{Phone: "+573001234567"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Update: expected ErrPatientNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), 99); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Delete: expected ErrPatientNotFound, got %v", err)
	}
	if len(patients.updated) != 0 || len(patients.deleted) != 0 {
		t.Error("expected no request for an unassigned patient")
	}
}

func TestPatientUsecase_UpdateAndDelete(t *testing.T) {
	patients := patientFixture()
	uc := newTestPatientUsecase(patients, newFakeAppointmentRepo())

	if err := uc.Update(context.Background(), 11, &dto.UpdatePatientRequest{Phone: "+573001234567"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patients.updated[11].Phone != "+573001234567" || patients.updated[11].Email != "" {
		t.Errorf("unexpected update payload: %+v", patients.updated[11])
	}

	if err := uc.Delete(context.Background(), 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients.deleted) != 1 || patients.deleted[0] != 12 {
		t.Errorf("expected patient 12 deleted, got %v", patients.deleted)
	}
}

func TestPatientUsecase_Register(t *testing.T) {
	patients := patientFixture()
	uc := newTestPatientUsecase(patients, newFakeAppointmentRepo())

	email := gofakeit.Email()
	got, err := uc.Register(context.Background(), &dto.RegisterPatientRequest{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     email,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != email || got.TemporaryPassword != "Temp1234" {
		t.Errorf("unexpected registration: %+v", got)
	}
	if len(patients.registered) != 1 || patients.registered[0].Email != email {
		t.Errorf("expected the registration forwarded, got %+v", patients.registered)
	}
}

func TestPatientUsecase_EmotionalRecordsLimit(t *testing.T) {
	patients := patientFixture()
	uc := newTestPatientUsecase(patients, newFakeAppointmentRepo())

	got, err := uc.EmotionalRecords(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patients.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", patients.lastLimit)
	}
	if got.Summary.Records != 3 {
		t.Errorf("expected 3 records summarised, got %d", got.Summary.Records)
	}
}
