package converter

import (
	"testing"

	"wellbeing-client/internal/delivery/dto"
	"wellbeing-client/internal/domain/entity"
)

func TestAppointmentToResponse(t *testing.T) {
	got := AppointmentToResponse(&entity.Appointment{
		ID:        7,
		PatientID: 3,
		Patient:   &entity.PersonName{FirstName: "Ana", LastName: "Ruiz"},
		Date:      "2025-03-10T00:00:00",
		StartTime: "10:00:00",
		EndTime:   "11:00",
		Status:    entity.AppointmentStatusNoShow,
	})

	if got.PatientName != "Ana Ruiz" {
		t.Errorf("expected patient name from nested block, got %q", got.PatientName)
	}
	if got.Date != "2025-03-10" {
		t.Errorf("expected date part only, got %q", got.Date)
	}
	if got.StartTime != "10:00" || got.EndTime != "11:00" {
		t.Errorf("expected HH:MM times, got %s-%s", got.StartTime, got.EndTime)
	}
	if got.StatusLabel != "no-show" {
		t.Errorf("expected no-show label, got %q", got.StatusLabel)
	}
}

func TestAppointmentToResponse_KeepsUnparseableValues(t *testing.T) {
	got := AppointmentToResponse(&entity.Appointment{Date: "mañana", StartTime: "10h"})
	if got.Date != "mañana" || got.StartTime != "10h" {
		t.Errorf("expected raw values to be shown, got %q %q", got.Date, got.StartTime)
	}
	if AppointmentToResponse(nil) != nil {
		t.Error("expected nil for nil appointment")
	}
}

func TestAppointmentRequestsToInput(t *testing.T) {
	created := CreateAppointmentRequestToInput(&dto.CreateAppointmentRequest{PatientID: 3, Date: "2025-03-10", StartTime: "10:00"})
	if created.Modality != entity.ModalityVirtual {
		t.Errorf("expected default modality %q, got %q", entity.ModalityVirtual, created.Modality)
	}

	updated := UpdateAppointmentRequestToInput(&dto.UpdateAppointmentRequest{Status: string(entity.AppointmentStatusCancelled)})
	if updated.Status != entity.AppointmentStatusCancelled {
		t.Errorf("expected cancelled status, got %q", updated.Status)
	}
	if updated.Modality != "" || updated.Date != "" {
		t.Errorf("expected unset fields to stay empty, got %+v", updated)
	}
}

func TestAnalyticsToResponse(t *testing.T) {
	emotion := "alegria"
	tests := []struct {
		name      string
		analytics *entity.EmotionalAnalytics
		wantDesc  string
		wantTrend string
		wantLabel string
	}{
		{
			name:      "no records",
			analytics: &entity.EmotionalAnalytics{},
			wantDesc:  "No data",
			wantTrend: "stable",
		},
		{
			name:      "improving",
			analytics: &entity.EmotionalAnalytics{TotalRecords: 4, AverageMood: 7.5, Trend: entity.TrendImproving, PrimaryEmotion: &emotion},
			wantDesc:  "Good",
			wantTrend: "improving",
			wantLabel: "Joy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyticsToResponse(30, tt.analytics)
			if got.Description != tt.wantDesc {
				t.Errorf("expected description %q, got %q", tt.wantDesc, got.Description)
			}
			if got.Trend != tt.wantTrend {
				t.Errorf("expected trend %q, got %q", tt.wantTrend, got.Trend)
			}
			if got.EmotionLabel != tt.wantLabel {
				t.Errorf("expected emotion label %q, got %q", tt.wantLabel, got.EmotionLabel)
			}
		})
	}
}

func TestCountsToResponses_Ordering(t *testing.T) {
	got := countsToResponses(map[string]int{"paciente": 12, "admin": 1, "psicologo": 1}, func(key string) string {
		return entity.Role(key).Label()
	})

	want := []string{"paciente", "admin", "psicologo"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("row %d: expected %q, got %q", i, key, got[i].Key)
		}
	}
	if got[0].Label != "patient" {
		t.Errorf("expected role label, got %q", got[0].Label)
	}
}
