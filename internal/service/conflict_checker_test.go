package service

import (
	"errors"
	"strings"
	"testing"

	"wellbeing-client/internal/domain/entity"
)

func appt(id int64, date, start, end string, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:        id,
		PatientID: 100 + id,
		Patient:   &entity.PersonName{FirstName: "Ana", LastName: "Pérez"},
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestFindConflict_Scenarios(t *testing.T) {
	scheduled := entity.AppointmentStatusScheduled

	tests := []struct {
		name     string
		existing []entity.Appointment
		query    ConflictQuery
		wantID   int64
	}{
		{
			name:     "partial overlap",
			existing: []entity.Appointment{appt(1, "2024-03-10", "09:00", "10:00", scheduled)},
			query:    ConflictQuery{Date: "2024-03-10", StartTime: "09:30", EndTime: "10:30"},
			wantID:   1,
		},
		{
			name:     "touching boundary",
			existing: []entity.Appointment{appt(1, "2024-03-10", "09:00", "10:00", scheduled)},
			query:    ConflictQuery{Date: "2024-03-10", StartTime: "10:00", EndTime: "11:00"},
		},
		{
			name:     "cancelled is ignored",
			existing: []entity.Appointment{appt(1, "2024-03-10", "09:00", "10:00", entity.AppointmentStatusCancelled)},
			query:    ConflictQuery{Date: "2024-03-10", StartTime: "09:00", EndTime: "10:00"},
		},
		{
			name:     "different date",
			existing: []entity.Appointment{appt(1, "2024-03-11", "09:00", "10:00", scheduled)},
			query:    ConflictQuery{Date: "2024-03-10", StartTime: "09:00", EndTime: "10:00"},
		},
		{
			name:     "self exclusion",
			existing: []entity.Appointment{appt(5, "2024-03-10", "09:00", "10:00", scheduled)},
			query:    ConflictQuery{Date: "2024-03-10", StartTime: "09:00", EndTime: "10:00", ExcludeID: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConflict(tt.query, tt.existing)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantID == 0 {
				if got != nil {
					t.Errorf("expected no conflict, got appointment %d", got.Appointment.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected conflict with %d, got none", tt.wantID)
			}
			if got.Appointment.ID != tt.wantID {
				t.Errorf("expected conflict with %d, got %d", tt.wantID, got.Appointment.ID)
			}
		})
	}
}

func TestFindConflict_OverlapShapes(t *testing.T) {
	existing := []entity.Appointment{appt(1, "2024-03-10", "10:00", "11:00", entity.AppointmentStatusScheduled)}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"ends before", "08:00", "09:00", false},
		{"ends at start", "09:00", "10:00", false},
		{"overlaps start", "09:30", "10:15", true},
		{"overlaps end", "10:45", "11:30", true},
		{"contained", "10:15", "10:45", true},
		{"contains", "09:00", "12:00", true},
		{"identical", "10:00", "11:00", true},
		{"starts at end", "11:00", "12:00", false},
		{"after", "12:00", "13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: tt.start, EndTime: tt.end}, existing)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got != nil) != tt.want {
				t.Errorf("conflict = %v, want %v", got != nil, tt.want)
			}
		})
	}
}

func TestFindConflict_DefaultDuration(t *testing.T) {
	scheduled := entity.AppointmentStatusScheduled

	t.Run("candidate without end", func(t *testing.T) {
		existing := []entity.Appointment{appt(1, "2024-03-10", "09:45", "10:30", scheduled)}
		got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "09:00"}, existing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected 09:00 + 60 to overlap 09:45")
		}
	})

	t.Run("existing without end", func(t *testing.T) {
		existing := []entity.Appointment{appt(1, "2024-03-10", "09:00", "", scheduled)}
		got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "09:59", EndTime: "10:30"}, existing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected existing 09:00 + 60 to overlap 09:59")
		}
		if got.End.String() != "10:00" {
			t.Errorf("expected defaulted end 10:00, got %s", got.End)
		}

		got, err = FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "10:00"}, existing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected defaulted end to touch without conflict")
		}
	})
}

func TestFindConflict_FirstInListOrder(t *testing.T) {
	scheduled := entity.AppointmentStatusScheduled
	existing := []entity.Appointment{
		appt(7, "2024-03-10", "10:30", "11:30", scheduled),
		appt(3, "2024-03-10", "09:00", "10:00", scheduled),
	}

	got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "09:30", EndTime: "11:00"}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Appointment.ID != 7 {
		t.Fatalf("expected first listed appointment 7, got %+v", got)
	}

	all, err := FindAllConflicts(ConflictQuery{Date: "2024-03-10", StartTime: "09:30", EndTime: "11:00"}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Appointment.ID != 7 || all[1].Appointment.ID != 3 {
		t.Errorf("expected both conflicts in list order, got %+v", all)
	}
}

func TestFindConflict_BackendFormats(t *testing.T) {
	existing := []entity.Appointment{appt(1, "2024-03-10T00:00:00", "09:00:00", "10:00:00", entity.AppointmentStatusScheduled)}

	got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "09:30"}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected conflict with seconds-precision times")
	}
	if !strings.Contains(got.Message(), "09:00-10:00") || !strings.Contains(got.Message(), "Ana Pérez") {
		t.Errorf("unexpected message %q", got.Message())
	}
}

func TestFindConflict_MalformedInput(t *testing.T) {
	existing := []entity.Appointment{appt(1, "2024-03-10", "9am", "", entity.AppointmentStatusScheduled)}

	tests := []struct {
		name    string
		query   ConflictQuery
		list    []entity.Appointment
		wantErr error
	}{
		{"bad candidate start", ConflictQuery{Date: "2024-03-10", StartTime: "25:00"}, nil, ErrInvalidTimeFormat},
		{"bad candidate end", ConflictQuery{Date: "2024-03-10", StartTime: "09:00", EndTime: "10h"}, nil, ErrInvalidTimeFormat},
		{"bad date", ConflictQuery{Date: "10/03/2024", StartTime: "09:00"}, nil, ErrInvalidDate},
		{"bad existing time", ConflictQuery{Date: "2024-03-10", StartTime: "09:00"}, existing, ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindConflict(tt.query, tt.list)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFindConflict_EndBeforeStartIsNotRejected(t *testing.T) {
	existing := []entity.Appointment{appt(1, "2024-03-10", "09:00", "10:00", entity.AppointmentStatusScheduled)}

	got, err := FindConflict(ConflictQuery{Date: "2024-03-10", StartTime: "09:30", EndTime: "09:00"}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("an inverted range is empty and cannot overlap")
	}
}
