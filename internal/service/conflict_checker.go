package service

import (
	"fmt"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/pkg/timeofday"
)

// DefaultAppointmentMinutes is the length assumed for an appointment that has
// no end time. It only affects overlap detection and is never sent to the backend.
const DefaultAppointmentMinutes = 60

var (
	ErrInvalidTimeFormat = timeofday.ErrInvalidTime
	ErrInvalidDate       = timeofday.ErrInvalidDate
)

// ConflictQuery describes the candidate range. EndTime may be empty and
// ExcludeID is zero when no appointment is being edited.
type ConflictQuery struct {
	Date      string
	StartTime string
	EndTime   string
	ExcludeID int64
}

// Conflict is an existing appointment whose range overlaps the candidate.
type Conflict struct {
	Appointment entity.Appointment
	Start       timeofday.Minutes
	End         timeofday.Minutes
}

// Message renders the conflict for the user.
func (c *Conflict) Message() string {
	name := c.Appointment.PatientName()
	if name == "" {
		name = fmt.Sprintf("patient #%d", c.Appointment.PatientID)
	}
	return fmt.Sprintf("time slot overlaps the %s-%s appointment with %s", c.Start, c.End, name)
}

type timeRange struct {
	start timeofday.Minutes
	end   timeofday.Minutes
}

// overlaps treats ranges as half-open, so touching boundaries do not overlap.
func (r timeRange) overlaps(o timeRange) bool {
	return r.start < o.end && o.start < r.end
}

func rangeOf(start, end string) (timeRange, error) {
	s, err := timeofday.Parse(start)
	if err != nil {
		return timeRange{}, err
	}
	if end == "" {
		return timeRange{start: s, end: s.Add(DefaultAppointmentMinutes)}, nil
	}
	e, err := timeofday.Parse(end)
	if err != nil {
		return timeRange{}, err
	}
	return timeRange{start: s, end: e}, nil
}

// FindConflict returns the first appointment, in list order, that overlaps the
// candidate on the same date, or nil. Cancelled appointments and the one
// matching ExcludeID are ignored. Malformed dates or times are an error.
func FindConflict(q ConflictQuery, appointments []entity.Appointment) (*Conflict, error) {
	var first *Conflict
	err := scanConflicts(q, appointments, func(c Conflict) bool {
		first = &c
		return false
	})
	if err != nil {
		return nil, err
	}
	return first, nil
}

// FindAllConflicts returns every overlapping appointment in list order.
func FindAllConflicts(q ConflictQuery, appointments []entity.Appointment) ([]Conflict, error) {
	var all []Conflict
	err := scanConflicts(q, appointments, func(c Conflict) bool {
		all = append(all, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func scanConflicts(q ConflictQuery, appointments []entity.Appointment, yield func(Conflict) bool) error {
	date, err := timeofday.NormalizeDate(q.Date)
	if err != nil {
		return err
	}
	candidate, err := rangeOf(q.StartTime, q.EndTime)
	if err != nil {
		return err
	}

	for _, a := range appointments {
		if a.IsCancelled() {
			continue
		}
		if q.ExcludeID != 0 && a.ID == q.ExcludeID {
			continue
		}
		apptDate, err := timeofday.NormalizeDate(a.Date)
		if err != nil {
			return fmt.Errorf("appointment %d: %w", a.ID, err)
		}
		if apptDate != date {
			continue
		}

		existing, err := rangeOf(a.StartTime, a.EndTime)
		if err != nil {
			return fmt.Errorf("appointment %d: %w", a.ID, err)
		}
		if !candidate.overlaps(existing) {
			continue
		}
		if !yield(Conflict{Appointment: a, Start: existing.start, End: existing.end}) {
			return nil
		}
	}
	return nil
}
