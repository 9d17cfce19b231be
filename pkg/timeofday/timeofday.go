// Package timeofday converts wall-clock strings used by the backend
// ("HH:MM", or "HH:MM:SS" as returned by the API) into minutes since midnight.
package timeofday

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTime = errors.New("invalid time format, use HH:MM")
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)

const (
	DateLayout = "2006-01-02"
	timeLayout = "15:04"
	secLayout  = "15:04:05"
)

// Minutes is a time of day expressed as minutes since midnight. Values past
// 24:00 are allowed as the result of arithmetic (23:30 + 60).
type Minutes int

// Parse reads "HH:MM" or "HH:MM:SS". Seconds are accepted but dropped.
func Parse(s string) (Minutes, error) {
	s = strings.TrimSpace(s)
	layout := timeLayout
	switch len(s) {
	case len(timeLayout):
	case len(secLayout):
		layout = secLayout
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return Minutes(t.Hour()*60 + t.Minute()), nil
}

// Normalize returns s in "HH:MM" form.
func Normalize(s string) (string, error) {
	m, err := Parse(s)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// Valid reports whether s parses as a time of day.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (m Minutes) Add(minutes int) Minutes {
	return m + Minutes(minutes)
}

func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// NormalizeDate returns s in YYYY-MM-DD form. The backend may send full
// ISO timestamps for date columns; only the date part is kept.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}
