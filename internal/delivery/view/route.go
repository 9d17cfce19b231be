// Package view defines the closed set of role-scoped screens the client can
// open. Every Route belongs to exactly one role and is matched exhaustively
// by Dispatch.
package view

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wellbeing-client/internal/domain/entity"
)

var (
	ErrRouteNotAllowed = errors.New("this screen is not available for your role")
	ErrUnknownRoute    = errors.New("unknown screen")
	ErrMissingID       = errors.New("this screen needs a numeric id")
)

// Route is a screen. The unexported method seals the set to this package.
type Route interface {
	Role() entity.Role
	Name() string
	route()
}

// Admin routes
type (
	AdminDashboard       struct{}
	Psychologists        struct{}
	PsychologistDetail   struct{ ID int64 }
	RegisterPsychologist struct{}
	Reports              struct{ Days int }
)

// Psychologist routes
type (
	PsychologistDashboard struct{}
	Patients              struct{}
	PatientDetail         struct{ ID int64 }
	RegisterPatient       struct{}
	Appointments          struct{}
)

// Patient routes
type (
	PatientDashboard struct{}
	RecordEmotion    struct{}
	History          struct{}
	MyAppointments   struct{}
)

func (AdminDashboard) Role() entity.Role       { return entity.RoleAdmin }
func (Psychologists) Role() entity.Role        { return entity.RoleAdmin }
func (PsychologistDetail) Role() entity.Role   { return entity.RoleAdmin }
func (RegisterPsychologist) Role() entity.Role { return entity.RoleAdmin }
func (Reports) Role() entity.Role              { return entity.RoleAdmin }

func (PsychologistDashboard) Role() entity.Role { return entity.RolePsychologist }
func (Patients) Role() entity.Role              { return entity.RolePsychologist }
func (PatientDetail) Role() entity.Role         { return entity.RolePsychologist }
func (RegisterPatient) Role() entity.Role       { return entity.RolePsychologist }
func (Appointments) Role() entity.Role          { return entity.RolePsychologist }

func (PatientDashboard) Role() entity.Role { return entity.RolePatient }
func (RecordEmotion) Role() entity.Role    { return entity.RolePatient }
func (History) Role() entity.Role          { return entity.RolePatient }
func (MyAppointments) Role() entity.Role   { return entity.RolePatient }

func (AdminDashboard) Name() string        { return "dashboard" }
func (Psychologists) Name() string         { return "psychologists" }
func (PsychologistDetail) Name() string    { return "psychologist" }
func (RegisterPsychologist) Name() string  { return "register-psychologist" }
func (Reports) Name() string               { return "reports" }
func (PsychologistDashboard) Name() string { return "dashboard" }
func (Patients) Name() string              { return "patients" }
func (PatientDetail) Name() string         { return "patient" }
func (RegisterPatient) Name() string       { return "register-patient" }
func (Appointments) Name() string          { return "appointments" }
func (PatientDashboard) Name() string      { return "dashboard" }
func (RecordEmotion) Name() string         { return "record" }
func (History) Name() string               { return "history" }
func (MyAppointments) Name() string        { return "appointments" }

func (AdminDashboard) route()        {}
func (Psychologists) route()         {}
func (PsychologistDetail) route()    {}
func (RegisterPsychologist) route()  {}
func (Reports) route()               {}
func (PsychologistDashboard) route() {}
func (Patients) route()              {}
func (PatientDetail) route()         {}
func (RegisterPatient) route()       {}
func (Appointments) route()          {}
func (PatientDashboard) route()      {}
func (RecordEmotion) route()         {}
func (History) route()               {}
func (MyAppointments) route()        {}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Args  string `json:"args,omitempty"`
}

type routeEntry struct {
	MenuItem
	build func(args []string) (Route, error)
}

func plain(r Route) func([]string) (Route, error) {
	return func([]string) (Route, error) { return r, nil }
}

var routes = map[entity.Role][]routeEntry{
	entity.RoleAdmin: {
		{MenuItem{"dashboard", "Dashboard", ""}, plain(AdminDashboard{})},
		{MenuItem{"psychologists", "Psychologists", ""}, plain(Psychologists{})},
		{MenuItem{"psychologist", "Psychologist detail", "<id>"}, func(args []string) (Route, error) {
			id, err := parseID(args)
			if err != nil {
				return nil, err
			}
			return PsychologistDetail{ID: id}, nil
		}},
		{MenuItem{"register-psychologist", "Register psychologist", ""}, plain(RegisterPsychologist{})},
		{MenuItem{"reports", "Reports", "[days]"}, func(args []string) (Route, error) {
			if len(args) == 0 {
				return Reports{}, nil
			}
			days, err := strconv.Atoi(args[0])
			if err != nil || days <= 0 {
				return nil, fmt.Errorf("invalid number of days %q", args[0])
			}
			return Reports{Days: days}, nil
		}},
	},
	entity.RolePsychologist: {
		{MenuItem{"dashboard", "Dashboard", ""}, plain(PsychologistDashboard{})},
		{MenuItem{"patients", "My patients", ""}, plain(Patients{})},
		{MenuItem{"patient", "Patient detail", "<id>"}, func(args []string) (Route, error) {
			id, err := parseID(args)
			if err != nil {
				return nil, err
			}
			return PatientDetail{ID: id}, nil
		}},
		{MenuItem{"register-patient", "Register patient", ""}, plain(RegisterPatient{})},
		{MenuItem{"appointments", "Appointments", ""}, plain(Appointments{})},
	},
	entity.RolePatient: {
		{MenuItem{"dashboard", "Dashboard", ""}, plain(PatientDashboard{})},
		{MenuItem{"record", "Record emotion", ""}, plain(RecordEmotion{})},
		{MenuItem{"history", "Emotional history", ""}, plain(History{})},
		{MenuItem{"appointments", "My appointments", ""}, plain(MyAppointments{})},
	},
}

// Resolve turns a screen name typed by the user into a Route for role.
// Names that exist only for another role yield ErrRouteNotAllowed.
func Resolve(role entity.Role, name string, args []string) (Route, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, entry := range routes[role] {
		if entry.Name == name {
			return entry.build(args)
		}
	}

	for other, entries := range routes {
		if other == role {
			continue
		}
		for _, entry := range entries {
			if entry.Name == name {
				return nil, fmt.Errorf("%w: %s", ErrRouteNotAllowed, name)
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
}

// ForRole lists the sidebar of role in display order.
func ForRole(role entity.Role) []MenuItem {
	entries := routes[role]
	items := make([]MenuItem, len(entries))
	for i, entry := range entries {
		items[i] = entry.MenuItem
	}
	return items
}

// Home is the landing screen of role.
func Home(role entity.Role) (Route, error) {
	return Resolve(role, "dashboard", nil)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrMissingID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingID, args[0])
	}
	return id, nil
}

// Handler renders every screen.
type Handler interface {
	AdminDashboard(ctx context.Context) error
	Psychologists(ctx context.Context) error
	PsychologistDetail(ctx context.Context, id int64) error
	RegisterPsychologist(ctx context.Context) error
	Reports(ctx context.Context, days int) error

	PsychologistDashboard(ctx context.Context) error
	Patients(ctx context.Context) error
	PatientDetail(ctx context.Context, id int64) error
	RegisterPatient(ctx context.Context) error
	Appointments(ctx context.Context) error

	PatientDashboard(ctx context.Context) error
	RecordEmotion(ctx context.Context) error
	History(ctx context.Context) error
	MyAppointments(ctx context.Context) error
}

// Dispatch renders r for a session of the given role. A route of another
// role is rejected before the handler runs.
func Dispatch(ctx context.Context, role entity.Role, r Route, h Handler) error {
	if r == nil {
		return ErrUnknownRoute
	}
	if r.Role() != role {
		return fmt.Errorf("%w: %s", ErrRouteNotAllowed, r.Name())
	}

	switch r := r.(type) {
	case AdminDashboard:
		return h.AdminDashboard(ctx)
	case Psychologists:
		return h.Psychologists(ctx)
	case PsychologistDetail:
		return h.PsychologistDetail(ctx, r.ID)
	case RegisterPsychologist:
		return h.RegisterPsychologist(ctx)
	case Reports:
		return h.Reports(ctx, r.Days)
	case PsychologistDashboard:
		return h.PsychologistDashboard(ctx)
	case Patients:
		return h.Patients(ctx)
	case PatientDetail:
		return h.PatientDetail(ctx, r.ID)
	case RegisterPatient:
		return h.RegisterPatient(ctx)
	case Appointments:
		return h.Appointments(ctx)
	case PatientDashboard:
		return h.PatientDashboard(ctx)
	case RecordEmotion:
		return h.RecordEmotion(ctx)
	case History:
		return h.History(ctx)
	case MyAppointments:
		return h.MyAppointments(ctx)
	}
	return fmt.Errorf("%w: %T", ErrUnknownRoute, r)
}
