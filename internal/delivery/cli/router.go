// Package cli is the terminal delivery layer: a cobra command tree whose
// commands are guarded by session middleware and served by handlers.
package cli

import (
	"wellbeing-client/internal/delivery/cli/handler"
	"wellbeing-client/internal/delivery/cli/middleware"
	"wellbeing-client/internal/delivery/cli/output"
	"wellbeing-client/internal/domain/entity"

	"github.com/spf13/cobra"
)

type Router struct {
	root                   *cobra.Command
	format                 string
	printer                *output.Printer
	authHandler            *handler.AuthHandler
	appointmentHandler     *handler.AppointmentHandler
	patientHandler         *handler.PatientHandler
	psychologistHandler    *handler.PsychologistHandler
	emotionalRecordHandler *handler.EmotionalRecordHandler
	reportHandler          *handler.ReportHandler
	viewHandler            *handler.ViewHandler
	authMiddleware         *middleware.AuthMiddleware
}

func NewRouter(
	printer *output.Printer,
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	psychologistHandler *handler.PsychologistHandler,
	emotionalRecordHandler *handler.EmotionalRecordHandler,
	reportHandler *handler.ReportHandler,
	viewHandler *handler.ViewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		printer:                printer,
		authHandler:            authHandler,
		appointmentHandler:     appointmentHandler,
		patientHandler:         patientHandler,
		psychologistHandler:    psychologistHandler,
		emotionalRecordHandler: emotionalRecordHandler,
		reportHandler:          reportHandler,
		viewHandler:            viewHandler,
		authMiddleware:         authMiddleware,
	}
}

// Setup builds the command tree.
func (r *Router) Setup() *cobra.Command {
	// Run persistent hooks of every ancestor so the root's output setup
	// runs before a group's guards.
	cobra.EnableTraverseRunHooks = true

	r.root = &cobra.Command{
		Use:           "wellbeing",
		Short:         "Terminal client for the emotional wellbeing platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.printer.SetFormat(r.format)
		},
	}
	r.root.PersistentFlags().StringVarP(&r.format, "output", "o", output.FormatTable, "output format: table or json")

	authenticated := []middleware.Middleware{r.authMiddleware.Authenticate, middleware.RequirePasswordChanged}

	// Auth (public)
	login := &cobra.Command{Use: "login", Short: "Log in and store the session", Args: cobra.NoArgs, RunE: r.authHandler.Login}
	login.Flags().StringP("username", "u", "", "account email")
	login.Flags().StringP("password", "p", "", "password (prompted when omitted)")
	r.root.AddCommand(login)
	r.root.AddCommand(&cobra.Command{Use: "logout", Short: "Forget the stored session", Args: cobra.NoArgs, RunE: r.authHandler.Logout})

	// Auth (protected); these stay usable with a temporary password
	whoami := &cobra.Command{Use: "whoami", Short: "Show the logged-in account", Args: cobra.NoArgs, RunE: r.authHandler.WhoAmI}
	r.use(whoami, r.authMiddleware.Authenticate)
	password := &cobra.Command{Use: "password", Short: "Change your password", Args: cobra.NoArgs, RunE: r.authHandler.ChangePassword}
	password.Flags().String("current", "", "current password")
	password.Flags().String("new", "", "new password (8+ characters, a digit and an uppercase letter)")
	password.Flags().String("confirm", "", "repeat the new password")
	r.use(password, r.authMiddleware.Authenticate)
	r.root.AddCommand(whoami, password)

	// Screens (any role)
	dashboard := &cobra.Command{Use: "dashboard", Short: "Open your dashboard", Args: cobra.NoArgs, RunE: r.viewHandler.Dashboard}
	menu := &cobra.Command{Use: "menu", Short: "List the screens available to you", Args: cobra.NoArgs, RunE: r.viewHandler.Menu}
	open := &cobra.Command{Use: "open <screen> [id|days]", Short: "Open a screen by name", Args: cobra.RangeArgs(1, 2), RunE: r.viewHandler.Open}
	for _, cmd := range []*cobra.Command{dashboard, menu, open} {
		r.use(cmd, authenticated...)
		r.root.AddCommand(cmd)
	}

	r.root.AddCommand(
		r.appointmentCommands(authenticated),
		r.patientCommands(authenticated),
		r.psychologistCommands(authenticated),
		r.recordCommands(authenticated),
		r.reportCommands(authenticated),
	)

	return r.root
}

// use installs middlewares on cmd and everything below it.
func (r *Router) use(cmd *cobra.Command, middlewares ...middleware.Middleware) {
	cmd.PersistentPreRunE = middleware.Chain(middlewares...)
}

func (r *Router) appointmentCommands(authenticated []middleware.Middleware) *cobra.Command {
	group := &cobra.Command{Use: "appointments", Aliases: []string{"citas"}, Short: "Manage appointments"}
	r.use(group, append(authenticated, middleware.RequireRole(entity.RolePsychologist, entity.RolePatient))...)

	list := &cobra.Command{Use: "list", Short: "List appointments", Args: cobra.NoArgs, RunE: r.appointmentHandler.List}
	show := &cobra.Command{Use: "show <id>", Short: "Show an appointment", Args: cobra.ExactArgs(1), RunE: r.appointmentHandler.Show}

	check := &cobra.Command{Use: "check", Short: "Check whether a time slot is free", Args: cobra.NoArgs, RunE: r.appointmentHandler.Check}
	check.Flags().String("date", "", "date (YYYY-MM-DD)")
	check.Flags().String("start", "", "start time (HH:MM)")
	check.Flags().String("end", "", "end time (HH:MM), defaults to one hour after start")
	check.Flags().Int("exclude", 0, "appointment id to ignore, when rescheduling")

	create := &cobra.Command{Use: "create", Short: "Schedule an appointment", Args: cobra.NoArgs, RunE: r.appointmentHandler.Create}
	create.Flags().Int("patient", 0, "patient id")
	addScheduleFlags(create)
	create.Flags().String("objectives", "", "session objectives")

	update := &cobra.Command{Use: "update <id>", Short: "Reschedule or edit an appointment", Args: cobra.ExactArgs(1), RunE: r.appointmentHandler.Update}
	addScheduleFlags(update)
	update.Flags().String("status", "", "scheduled, completed, cancelled or no-show")

	cancel := &cobra.Command{Use: "cancel <id>", Short: "Cancel an appointment", Args: cobra.ExactArgs(1), RunE: r.appointmentHandler.Cancel}
	cancel.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	attend := &cobra.Command{Use: "attend <id>", Short: "Record attendance", Args: cobra.ExactArgs(1), RunE: r.appointmentHandler.Attend}
	attend.Flags().Bool("no-show", false, "the patient did not attend")

	// The group already authenticated; the leaf only narrows the role.
	for _, cmd := range []*cobra.Command{check, create, update, cancel, attend} {
		r.use(cmd, middleware.RequirePsychologist)
	}
	group.AddCommand(list, show, check, create, update, cancel, attend)
	return group
}

func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "start time (HH:MM)")
	cmd.Flags().String("end", "", "end time (HH:MM), defaults to one hour after start")
	cmd.Flags().String("modality", "", "virtual, presencial or telefonica")
	cmd.Flags().String("notes", "", "notes before the session")
	cmd.Flags().String("video-url", "", "video call link")
}

func (r *Router) patientCommands(authenticated []middleware.Middleware) *cobra.Command {
	group := &cobra.Command{Use: "patients", Aliases: []string{"pacientes"}, Short: "Manage your patients"}
	r.use(group, append(authenticated, middleware.RequirePsychologist)...)

	list := &cobra.Command{Use: "list", Short: "List your patients", Args: cobra.NoArgs, RunE: r.patientHandler.List}
	list.Flags().StringP("search", "s", "", "filter by name or email")

	show := &cobra.Command{Use: "show <id>", Short: "Show a patient with records and appointments", Args: cobra.ExactArgs(1), RunE: r.patientHandler.Show}

	register := &cobra.Command{Use: "register", Short: "Register a new patient", Args: cobra.NoArgs, RunE: r.patientHandler.Register}
	addNameFlags(register)
	register.Flags().String("id-number", "", "national id document (10-20 characters)")
	register.Flags().String("email", "", "email, used to log in")
	register.Flags().String("phone", "", "phone (10-15 digits)")
	register.Flags().String("address", "", "address")
	register.Flags().String("birth-date", "", "birth date (YYYY-MM-DD), at least 13 years old")
	register.Flags().String("gender", "", "masculino, femenino, otro or prefiero_no_decir")
	register.Flags().String("emergency-name", "", "emergency contact name")
	register.Flags().String("emergency-phone", "", "emergency contact phone")
	register.Flags().String("emergency-relationship", "", "relationship with the emergency contact")
	register.Flags().String("allergies", "", "known allergies")
	register.Flags().String("medication", "", "current medication")
	register.Flags().String("conditions", "", "medical conditions")
	register.Flags().String("reason", "", "reason for consultation (20+ characters)")
	r.viewHandler.RegisterForm("register-patient", register)

	update := &cobra.Command{Use: "update <id>", Short: "Edit a patient's contact data", Args: cobra.ExactArgs(1), RunE: r.patientHandler.Update}
	update.Flags().String("first-name", "", "first name")
	update.Flags().String("last-name", "", "last name")
	update.Flags().String("id-number", "", "national id document")
	update.Flags().String("email", "", "email")
	update.Flags().String("phone", "", "phone")
	update.Flags().String("address", "", "address")

	remove := &cobra.Command{Use: "delete <id>", Short: "Remove a patient", Args: cobra.ExactArgs(1), RunE: r.patientHandler.Delete}
	remove.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	records := &cobra.Command{Use: "records <id>", Short: "Show a patient's emotional records", Args: cobra.ExactArgs(1), RunE: r.patientHandler.Records}
	records.Flags().Int("limit", 0, "maximum number of records")

	group.AddCommand(list, show, register, update, remove, records)
	return group
}

func addNameFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("middle-name", "", "middle name")
	cmd.Flags().String("last-name", "", "first surname")
	cmd.Flags().String("second-last-name", "", "second surname")
}

func (r *Router) psychologistCommands(authenticated []middleware.Middleware) *cobra.Command {
	group := &cobra.Command{Use: "psychologists", Aliases: []string{"psicologos"}, Short: "Manage psychologists"}
	r.use(group, append(authenticated, middleware.RequireAdmin)...)

	list := &cobra.Command{Use: "list", Short: "List psychologists", Args: cobra.NoArgs, RunE: r.psychologistHandler.List}
	show := &cobra.Command{Use: "show <id>", Short: "Show a psychologist", Args: cobra.ExactArgs(1), RunE: r.psychologistHandler.Show}

	register := &cobra.Command{Use: "register", Short: "Register a new psychologist", Args: cobra.NoArgs, RunE: r.psychologistHandler.Register}
	addNameFlags(register)
	register.Flags().String("email", "", "personal email, receives the credentials")
	register.Flags().String("phone", "", "phone (10-15 digits)")
	register.Flags().String("address", "", "address")
	register.Flags().String("birth-date", "", "birth date (YYYY-MM-DD), at least 23 years old")
	register.Flags().String("license", "", "professional license number")
	register.Flags().String("title", "", "professional title")
	register.Flags().String("specialty", "", "specialty")
	register.Flags().Int("experience", 0, "years of experience")
	register.Flags().String("institution", "", "training institution")
	r.viewHandler.RegisterForm("register-psychologist", register)

	toggle := &cobra.Command{Use: "toggle <id>", Short: "Activate or deactivate a psychologist", Args: cobra.ExactArgs(1), RunE: r.psychologistHandler.Toggle}
	toggle.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	group.AddCommand(list, show, register, toggle)
	return group
}

func (r *Router) recordCommands(authenticated []middleware.Middleware) *cobra.Command {
	group := &cobra.Command{Use: "records", Aliases: []string{"registros"}, Short: "Record and review how you feel"}
	r.use(group, append(authenticated, middleware.RequirePatient)...)

	add := &cobra.Command{Use: "add", Short: "Record how you feel", Args: cobra.NoArgs, RunE: r.emotionalRecordHandler.Add}
	add.Flags().Int("mood", 0, "mood from 1 (very low) to 10 (excellent)")
	add.Flags().Float64("intensity", 0, "emotion intensity from 0 to 1")
	add.Flags().String("notes", "", "what happened, in your own words")
	add.Flags().String("context", "", "context, e.g. work or family")
	add.Flags().String("location", "", "where you are")
	add.Flags().String("weather", "", "weather")
	r.viewHandler.RegisterForm("record", add)

	history := &cobra.Command{Use: "history", Short: "Show your emotional history", Args: cobra.NoArgs, RunE: r.emotionalRecordHandler.History}
	history.Flags().Int("limit", 0, "maximum number of records")

	analytics := &cobra.Command{Use: "analytics", Short: "Show your mood trend", Args: cobra.NoArgs, RunE: r.emotionalRecordHandler.Analytics}
	analytics.Flags().Int("days", 0, "period in days (default 30)")

	overview := &cobra.Command{Use: "overview", Short: "Show your statistics and psychologist", Args: cobra.NoArgs, RunE: r.emotionalRecordHandler.Overview}
	emotions := &cobra.Command{Use: "emotions", Short: "List the emotions the platform recognises", Args: cobra.NoArgs, RunE: r.emotionalRecordHandler.Emotions}

	group.AddCommand(add, history, analytics, overview, emotions)
	return group
}

func (r *Router) reportCommands(authenticated []middleware.Middleware) *cobra.Command {
	group := &cobra.Command{Use: "reports", Aliases: []string{"reportes"}, Short: "Platform reports"}
	r.use(group, append(authenticated, middleware.RequireAdmin)...)

	stats := &cobra.Command{Use: "stats", Short: "Platform statistics", Args: cobra.NoArgs, RunE: r.reportHandler.Statistics}
	general := &cobra.Command{Use: "general", Short: "Emotional records report", Args: cobra.NoArgs, RunE: r.reportHandler.General}
	general.Flags().Int("days", 0, "period in days (default 30)")
	psychologists := &cobra.Command{Use: "psychologists", Short: "Activity per psychologist", Args: cobra.NoArgs, RunE: r.reportHandler.Psychologists}
	users := &cobra.Command{Use: "users", Short: "Users by role and status", Args: cobra.NoArgs, RunE: r.reportHandler.Users}

	group.AddCommand(stats, general, psychologists, users)
	return group
}
