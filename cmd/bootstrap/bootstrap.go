package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellbeing-client/config"
	"wellbeing-client/internal/delivery/cli"
	"wellbeing-client/internal/delivery/cli/handler"
	"wellbeing-client/internal/delivery/cli/middleware"
	"wellbeing-client/internal/delivery/cli/output"
	domainRepo "wellbeing-client/internal/domain/repository"
	"wellbeing-client/internal/infrastructure/api"
	"wellbeing-client/internal/infrastructure/cache"
	"wellbeing-client/internal/repository"
	"wellbeing-client/internal/service"
	"wellbeing-client/internal/usecase"
	"wellbeing-client/pkg/jwt"
	"wellbeing-client/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tokenLeeway tolerates clock skew between the terminal and the backend.
const tokenLeeway = 30 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Printer     *output.Printer
	Command     *cobra.Command
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, stdout, stderr io.Writer) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.Log, stderr)
	app.Log.Debugf("Configuration loaded (env %s, api %s)", cfg.App.Env, cfg.API.BaseURL)

	// Initialize session store
	sessionRepo, err := app.sessionRepository(ctx)
	if err != nil {
		return nil, err
	}

	app.Printer = output.NewPrinter(stdout, stderr)
	app.Command = initializeCommands(cfg, app.Log, sessionRepo, app.Printer)

	return app, nil
}

// setupLogger configures a logrus logger on stderr so stdout carries only
// command output.
func setupLogger(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func (app *App) sessionRepository(ctx context.Context) (domainRepo.SessionRepository, error) {
	cfg := app.Config
	if cfg.Session.Driver != config.SessionDriverRedis {
		return repository.NewFileSessionRepository(cfg.Session.File), nil
	}

	redisClient, err := cache.NewRedisClient(ctx, app.Log, cfg.Redis)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient

	return repository.NewRedisSessionRepository(redisClient, cfg.Session.Name, cfg.Session.TTL), nil
}

// initializeCommands wires every layer and returns the root command.
func initializeCommands(cfg *config.Config, log *logrus.Logger, sessionRepo domainRepo.SessionRepository, printer *output.Printer) *cobra.Command {
	// Initialize session
	jwtService := jwt.NewJWTService(tokenLeeway)
	sessionManager := service.NewSessionManager(log, sessionRepo, jwtService)

	// Initialize API client
	client := api.NewClient(log, cfg.API, sessionManager)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	authRepo := repository.NewAuthRepository(client)
	appointmentRepo := repository.NewAppointmentRepository(client)
	patientRepo := repository.NewPatientRepository(client)
	psychologistRepo := repository.NewPsychologistRepository(client)
	recordRepo := repository.NewEmotionalRecordRepository(client)
	reportRepo := repository.NewReportRepository(client)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, authRepo, sessionManager)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, appointmentRepo)
	psychologistUsecase := usecase.NewPsychologistUsecase(log, psychologistRepo)
	recordUsecase := usecase.NewEmotionalRecordUsecase(log, recordRepo)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, printer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, printer)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, printer)
	psychologistHandler := handler.NewPsychologistHandler(psychologistUsecase, customValidator, printer)
	recordHandler := handler.NewEmotionalRecordHandler(recordUsecase, customValidator, printer)
	reportHandler := handler.NewReportHandler(reportUsecase, printer)
	viewHandler := handler.NewViewHandler(appointmentHandler, patientHandler, psychologistHandler, recordHandler, reportHandler, printer)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	// Initialize router
	router := cli.NewRouter(printer, authHandler, appointmentHandler, patientHandler, psychologistHandler, recordHandler, reportHandler, viewHandler, authMiddleware)
	return router.Setup()
}

// Run executes the command line and returns the process exit code.
func (app *App) Run(ctx context.Context, args []string) int {
	defer app.Close()

	app.Command.SetArgs(args)
	if err := app.Command.ExecuteContext(ctx); err != nil {
		app.Printer.Error(err)
		return 1
	}
	return 0
}

// Close releases the Redis connection when one was opened.
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Debugf("Failed to close Redis: %v", err)
		}
		app.RedisClient = nil
	}
}

// Main is the process entry point: it builds the app, runs os.Args and
// returns the exit code. Ctrl+C cancels in-flight requests.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return app.Run(ctx, os.Args[1:])
}
