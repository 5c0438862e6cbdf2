package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-backend/config"
	deliveryHttp "hospital-backend/internal/delivery/http"
	"hospital-backend/internal/delivery/http/handler"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/infrastructure/cache"
	"hospital-backend/internal/infrastructure/database"
	"hospital-backend/internal/infrastructure/mail"
	"hospital-backend/internal/job"
	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/clock"
	"hospital-backend/pkg/jwt"
	"hospital-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	QueueNumber *service.QueueNumberService
	AuditPurge  *job.AuditPurgeJob
	Clock       clock.Clock
}

// LoadConfig configures logging and reads the configuration
func LoadConfig() (*config.Config, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.Info("Configuration loaded successfully")
	return cfg, nil
}

// OpenDatabase connects to PostgreSQL without touching the schema
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Clock:  clock.New(cfg.App.Location()),
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(db); err != nil {
			app.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, logrus.StandardLogger())
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// NewAuditLogUsecase wires the audit log usecase on its own, for maintenance commands
func NewAuditLogUsecase(cfg *config.Config, db *gorm.DB) usecase.AuditLogUsecase {
	log := logrus.StandardLogger()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(db, log, auditLogRepo)
	return usecase.NewAuditLogUsecase(db, log, auditLogRepo, auditService, clock.New(cfg.App.Location()))
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() {
	cfg, db, redisClient := app.Config, app.DB, app.RedisClient
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	notificationRepo := repository.NewNotificationRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	queueRepo := repository.NewQueueRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	resolver := service.NewReferenceResolver(roleRepo, patientRepo)
	app.QueueNumber = service.NewQueueNumberService(db, redisClient, queueRepo, log)
	mailDispatcher := service.NewMailDispatcher(mail.NewMailer(cfg.SMTP, log), log, cfg.SMTP.FromName)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, roleRepo, patientRepo, notificationRepo, jwtService, redisClient)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, resolver, auditService, app.Clock)
	queueUsecase := usecase.NewQueueUsecase(db, log, queueRepo, app.QueueNumber, resolver, auditService, app.Clock)
	patientUsecase := usecase.NewPatientUsecase(db, log, userRepo, profileRepo, patientRepo, auditService, mailDispatcher, cfg.Patient.DefaultPassword, app.Clock)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo, auditService, app.Clock)

	app.AuditPurge = job.NewAuditPurgeJob(auditLogUsecase, log, cfg.Audit.RetentionDays, cfg.App.Location())

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	queueHandler := handler.NewQueueHandler(queueUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		queueHandler,
		patientHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.QueueNumber.SyncOnStartup(ctx, app.Clock.Today()); err != nil {
		logrus.Warnf("Failed to sync queue counter, numbers will be recomputed from the database: %v", err)
	}
	cancel()

	if err := app.AuditPurge.Start(app.Config.Audit.PurgeCron); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-quit:
		logrus.Info("Shutting down server...")
	case serveErr = <-errCh:
		logrus.Errorf("Failed to start server: %v", serveErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.AuditPurge.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
	return serveErr
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
