package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medical-frontdesk/config"
	deliveryHttp "go-medical-frontdesk/internal/delivery/http"
	"go-medical-frontdesk/internal/delivery/http/handler"
	"go-medical-frontdesk/internal/delivery/http/middleware"
	"go-medical-frontdesk/internal/service"
	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/jwt"
	"go-medical-frontdesk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const configPath = ".env"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize stores
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		if st != nil {
			st.close()
		}
		return nil, err
	}
	app.DB = st.db
	app.RedisClient = st.redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, log, st)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, st *stores) *http.Server {
	location := cfg.App.Location()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log, st.auditLogs)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(log, st.appointments, st.doctors, st.patients, auditService, location)
	doctorUsecase := usecase.NewDoctorUsecase(log, st.doctors, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, st.patients, auditService)
	queueUsecase := usecase.NewQueueUsecase(log, st.queue, auditService)
	healthUsecase := usecase.NewHealthUsecase(log, st.appointments, st.doctors, st.patients, st.queue, auditService, usecase.HealthOptions{
		Version:  cfg.App.Version,
		Location: location,
		Checks:   st.checks,
	})
	sessionUsecase := usecase.NewSessionUsecase(log, jwtService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditService)

	// Initialize router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		Log:                log,
		ResponseDelay:      cfg.App.ResponseDelay,
		AppointmentHandler: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		DoctorHandler:      handler.NewDoctorHandler(doctorUsecase, customValidator),
		PatientHandler:     handler.NewPatientHandler(patientUsecase, customValidator),
		QueueHandler:       handler.NewQueueHandler(queueUsecase, customValidator),
		HealthHandler:      handler.NewHealthHandler(healthUsecase, customValidator),
		SessionHandler:     handler.NewSessionHandler(sessionUsecase, customValidator),
		AuditLogHandler:    handler.NewAuditLogHandler(auditLogUsecase),
		SessionMiddleware:  middleware.NewSessionMiddleware(jwtService),
		CORSMiddleware:     middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins),
	})

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Store driver: %s, queue driver: %s", app.Config.Store.Driver, app.Config.Queue.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
