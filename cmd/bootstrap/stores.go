package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go-medical-frontdesk/config"
	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
	"go-medical-frontdesk/internal/infrastructure/cache"
	"go-medical-frontdesk/internal/infrastructure/database"
	"go-medical-frontdesk/internal/repository"
	"go-medical-frontdesk/internal/seed"
	"go-medical-frontdesk/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditLogCapacity = 500

// stores bundles the repositories selected by STORE_DRIVER and QUEUE_DRIVER.
type stores struct {
	db           *gorm.DB
	redisClient  *redis.Client
	appointments domainRepo.AppointmentRepository
	doctors      domainRepo.DoctorRepository
	patients     domainRepo.PatientRepository
	queue        domainRepo.QueueRepository
	auditLogs    domainRepo.AuditLogRepository
	checks       map[string]usecase.HealthCheck
}

func (s *stores) close() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	st := &stores{checks: map[string]usecase.HealthCheck{}}
	location := cfg.App.Location()

	switch cfg.Store.Driver {
	case config.DriverMemory:
		openMemoryStores(st, cfg, location)
	default:
		if err := openSQLStores(ctx, st, cfg, location, log); err != nil {
			return st, err
		}
	}

	switch cfg.Queue.Driver {
	case config.DriverRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return st, err
		}
		st.redisClient = client
		st.checks["redis"] = cache.Ping(client)

		queue := repository.NewQueueRedisRepository(client)
		if cfg.App.SeedDemoData {
			if err := queue.Seed(ctx, seed.QueueItems(time.Now())...); err != nil {
				return st, fmt.Errorf("failed to seed queue: %w", err)
			}
		}
		st.queue = queue
		log.Info("Queue backed by Redis")
	default:
		queue := repository.NewQueueMemoryRepository()
		if cfg.App.SeedDemoData {
			queue.Seed(seed.QueueItems(time.Now())...)
		}
		st.queue = queue
	}

	return st, nil
}

func openMemoryStores(st *stores, cfg *config.Config, location *time.Location) {
	legacy := repository.WithLegacyIDs(cfg.Store.LegacyIDs)

	appointments := repository.NewAppointmentMemoryRepository(legacy)
	doctors := repository.NewDoctorMemoryRepository(legacy)
	patients := repository.NewPatientMemoryRepository(legacy)

	if cfg.App.SeedDemoData {
		doctors.Seed(seed.Doctors(location)...)
		patients.Seed(seed.Patients(location)...)
		appointments.Seed(seed.Appointments(location)...)
	}

	st.appointments = appointments
	st.doctors = doctors
	st.patients = patients
	st.auditLogs = repository.NewAuditLogMemoryRepository(auditLogCapacity)
}

func openSQLStores(ctx context.Context, st *stores, cfg *config.Config, location *time.Location, log *logrus.Logger) error {
	db, err := database.NewConnection(cfg.Store.Driver, cfg.DB, cfg.App.Timezone)
	if err != nil {
		return err
	}
	st.db = db
	st.checks["database"] = database.Ping(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	st.appointments = repository.NewAppointmentRepository(db)
	st.doctors = repository.NewDoctorRepository(db)
	st.patients = repository.NewPatientRepository(db)
	st.auditLogs = repository.NewAuditLogRepository(db)

	if !cfg.App.SeedDemoData {
		return nil
	}
	return seedSQLStores(ctx, st, location, log)
}

// seedSQLStores loads the demo records into empty tables only.
func seedSQLStores(ctx context.Context, st *stores, location *time.Location, log *logrus.Logger) error {
	count, err := st.doctors.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, d := range seed.Doctors(location) {
			if err := st.doctors.Create(ctx, &d); err != nil {
				return fmt.Errorf("failed to seed doctor %s: %w", d.ID, err)
			}
		}
	}

	if count, err = st.patients.Count(ctx); err != nil {
		return err
	}
	if count == 0 {
		for _, p := range seed.Patients(location) {
			if err := st.patients.Create(ctx, &p); err != nil {
				return fmt.Errorf("failed to seed patient %s: %w", p.ID, err)
			}
		}
	}

	if count, err = st.appointments.Count(ctx); err != nil {
		return err
	}
	if count == 0 {
		for _, a := range seed.Appointments(location) {
			if err := st.appointments.Create(ctx, &a); err != nil {
				return fmt.Errorf("failed to seed appointment %s: %w", a.ID, err)
			}
		}
	}

	log.WithField("tables", []string{
		(entity.Doctor{}).TableName(),
		(entity.Patient{}).TableName(),
		(entity.Appointment{}).TableName(),
	}).Info("Demo data ready")
	return nil
}
