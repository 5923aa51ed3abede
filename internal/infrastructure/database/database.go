package database

import (
	"context"
	"fmt"

	"go-medical-frontdesk/config"
	"go-medical-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the SQL store selected by driver.
func NewConnection(driver string, cfg config.DBConfig, timezone string) (*gorm.DB, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresConnection(cfg, timezone)
	case config.DriverMySQL:
		return NewMySQLConnection(cfg, timezone)
	}
	return nil, fmt.Errorf("unsupported store driver %q", driver)
}

func gormConfig(cfg config.DBConfig) *gorm.Config {
	level := logger.Warn
	if cfg.LogSQL {
		level = logger.Info
	}
	return &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	return nil
}

// AutoMigrate creates or updates the front-desk tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.AuditLog{},
	)
}

// Ping reports whether the database answers.
func Ping(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
