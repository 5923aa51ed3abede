package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Store   StoreConfig
	DB      DBConfig
	Queue   QueueConfig
	Redis   RedisConfig
	Session SessionConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Port          string
	Env           string
	Version       string
	Timezone      string
	ResponseDelay time.Duration
	SeedDemoData  bool
}

type LogConfig struct {
	Level string
}

// StoreConfig selects where appointments, doctors and patients live
type StoreConfig struct {
	Driver    string
	LegacyIDs bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	LogSQL   bool
}

type QueueConfig struct {
	Driver string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverRedis    = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("APP_RESPONSE_DELAY", "0s")
	v.SetDefault("APP_SEED_DEMO_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("STORE_LEGACY_IDS", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_LOG_SQL", false)
	v.SetDefault("QUEUE_DRIVER", DriverMemory)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_SECRET", "change-me")
	v.SetDefault("SESSION_EXPIRY", "12h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// LoadConfig reads an optional .env file at path, then the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	responseDelay, err := time.ParseDuration(v.GetString("APP_RESPONSE_DELAY"))
	if err != nil {
		return nil, errors.New("APP_RESPONSE_DELAY must be a duration such as 100ms")
	}

	sessionExpiry, err := time.ParseDuration(v.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 12 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			Version:       v.GetString("APP_VERSION"),
			Timezone:      v.GetString("APP_TIMEZONE"),
			ResponseDelay: responseDelay,
			SeedDemoData:  v.GetBool("APP_SEED_DEMO_DATA"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(v.GetString("STORE_DRIVER")),
			LegacyIDs: v.GetBool("STORE_LEGACY_IDS"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			LogSQL:   v.GetBool("DB_LOG_SQL"),
		},
		Queue: QueueConfig{
			Driver: strings.ToLower(v.GetString("QUEUE_DRIVER")),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			Expiry: sessionExpiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects unknown drivers and timezones.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverPostgres, DriverMySQL:
	default:
		return errors.New("STORE_DRIVER must be one of memory, postgres, mysql")
	}
	switch c.Queue.Driver {
	case DriverMemory, DriverRedis:
	default:
		return errors.New("QUEUE_DRIVER must be one of memory, redis")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return errors.New("APP_TIMEZONE is not a known IANA zone")
	}
	return nil
}

// Location resolves the configured timezone, defaulting to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
