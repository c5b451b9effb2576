// Package config provides database configuration management.
package config

import (
	"fmt"
	"strings"

	appConfig "github.com/festy23/league_manager/internal/config"
	"github.com/festy23/league_manager/pkg/retry"
)

const (
	// DriverPostgres selects the PostgreSQL store.
	DriverPostgres = "postgres"
	// DriverSQLite selects the embedded SQLite store.
	DriverSQLite = "sqlite"
)

// Config holds database connection configuration.
type Config struct {
	// Driver is either DriverPostgres or DriverSQLite.
	Driver string
	// DSN is a complete connection string. When set it wins over the
	// individual connection fields below.
	DSN      string
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// BuildDSN constructs the driver connection string from configuration.
func BuildDSN(cfg Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	if cfg.Driver == DriverSQLite {
		return cfg.DBName
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
// DB_DSN falls back to DBHOST, the variable the first deployment used.
func LoadConfigFromEnv() Config {
	driver := appConfig.GetEnv("DB_DRIVER", DriverPostgres)
	defaultName := "leagues"
	if driver == DriverSQLite {
		defaultName = "leagues.db"
	}
	return Config{
		Driver:   driver,
		DSN:      appConfig.GetEnv("DB_DSN", appConfig.GetEnv("DBHOST", "")),
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appConfig.GetEnv("DB_NAME", defaultName),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// Validate validates database configuration.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: %s, %s)", c.Driver, DriverPostgres, DriverSQLite)
	}
	if c.DSN == "" && c.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

// SanitizeError removes sensitive information (password) from error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	if cfg.Password != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	}
	if cfg.DSN != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.DSN, "<dsn>")
	}
	safeDSN := fmt.Sprintf("host=%s user=%s password=*** dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
	dsn := BuildDSN(Config{
		Host: cfg.Host, User: cfg.User, Password: cfg.Password, DBName: cfg.DBName,
		Port: cfg.Port, SSLMode: cfg.SSLMode, TimeZone: cfg.TimeZone,
	})
	errMsg = strings.ReplaceAll(errMsg, dsn, safeDSN)
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads retry configuration from environment variables.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}
