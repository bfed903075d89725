package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Database    DatabaseConfig
	Idempotency IdempotencyConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName          string        `envconfig:"DB_NAME" default:"ledger"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"internal/db/migrations"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`   // debug, info, warn, error
	Format string `envconfig:"LOG_FORMAT" default:"json"`  // json, text
}

// IdempotencyConfig controls cleanup of orphaned idempotency reservations
type IdempotencyConfig struct {
	StaleAfter    time.Duration `envconfig:"IDEMPOTENCY_STALE_AFTER" default:"24h"`
	PurgeInterval time.Duration `envconfig:"IDEMPOTENCY_PURGE_INTERVAL" default:"1h"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.Database.MaxOpenConns < c.Database.MaxIdleConns {
		return fmt.Errorf("max open conns (%d) must be >= max idle conns (%d)",
			c.Database.MaxOpenConns, c.Database.MaxIdleConns)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logger.Format] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	if c.Idempotency.StaleAfter <= 0 {
		return fmt.Errorf("idempotency stale-after must be positive")
	}
	if c.Idempotency.PurgeInterval <= 0 {
		return fmt.Errorf("idempotency purge interval must be positive")
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
