// Package config provides application configuration management.
// It loads configuration from an optional TOML file and environment variables,
// with environment variables taking precedence over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Database drivers supported by the persistence layer.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `toml:"host"`
	Port         int           `toml:"port"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	Environment  string        `toml:"environment"`
}

// DatabaseConfig holds the store configuration.
// Path is the SQLite file used when Driver is "sqlite"; URL is the DSN used for "postgres".
type DatabaseConfig struct {
	Driver          string        `toml:"driver"`
	Path            string        `toml:"path"`
	URL             string        `toml:"url"`
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

// RedisConfig holds Redis configuration for survey sessions.
// An empty URL keeps sessions in process memory.
type RedisConfig struct {
	URL        string        `toml:"url"`
	Password   string        `toml:"password"`
	DB         int           `toml:"db"`
	SessionTTL time.Duration `toml:"session_ttl"`
}

// RateLimitConfig holds limits for survey submission endpoints.
type RateLimitConfig struct {
	SubmitMaxAttempts int           `toml:"submit_max_attempts"`
	SubmitWindow      time.Duration `toml:"submit_window"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			Environment:  "development",
		},
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			Path:            "walletive.db",
			URL:             "",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 0,
		},
		Redis: RedisConfig{
			URL:        "",
			DB:         0,
			SessionTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			SubmitMaxAttempts: 10,
			SubmitWindow:      1 * time.Minute,
		},
	}
}

// Load loads configuration from WALLETIVE_CONFIG (if set) and environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := getEnv("WALLETIVE_CONFIG", ""); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFile overlays the values found in a TOML file onto cfg.
// Keys missing from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvAsInt("SERVER_PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.Environment = getEnv("ENV", c.Server.Environment)

	c.Database.Driver = getEnv("DATABASE_DRIVER", c.Database.Driver)
	c.Database.Path = getEnv("DATABASE_PATH", c.Database.Path)
	c.Database.URL = getEnv("DATABASE_URL", c.Database.URL)
	c.Database.MaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = getEnvAsInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = getEnvAsDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)

	c.Redis.URL = getEnv("REDIS_URL", c.Redis.URL)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)
	c.Redis.SessionTTL = getEnvAsDuration("SURVEY_SESSION_TTL", c.Redis.SessionTTL)

	c.RateLimit.SubmitMaxAttempts = getEnvAsInt("SUBMIT_RATE_LIMIT", c.RateLimit.SubmitMaxAttempts)
	c.RateLimit.SubmitWindow = getEnvAsDuration("SUBMIT_RATE_WINDOW", c.RateLimit.SubmitWindow)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
