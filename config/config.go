package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/swiss-tournament/observability"
)

// Postgres driver names accepted in postgres.driver.
const (
	DriverPG  = "pgdriver"
	DriverPGX = "pgx"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN          string `yaml:"dsn"`
	Driver       string `yaml:"driver"` // pgdriver|pgx
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // json|text
}

// LoadConfig loads the configuration from a YAML file. When the file cannot
// be read the configuration comes from the environment alone.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Postgres.Driver = v
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS value: %w", err)
		}
		cfg.Postgres.MaxOpenConns = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn not set and DATABASE_URL environment variable not set")
	}

	return applyDefaults(&cfg)
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	cfg.Postgres.Driver = os.Getenv("DB_DRIVER")
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS value: %w", err)
		}
		cfg.Postgres.MaxOpenConns = n
	}

	cfg.Observability.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.Observability.LogFormat = os.Getenv("LOG_FORMAT")
	cfg.Observability.Environment = os.Getenv("ENV")

	return applyDefaults(&cfg)
}

func applyDefaults(cfg *Config) (*Config, error) {
	switch cfg.Postgres.Driver {
	case "":
		cfg.Postgres.Driver = DriverPG
	case DriverPG, DriverPGX:
	default:
		return nil, fmt.Errorf("unknown postgres driver %q (want %s or %s)", cfg.Postgres.Driver, DriverPG, DriverPGX)
	}
	if cfg.Postgres.MaxOpenConns < 0 {
		return nil, fmt.Errorf("max_open_conns must not be negative, got %d", cfg.Postgres.MaxOpenConns)
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
	if cfg.Observability.LogFormat == "" {
		cfg.Observability.LogFormat = "json"
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "development"
	}
	return cfg, nil
}

func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		ServiceName: "swiss-tournament",
		Environment: appCfg.Observability.Environment,
		Version:     "0.1.0", // Could inject via `ldflags`
		LogLevel:    appCfg.Observability.LogLevel,
		LogFormat:   appCfg.Observability.LogFormat,
	}
}
