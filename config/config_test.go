package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
postgres:
  dsn: postgres://file@localhost:5432/tournament
  driver: pgx
  max_open_conns: 8
observability:
  environment: staging
  log_level: debug
  log_format: text
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://file@localhost:5432/tournament", cfg.Postgres.DSN)
	assert.Equal(t, DriverPGX, cfg.Postgres.Driver)
	assert.Equal(t, 8, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "staging", cfg.Observability.Environment)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "text", cfg.Observability.LogFormat)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
postgres:
  dsn: postgres://file@localhost:5432/tournament
observability:
  log_level: debug
`)
	t.Setenv("DATABASE_URL", "postgres://env@db:5432/tournament")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@db:5432/tournament", cfg.Postgres.DSN)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, 3, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, DriverPG, cfg.Postgres.Driver)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestLoadConfigFallsBackToEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@db:5432/tournament")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@db:5432/tournament", cfg.Postgres.DSN)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{
			name: "env only without DATABASE_URL",
			env:  map[string]string{"DATABASE_URL": ""},
		},
		{
			name: "unknown driver",
			body: "postgres:\n  dsn: postgres://x\n  driver: mysql\n",
		},
		{
			name: "bad max open conns",
			body: "postgres:\n  dsn: postgres://x\n",
			env:  map[string]string{"DB_MAX_OPEN_CONNS": "many"},
		},
		{
			name: "malformed yaml",
			body: "postgres: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestToObsConfig(t *testing.T) {
	obsCfg := ToObsConfig(&Config{Observability: ObservabilityConfig{
		Environment: "test", LogLevel: "error", LogFormat: "text",
	}})
	assert.Equal(t, "swiss-tournament", obsCfg.ServiceName)
	assert.Equal(t, "test", obsCfg.Environment)
	assert.Equal(t, "error", obsCfg.LogLevel)
	assert.Equal(t, "text", obsCfg.LogFormat)
}
