package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
environment = "development"
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
workouts_csv_path = "./data/workouts.csv"
static_root_path = "./public"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"

[production]
environment = "production"
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/liftlog/service.log"
sentry_enabled = true
workouts_csv_path = "/var/www/liftlog/data/workouts.csv"
static_root_path = "/var/www/liftlog/public"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, "./data/workouts.csv", cfg.WorkoutsCsvPath)
	assert.Empty(t, cfg.WorkoutsCsvURL)
	assert.Equal(t, "./public", cfg.StaticRootPath)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, "/var/log/liftlog/service.log", cfg.LogsPath)
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("dev", "/no/such/config.toml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}
