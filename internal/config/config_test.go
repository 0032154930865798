package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, BackendDir, cfg.ChartsBackend)
	assert.Equal(t, "chart", cfg.ChartsDir)
	assert.Equal(t, 2*time.Second, cfg.WSInterval)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := `
port: "5001"
log_level: debug
model:
  path: /models/rul.json
charts:
  backend: sqlite
  db_path: /tmp/charts.db
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))
	t.Setenv("RUL_TELEMETRY_PATH", "/data/train.txt")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/models/rul.json", cfg.ModelPath)
	assert.Equal(t, "/data/train.txt", cfg.TelemetryPath)
	assert.Equal(t, BackendSQLite, cfg.ChartsBackend)
	assert.Equal(t, "/tmp/charts.db", cfg.ChartsDBPath)
}

func TestValidate(t *testing.T) {
	base := Config{ChartsBackend: BackendDir, ChartsDir: "chart", WSInterval: time.Second}
	require.NoError(t, base.Validate())

	bad := base
	bad.ChartsBackend = "s3"
	assert.Error(t, bad.Validate())

	bad = base
	bad.ChartsDir = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.WSInterval = 0
	assert.Error(t, bad.Validate())
}
