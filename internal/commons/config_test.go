package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9191
functions:
  baseUrl: https://functions.example.com
  timeout: 45s
upload:
  maxBytes: 1048576
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "https://functions.example.com", cfg.Functions.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Functions.Timeout)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_FileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("functions:\n  baseUrl: http://backend:7071\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100*time.Second, cfg.Functions.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 1\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("FUNCTIONS_BASE_URL", "http://from-env:7071")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:7071", cfg.Functions.BaseURL)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
