package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/config"
)

const sample = `
server:
  port: "9090"
  env: production
backend:
  base_url: http://api.internal/api
storage:
  url: https://project.storage.example
  bucket: fotos
session:
  driver: postgres
  ttl: 2h
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	v, err := config.LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	cfg, err := config.ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "http://api.internal/api", cfg.Backend.BaseURL)
	assert.Equal(t, "fotos", cfg.Storage.Bucket)
	assert.Equal(t, 1920, cfg.Storage.MaxDimension)
	assert.Equal(t, config.SessionDriverPostgres, cfg.Session.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, 10, cfg.Database.ConnectRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRAVEL_BACKEND_BASE_URL", "http://override/api")
	t.Setenv("TRAVEL_SESSION_DRIVER", "redis")

	v, err := config.LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	cfg, err := config.ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "http://override/api", cfg.Backend.BaseURL)
	assert.Equal(t, config.SessionDriverRedis, cfg.Session.Driver)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	v, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg, err := config.ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestParseConfig_RejectsUnknownDriver(t *testing.T) {
	v, err := config.LoadConfig(writeConfig(t, "session:\n  driver: memcached\n"))
	require.NoError(t, err)

	_, err = config.ParseConfig(v)

	assert.ErrorContains(t, err, "session.driver")
}
