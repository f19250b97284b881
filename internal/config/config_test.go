package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 5000, cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "fyyur:listings", cfg.NotifyChannel)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.PrometheusEnabled)
	assert.Equal(t, "127.0.0.1:5000", cfg.HTTPAddr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("PROMETHEUS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REQUEST_TIMEOUT", "750ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.True(t, cfg.PrometheusEnabled)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "HTTP_PORT")
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("PROMETHEUS_ENABLED", "maybe")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "PROMETHEUS_ENABLED")
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		HTTPPort:       70000,
		DBDriver:       "mysql",
		DatabaseURL:    "",
		LogLevel:       "loud",
		LogFormat:      "xml",
		RateLimitRPS:   0,
		RateLimitBurst: 0,
		RequestTimeout: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"HTTP_PORT", "DB_DRIVER", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REQUEST_TIMEOUT"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "fyyur.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=6001\nLOG_FORMAT=json\n"), 0o600))
	t.Setenv("LOG_FORMAT", "text")
	// registered with t.Setenv so the value loaded below is undone after the test
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 6001, cfg.HTTPPort)
	assert.Equal(t, "text", cfg.LogFormat)

	assert.ErrorContains(t, LoadEnvFile(filepath.Join(dir, "missing.env")), "missing.env")
}
