package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := config.Load()

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.API.Timeout)
	assert.Equal(t, 180*time.Second, cfg.API.LongTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/login", cfg.Routes.Login)
	assert.Equal(t, "/planner", cfg.Routes.Home)
	assert.False(t, cfg.Tracing.Enabled)
	assert.NotEmpty(t, cfg.Storage.StateFile)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_TIMEOUT_SECONDS", "30")
	t.Setenv("API_LONG_TIMEOUT_SECONDS", "300")
	t.Setenv("HOME_ROUTE", "/dashboard")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")

	cfg := config.Load()

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 300*time.Second, cfg.API.LongTimeout)
	assert.Equal(t, "/dashboard", cfg.Routes.Home)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRate)

	require.NoError(t, cfg.Validate())
}

func TestLoad_GarbageValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("TRACING_ENABLED", "maybe")

	cfg := config.Load()

	assert.Equal(t, 120*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestValidate_Rejects(t *testing.T) {
	cfg := config.Load()
	cfg.API.BaseURL = ""
	require.Error(t, cfg.Validate())

	cfg = config.Load()
	cfg.Tracing.SampleRate = 1.5
	require.Error(t, cfg.Validate())

	cfg = config.Load()
	cfg.Storage.StateFile = ""
	require.Error(t, cfg.Validate())
}
