package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	t.Run("Defaults to info text", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		logger := ConfigureLogging()
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})

	t.Run("Honors level and json format", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		logger := ConfigureLogging()
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("Invalid level falls back to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "shout")
		t.Setenv("LOG_FORMAT", "")

		logger := ConfigureLogging()
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FOLIOLENS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FOLIOLENS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FOLIOLENS_TEST_MISSING", "fallback"))
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a temp dir so no real config file interferes.
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 120, cfg.AI.TimeoutSeconds)
	assert.InDelta(t, 0.058, cfg.Rates.MXNToUSD, 0.000001)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(10), cfg.Server.MaxUploadMB)
	assert.Equal(t, "es", cfg.Defaults.Language)
	assert.Equal(t, "MXN", cfg.Defaults.Currency)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FOLIOLENS_AI_MODEL", "gemini-2.5-pro")
	t.Setenv("FOLIOLENS_SERVER_ADDR", ":9999")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfigRejectsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FOLIOLENS_LOG_LEVEL", "shout")

	_, err := InitializeConfig()
	assert.Error(t, err)
}
