package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "session.json", cfg.Session.FilePath)
	assert.Equal(t, "*/30 * * * *", cfg.Watch.CronSchedule)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://inventory.example.com/api")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
	t.Setenv("SESSION_FILE", "/tmp/sess.json")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "https://inventory.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/sess.json", cfg.Session.FilePath)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
}

func TestValidate_RejectsEmptyBaseURL(t *testing.T) {
	cfg := &Config{
		API:     APIConfig{BaseURL: "", Timeout: time.Second},
		Session: SessionConfig{FilePath: "session.json"},
	}
	require.Error(t, cfg.Validate())
}
