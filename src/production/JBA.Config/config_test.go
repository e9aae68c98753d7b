package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JOAN_CLIENT_ID", "client-id")
	t.Setenv("JOAN_CLIENT_SECRET", "client-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://portal.getjoan.com/api/token/", cfg.Joan.TokenURL)
	assert.Equal(t, "https://portal.getjoan.com/api/v1.0/devices/", cfg.Joan.DevicesURL)
	assert.Equal(t, 10*time.Second, cfg.Joan.RequestTimeout)
	assert.Equal(t, 90, cfg.Alerting.BatteryThreshold)
	assert.Empty(t, cfg.Alerting.SlackWebhookURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BATTERY_THRESHOLD", "25")
	t.Setenv("SLACK_WEBHOOK", "https://hooks.slack.com/services/T000/B000/XXX")
	t.Setenv("JOAN_REQUEST_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Alerting.BatteryThreshold)
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/XXX", cfg.Alerting.SlackWebhookURL)
	assert.Equal(t, 5*time.Second, cfg.Joan.RequestTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestValidateMissingCredentials(t *testing.T) {
	t.Setenv("JOAN_CLIENT_ID", "")
	t.Setenv("JOAN_CLIENT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JOAN_CLIENT_ID")
}

func TestValidateThresholdRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BATTERY_THRESHOLD", "150")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "battery threshold")
}
