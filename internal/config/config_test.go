package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPERATOR_ID_RU", "1001")
	t.Setenv("OPERATOR_ID_EN", "1002")
	t.Setenv("WEBHOOK_BASE_URL", "")
	t.Setenv("WEBHOOK_PATH", "")
	t.Setenv("PORT", "")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, int64(1001), cfg.OperatorRUID)
	assert.Equal(t, int64(1002), cfg.OperatorENID)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.WebhookMode())
}

func TestLoadFromEnv_WebhookMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_BASE_URL", "https://bot.example.com")
	t.Setenv("WEBHOOK_PATH", "/tg-hook")
	t.Setenv("PORT", "9090")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.WebhookMode())
	assert.Equal(t, "https://bot.example.com", cfg.WebhookBaseURL)
	assert.Equal(t, "/tg-hook", cfg.WebhookPath)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	testCases := []struct {
		name  string
		unset string
	}{
		{"missing token", "TELEGRAM_BOT_TOKEN"},
		{"missing ru operator", "OPERATOR_ID_RU"},
		{"missing en operator", "OPERATOR_ID_EN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")

			_, err := LoadFromEnv()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.unset)
		})
	}
}

func TestLoadFromEnv_InvalidOperatorID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPERATOR_ID_EN", "not-a-number")

	_, err := LoadFromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OPERATOR_ID_EN")
}
