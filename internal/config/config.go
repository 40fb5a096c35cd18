package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	TelegramToken string

	// Operator identities, one per supported language
	OperatorRUID int64
	OperatorENID int64

	// Bot mode configuration
	WebhookBaseURL string // If set, use webhook mode; if empty, use polling mode
	WebhookPath    string // Optional explicit webhook path
	Port           string
}

// WebhookMode reports whether the bot should receive updates via webhook
func (c *Config) WebhookMode() bool {
	return c.WebhookBaseURL != ""
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Telegram Bot Token (required)
	config.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	// Operator IDs (both required)
	var err error
	config.OperatorRUID, err = parseOperatorID("OPERATOR_ID_RU")
	if err != nil {
		return nil, err
	}
	config.OperatorENID, err = parseOperatorID("OPERATOR_ID_EN")
	if err != nil {
		return nil, err
	}

	// Webhook configuration (optional; presence of the base URL selects webhook mode)
	config.WebhookBaseURL = strings.TrimSpace(os.Getenv("WEBHOOK_BASE_URL"))
	config.WebhookPath = strings.TrimSpace(os.Getenv("WEBHOOK_PATH"))

	config.Port = os.Getenv("PORT")
	if config.Port == "" {
		config.Port = "8080" // Default port
	}

	return config, nil
}

// parseOperatorID reads a required operator identity from the environment
func parseOperatorID(name string) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, fmt.Errorf("%s is required (Telegram user ID of the operator)", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}
