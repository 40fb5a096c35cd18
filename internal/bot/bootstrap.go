package bot

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ResolveWebhookEndpoint derives the full webhook callback URL and the
// local HTTP path updates will arrive on. An explicit path inside
// baseURL wins; otherwise explicitPath is used; otherwise the path is
// derived from the bot token (the standard way to keep the endpoint
// unguessable).
func ResolveWebhookEndpoint(baseURL, explicitPath, token string) (string, string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("webhook base URL must be absolute: %s", baseURL)
	}

	path := u.Path
	if path == "" || path == "/" {
		path = explicitPath
		if path == "" {
			path = "/" + token
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u.Path = path
	return u.String(), path, nil
}

// StartWebhook reconciles the registered webhook URL with the desired
// one. Registration is skipped when the URLs already match, to avoid
// churning Telegram's rate limits. If the status query itself fails, a
// blind registration is attempted as a fallback, unless the failure is
// a rate limit, in which case retrying would only compound it.
func (b *Bot) StartWebhook(desiredURL string) error {
	info, err := b.api.GetWebhookInfo()
	if err != nil {
		if isRateLimited(err) {
			b.logger.Error("Webhook status query rate-limited, not retrying", zap.Error(err))
			return fmt.Errorf("webhook status query rate-limited: %w", err)
		}
		b.logger.Warn("Failed to query webhook info, registering blindly", zap.Error(err))
		return b.registerWebhook(desiredURL)
	}

	if info.URL == desiredURL {
		b.logger.Info("Webhook already registered, skipping",
			zap.String("url", info.URL),
			zap.Int("pending_updates", info.PendingUpdateCount),
		)
		return nil
	}

	return b.registerWebhook(desiredURL)
}

// registerWebhook registers the given callback URL with Telegram
func (b *Bot) registerWebhook(desiredURL string) error {
	webhookConfig, err := tgbotapi.NewWebhook(desiredURL)
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	webhookConfig.MaxConnections = 40

	if _, err := b.api.Request(webhookConfig); err != nil {
		b.logger.Error("Failed to set webhook", zap.Error(err), zap.String("webhook_url", desiredURL))
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	b.logger.Info("Webhook registered", zap.String("url", desiredURL))
	return nil
}

// isRateLimited reports whether err is a Telegram 429 response
func isRateLimited(err error) bool {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == http.StatusTooManyRequests || tgErr.RetryAfter > 0
	}
	return false
}
