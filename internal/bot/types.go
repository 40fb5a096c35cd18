package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"relaybot/internal/models"
	"relaybot/internal/session"
	"relaybot/internal/ticket"
)

// API is the subset of the Telegram client the bot uses. *tgbotapi.BotAPI
// satisfies it; tests substitute a recording fake.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot represents the Telegram relay bot
type Bot struct {
	api      API
	sessions *session.Store
	tickets  *ticket.Store

	// Fixed operator set: language -> operator chat id, and the reverse
	// for classifying inbound senders. Immutable after construction.
	operators map[models.Language]int64
	languages map[int64]models.Language

	logger *zap.Logger
}
