package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"relaybot/internal/models"
	"relaybot/internal/session"
	"relaybot/internal/ticket"
)

// NewBot creates a new Telegram relay bot
func NewBot(token string, sessions *session.Store, tickets *ticket.Store, operators []models.Operator, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	byLanguage := make(map[models.Language]int64, len(operators))
	byID := make(map[int64]models.Language, len(operators))
	for _, op := range operators {
		if !op.Language.Valid() {
			return nil, fmt.Errorf("unsupported operator language: %s", op.Language)
		}
		byLanguage[op.Language] = op.ID
		byID[op.ID] = op.Language
	}

	logger.Info("Bot created",
		zap.String("bot_username", api.Self.UserName),
		zap.Int("operators", len(operators)),
	)

	return &Bot{
		api:       api,
		sessions:  sessions,
		tickets:   tickets,
		operators: byLanguage,
		languages: byID,
		logger:    logger,
	}, nil
}
