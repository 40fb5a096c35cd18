package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"relaybot/internal/models"
)

// HandleUpdate processes a single inbound update, from either polling
// or the webhook endpoint
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	data := query.Data
	switch {
	case strings.HasPrefix(data, callbackLangPrefix):
		b.handleLanguageCallback(query)
	case strings.HasPrefix(data, callbackReplyPrefix):
		b.handleReplyRequestCallback(query)
	default:
		b.answerCallback(query.ID, "")
	}
}

// handleLanguageCallback records the user's language choice and edits the
// prompt message to reflect it. Repeated selection just overwrites.
func (b *Bot) handleLanguageCallback(query *tgbotapi.CallbackQuery) {
	lang := models.Language(strings.TrimPrefix(query.Data, callbackLangPrefix))
	if !lang.Valid() {
		b.answerCallback(query.ID, "")
		return
	}

	b.sessions.Set(query.From.ID, lang)
	b.answerCallback(query.ID, "")

	if query.Message != nil {
		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, languageConfirmedText(lang))
		if _, err := b.api.Request(edit); err != nil {
			b.logger.Warn("Failed to edit language prompt", zap.Error(err), zap.Int64("user_id", query.From.ID))
		}
	}

	b.logger.Info("Language selected",
		zap.Int64("user_id", query.From.ID),
		zap.String("language", string(lang)),
	)
}

// handleReplyRequestCallback sends an operator a prompt to reply to and
// registers the prompt as a correlation entry for the encoded user.
// Non-operators get a visible rejection and nothing else happens.
func (b *Bot) handleReplyRequestCallback(query *tgbotapi.CallbackQuery) {
	lang, isOperator := b.languages[query.From.ID]
	if !isOperator {
		b.logger.Warn("Reply request from non-operator",
			zap.Int64("user_id", query.From.ID),
			zap.String("callback_data", query.Data),
		)
		if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(query.ID, rejectionText())); err != nil {
			b.logger.Warn("Failed to answer callback", zap.Error(err))
		}
		return
	}

	targetID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, callbackReplyPrefix), 10, 64)
	if err != nil {
		b.logger.Warn("Malformed reply-request payload", zap.String("callback_data", query.Data))
		b.answerCallback(query.ID, "")
		return
	}

	b.answerCallback(query.ID, "")

	prompt := tgbotapi.NewMessage(query.From.ID, replyPromptText(lang))
	sent, err := b.api.Send(prompt)
	if err != nil {
		b.logger.Error("Failed to send reply prompt",
			zap.Error(err),
			zap.Int64("operator_id", query.From.ID),
		)
		return
	}

	b.tickets.Put(query.From.ID, sent.MessageID, targetID)
}

// handleMessage processes a single text message. Classification order
// matters: operator identities are checked before generic user handling
// so an operator's outgoing reply is never re-routed as a support request.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
		}
	}()

	if message.From == nil || message.Text == "" {
		return
	}

	if _, isOperator := b.languages[message.From.ID]; isOperator {
		b.handleOperatorMessage(message)
		return
	}

	b.handleUserMessage(message)
}

// handleOperatorMessage forwards an operator's reply to the user the
// replied-to bot message refers to. Anything unresolvable is dropped
// silently: operators may reply to arbitrary messages.
func (b *Bot) handleOperatorMessage(message *tgbotapi.Message) {
	if message.ReplyToMessage == nil {
		b.logger.Debug("Operator message without reply-to, dropping",
			zap.Int64("operator_id", message.From.ID),
		)
		return
	}

	targetID, ok := b.tickets.Resolve(message.From.ID, message.ReplyToMessage.MessageID)
	if !ok {
		b.logger.Debug("Operator reply to untracked message, dropping",
			zap.Int64("operator_id", message.From.ID),
			zap.Int("message_id", message.ReplyToMessage.MessageID),
		)
		return
	}

	// Forward verbatim, no framing
	b.sendMessage(tgbotapi.NewMessage(targetID, message.Text))
}

// handleUserMessage routes an end-user message: prompt for a language if
// none is set, otherwise forward to the operator bound to that language.
func (b *Bot) handleUserMessage(message *tgbotapi.Message) {
	userID := message.From.ID

	// /start always re-shows the selection keyboard
	if message.IsCommand() && message.Command() == "start" {
		b.sendLanguagePrompt(message.Chat.ID)
		return
	}

	lang, ok := b.sessions.Get(userID)
	if !ok {
		b.sendLanguagePrompt(message.Chat.ID)
		return
	}

	operatorID := b.operators[lang]

	notification := tgbotapi.NewMessage(operatorID, notificationText(lang, message.From.UserName, userID, message.Text))
	notification.ReplyMarkup = replyKeyboard(lang, userID)

	sent, err := b.api.Send(notification)
	if err != nil {
		b.logger.Error("Failed to notify operator",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("operator_id", operatorID),
		)
		return
	}

	b.tickets.Put(operatorID, sent.MessageID, userID)
	b.sendMessage(tgbotapi.NewMessage(message.Chat.ID, ackText(lang)))

	b.logger.Info("Request forwarded",
		zap.Int64("user_id", userID),
		zap.Int64("operator_id", operatorID),
		zap.String("language", string(lang)),
	)
}

// sendLanguagePrompt sends the language-selection keyboard
func (b *Bot) sendLanguagePrompt(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, languagePromptText())
	msg.ReplyMarkup = languageKeyboard()
	b.sendMessage(msg)
}

// sendMessage sends a message and logs delivery failures without
// propagating them; a failed send affects only the current event
func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", msg.ChatID),
		)
	}
}

// answerCallback acknowledges a callback query to clear the client's
// loading state
func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}
