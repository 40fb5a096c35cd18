package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"relaybot/internal/models"
)

// Callback payload prefixes
const (
	callbackLangPrefix  = "lang:"
	callbackReplyPrefix = "reply:"
)

// languagePromptText is the bilingual language-selection prompt
func languagePromptText() string {
	return "Выберите язык поддержки / Choose your support language:"
}

// languageKeyboard builds the ru/en selection keyboard
func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Русский", callbackLangPrefix+string(models.LanguageRU)),
			tgbotapi.NewInlineKeyboardButtonData("English", callbackLangPrefix+string(models.LanguageEN)),
		),
	)
}

// languageConfirmedText replaces the prompt once a language is chosen
func languageConfirmedText(lang models.Language) string {
	if lang == models.LanguageRU {
		return "Язык поддержки: Русский"
	}
	return "Support language: English"
}

// notificationText renders the operator-facing notification for a new
// user request. The intro line is localized by the sender's chosen
// language; the request body is appended verbatim.
func notificationText(lang models.Language, senderHandle string, senderID int64, text string) string {
	if lang == models.LanguageRU {
		if senderHandle != "" {
			return fmt.Sprintf("Новая заявка от пользователя @%s (id: %d):\n\n%s", senderHandle, senderID, text)
		}
		return fmt.Sprintf("Новая заявка от пользователя (id: %d):\n\n%s", senderID, text)
	}
	if senderHandle != "" {
		return fmt.Sprintf("New request from user @%s (id: %d):\n\n%s", senderHandle, senderID, text)
	}
	return fmt.Sprintf("New request from user (id: %d):\n\n%s", senderID, text)
}

// replyKeyboard builds the reply affordance attached to a notification,
// encoding the sender's id in the callback payload
func replyKeyboard(lang models.Language, senderID int64) tgbotapi.InlineKeyboardMarkup {
	label := "Reply"
	if lang == models.LanguageRU {
		label = "Ответить"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", callbackReplyPrefix, senderID)),
		),
	)
}

// ackText is the user-facing acknowledgment after a forwarded request
func ackText(lang models.Language) string {
	if lang == models.LanguageRU {
		return "Спасибо! Поддержка скоро ответит."
	}
	return "Thanks! Support will reply shortly."
}

// replyPromptText instructs an operator to reply to the prompt message
// itself; the reply is then routed to the user the prompt was created for
func replyPromptText(lang models.Language) string {
	if lang == models.LanguageRU {
		return "Ответьте на это сообщение, чтобы написать пользователю."
	}
	return "Reply to this message to write to the user."
}

// rejectionText is shown to non-operators invoking the reply affordance
func rejectionText() string {
	return "Эта кнопка доступна только операторам поддержки / This action is available to support operators only."
}
