package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relaybot/internal/models"
)

func TestNotificationText(t *testing.T) {
	testCases := []struct {
		name     string
		lang     models.Language
		handle   string
		senderID int64
		text     string
		expected string
	}{
		{
			name:     "english with handle",
			lang:     models.LanguageEN,
			handle:   "alice",
			senderID: 42,
			text:     "help me",
			expected: "New request from user @alice (id: 42):\n\nhelp me",
		},
		{
			name:     "english without handle",
			lang:     models.LanguageEN,
			handle:   "",
			senderID: 42,
			text:     "help me",
			expected: "New request from user (id: 42):\n\nhelp me",
		},
		{
			name:     "russian with handle",
			lang:     models.LanguageRU,
			handle:   "boris",
			senderID: 7,
			text:     "не работает",
			expected: "Новая заявка от пользователя @boris (id: 7):\n\nне работает",
		},
		{
			name:     "russian without handle",
			lang:     models.LanguageRU,
			handle:   "",
			senderID: 7,
			text:     "не работает",
			expected: "Новая заявка от пользователя (id: 7):\n\nне работает",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, notificationText(tc.lang, tc.handle, tc.senderID, tc.text))
		})
	}
}

func TestAckText(t *testing.T) {
	assert.Equal(t, "Thanks! Support will reply shortly.", ackText(models.LanguageEN))
	assert.Equal(t, "Спасибо! Поддержка скоро ответит.", ackText(models.LanguageRU))
}

func TestLanguageKeyboard(t *testing.T) {
	keyboard := languageKeyboard()

	require.Len(t, keyboard.InlineKeyboard, 1)
	row := keyboard.InlineKeyboard[0]
	require.Len(t, row, 2)

	require.NotNil(t, row[0].CallbackData)
	assert.Equal(t, "lang:ru", *row[0].CallbackData)
	require.NotNil(t, row[1].CallbackData)
	assert.Equal(t, "lang:en", *row[1].CallbackData)
}

func TestReplyKeyboardEncodesSender(t *testing.T) {
	keyboard := replyKeyboard(models.LanguageEN, 42)

	require.Len(t, keyboard.InlineKeyboard, 1)
	require.Len(t, keyboard.InlineKeyboard[0], 1)

	button := keyboard.InlineKeyboard[0][0]
	require.NotNil(t, button.CallbackData)
	assert.Equal(t, "reply:42", *button.CallbackData)
	assert.Equal(t, "Reply", button.Text)

	ruButton := replyKeyboard(models.LanguageRU, 42).InlineKeyboard[0][0]
	assert.Equal(t, "Ответить", ruButton.Text)
}

func TestLanguageConfirmedText(t *testing.T) {
	assert.Equal(t, "Язык поддержки: Русский", languageConfirmedText(models.LanguageRU))
	assert.Equal(t, "Support language: English", languageConfirmedText(models.LanguageEN))
}
