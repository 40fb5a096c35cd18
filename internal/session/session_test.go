package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"relaybot/internal/models"
)

func TestStore_UnsetUser(t *testing.T) {
	store := NewStore()

	lang, ok := store.Get(42)
	assert.False(t, ok, "expected no language for a user who never selected one")
	assert.Equal(t, models.Language(""), lang)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()

	store.Set(42, models.LanguageEN)

	lang, ok := store.Get(42)
	assert.True(t, ok)
	assert.Equal(t, models.LanguageEN, lang)

	// Other users are unaffected
	_, ok = store.Get(43)
	assert.False(t, ok)
}

func TestStore_RepeatedSelectionOverwrites(t *testing.T) {
	store := NewStore()

	store.Set(42, models.LanguageEN)
	store.Set(42, models.LanguageRU)

	lang, ok := store.Get(42)
	assert.True(t, ok)
	assert.Equal(t, models.LanguageRU, lang, "expected latest selection to win")
}
