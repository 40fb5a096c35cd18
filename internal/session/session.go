package session

import (
	"sync"

	"relaybot/internal/models"
)

// Store holds each user's chosen language for the lifetime of the process.
// An absent entry means the user has not selected a language yet.
type Store struct {
	mu        sync.RWMutex
	languages map[int64]models.Language
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		languages: make(map[int64]models.Language),
	}
}

// Get returns the user's chosen language, if any
func (s *Store) Get(userID int64) (models.Language, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lang, ok := s.languages[userID]
	return lang, ok
}

// Set records the user's language choice. Repeated selection overwrites.
func (s *Store) Set(userID int64, lang models.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages[userID] = lang
}
