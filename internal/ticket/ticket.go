package ticket

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the correlation table by the expected number of
// concurrently open tickets. Oldest entries age out first.
const DefaultCapacity = 1024

// Key identifies a reply-able bot message: which responder it was sent
// to and which message id it got. A responder's reply carries this pair
// via Telegram's reply-to mechanism.
type Key struct {
	ResponderID int64
	MessageID   int
}

// Store maps bot-sent messages back to the end user they concern.
type Store struct {
	entries *lru.Cache[Key, int64]
}

// NewStore creates a correlation store bounded to capacity entries.
// A capacity <= 0 falls back to DefaultCapacity.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	entries, err := lru.New[Key, int64](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{entries: entries}, nil
}

// Put records that the bot message messageID sent to responderID refers
// to targetUserID. Entries are never mutated once created.
func (s *Store) Put(responderID int64, messageID int, targetUserID int64) {
	s.entries.Add(Key{ResponderID: responderID, MessageID: messageID}, targetUserID)
}

// Resolve looks up the user a responder's reply refers to. A miss is not
// an error: responders may reply to arbitrary messages, and old tickets
// age out of the bounded table.
func (s *Store) Resolve(responderID int64, messageID int) (int64, bool) {
	return s.entries.Get(Key{ResponderID: responderID, MessageID: messageID})
}

// Len returns the number of tracked tickets
func (s *Store) Len() int {
	return s.entries.Len()
}
