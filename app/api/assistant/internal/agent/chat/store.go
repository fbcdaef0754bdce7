package chat

import (
	"sync"
	"time"

	"drip/app/common/consts/biz"
	"drip/app/common/snowflake"
)

const defaultSessionTTL = 30 * time.Minute

// Store is the in-process session registry. Sessions are not persisted and
// die with the process; idle ones are swept whenever a new session opens.
type Store struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Conversation
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Conversation),
	}
}

// Open creates a session. Authenticated callers keep their user id for every
// recommendation call in the session; anonymous ones get a stable generated
// identity instead.
func (s *Store) Open(authUserID string) *Conversation {
	id := snowflake.NextString()
	userID := authUserID
	if userID == "" {
		userID = biz.AnonPrefix + id
	}
	conv := newConversation(id, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[id] = conv
	return conv
}

func (s *Store) Get(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.sessions[id]
	return conv, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) sweepLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, conv := range s.sessions {
		if conv.idleSince().Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
