package chat

import (
	"sync"
	"time"

	"drip/app/api/assistant/internal/agent/intent"
	"drip/app/api/assistant/internal/backend"
)

// Conversation holds the session-scoped mutable state: a single append-only
// transcript plus at most one remembered prior recommendation turn. HTTP
// handlers run concurrently, so the mutex guards transcript appends; it does
// not sequence overlapping submissions, whose replies land in whatever order
// their backend calls resolve.
type Conversation struct {
	ID     string
	UserID string

	mu           sync.Mutex
	transcript   []Message
	lastIntent   *intent.Intent
	lastResponse *backend.RecommendResponse
	lastActive   time.Time
}

func newConversation(id, userID string) *Conversation {
	c := &Conversation{
		ID:         id,
		UserID:     userID,
		lastActive: time.Now(),
	}
	c.transcript = append(c.transcript, greetingMessage())
	return c
}

func (c *Conversation) append(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = append(c.transcript, msg)
	c.lastActive = time.Now()
}

// Transcript returns a copy of the current transcript.
func (c *Conversation) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// historyTail returns up to n of the most recent transcript entries as
// role/content pairs for the general-chat endpoint.
func (c *Conversation) historyTail(n int) []backend.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := len(c.transcript) - n
	if start < 0 {
		start = 0
	}
	turns := make([]backend.ChatTurn, 0, len(c.transcript)-start)
	for _, msg := range c.transcript[start:] {
		turns = append(turns, backend.ChatTurn{Role: msg.Role, Content: msg.Content})
	}
	return turns
}

// rememberStylist records this turn's intent and backend response as the
// prior context for the next recommendation. Failed turns never reach here,
// so remembered state survives them untouched.
func (c *Conversation) rememberStylist(it intent.Intent, resp *backend.RecommendResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastIntent = &it
	c.lastResponse = resp
}

func (c *Conversation) priorIntent() *intent.Intent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastIntent
}

// lastOutfitID returns the id of the previously recommended outfit, or nil
// when no recommendation has landed yet, for request continuity.
func (c *Conversation) lastOutfitID() *string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastResponse == nil || len(c.lastResponse.Outfits) == 0 {
		return nil
	}
	id := c.lastResponse.Outfits[0].Outfit.OutfitID
	if id == "" {
		return nil
	}
	return &id
}

func (c *Conversation) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}
