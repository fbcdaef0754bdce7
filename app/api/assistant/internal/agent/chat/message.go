package chat

import (
	"time"

	"drip/app/api/assistant/internal/backend"
	"drip/app/common/snowflake"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	greetingText = "Hey bestie! I'm your AI stylist, fully wired into the fashion brain. " +
		"Tell me your vibe, occasion, budget, or ask for accessories and I'll pull real outfit ideas for you."

	recommendApology = "I tried to reach the styling engine but something went wrong. Try asking again in a moment!"
	chatApology      = "I'm having trouble connecting right now. Try again in a moment! 💫"
)

var greetingSuggestions = []string{
	"Party outfit under 3k",
	"Style me for a date",
	"Casual everyday look",
	"Add accessories to my last outfit",
}

var chatSuggestions = []string{
	"Style me for a date",
	"Party outfit under 3k",
	"What colors suit me?",
	"What's trending now?",
}

// OutfitPreview is the condensed, chat-displayable summary of a recommended
// outfit.
type OutfitPreview struct {
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Items []string `json:"items"`
}

// Message is one transcript entry. Messages are never mutated after creation
// and live only as long as the session that owns them.
type Message struct {
	ID                string          `json:"id"`
	Role              string          `json:"role"`
	Content           string          `json:"content"`
	Timestamp         time.Time       `json:"timestamp"`
	Suggestions       []string        `json:"suggestions,omitempty"`
	OutfitPreview     *OutfitPreview  `json:"outfit_preview,omitempty"`
	RecommendedOutfit *backend.Outfit `json:"recommended_outfit,omitempty"`
	// Alternatives are passed through untouched for potential future
	// rendering on the client.
	Alternatives []backend.Outfit `json:"alternatives,omitempty"`
}

func newMessage(role, content string) Message {
	return Message{
		ID:        snowflake.NextString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func greetingMessage() Message {
	msg := newMessage(RoleAssistant, greetingText)
	msg.Suggestions = greetingSuggestions
	return msg
}
