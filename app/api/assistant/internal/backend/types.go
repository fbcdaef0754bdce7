package backend

import "time"

// Wire types for the stylist backend. The gateway consumes these contracts
// but does not own them; unknown fields are ignored and outfit payloads are
// passed through to the client untouched.

type RecommendRequest struct {
	UserID           string       `json:"user_id"`
	Occasion         *string      `json:"occasion"`
	StylePreferences []string     `json:"style_preferences"`
	Budget           *string      `json:"budget"`
	ImageBase64      *string      `json:"image_base64"`
	ExtraContext     ExtraContext `json:"extra_context"`
}

type ExtraContext struct {
	UserMessage           string  `json:"user_message"`
	IsBudgetFollowup      bool    `json:"is_budget_followup"`
	IsAccessoriesFollowup bool    `json:"is_accessories_followup"`
	LastOutfitID          *string `json:"last_outfit_id"`
}

type OutfitItem struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Price    string   `json:"price,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Image    string   `json:"image,omitempty"`
}

type Outfit struct {
	OutfitID string       `json:"outfit_id"`
	Image    string       `json:"image,omitempty"`
	Items    []OutfitItem `json:"items"`
	Palette  []string     `json:"palette,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
}

type ScoredOutfit struct {
	Outfit           Outfit   `json:"outfit"`
	Score            float64  `json:"score"`
	Reasons          []string `json:"reasons,omitempty"`
	DiversityPenalty float64  `json:"diversity_penalty,omitempty"`
}

type RecommendResponse struct {
	UserID             string         `json:"user_id"`
	CreatedAt          time.Time      `json:"created_at"`
	RecommendationText string         `json:"recommendation_text"`
	Outfits            []ScoredOutfit `json:"outfits"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	Gender      *string   `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
}

type SavedOutfit struct {
	ID        int64                  `json:"id"`
	UserID    string                 `json:"user_id"`
	OutfitID  string                 `json:"outfit_id"`
	CreatedAt time.Time              `json:"created_at"`
	Payload   map[string]interface{} `json:"payload"`
}

type HistoryEntry struct {
	UserID    string                 `json:"user_id"`
	OutfitID  string                 `json:"outfit_id"`
	CreatedAt time.Time              `json:"created_at"`
	Payload   map[string]interface{} `json:"payload"`
}

type HistoryResponse struct {
	UserID  string         `json:"user_id"`
	Entries []HistoryEntry `json:"entries"`
}

type OkReply struct {
	OK bool `json:"ok"`
}
