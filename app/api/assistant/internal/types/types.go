// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "drip/app/common/response"

type OpenSessionRequest struct {
}

type OpenSessionResponse struct {
	response.Response
	SessionId  string    `json:"session_id"`
	UserId     string    `json:"user_id"`
	Transcript []Message `json:"transcript"`
}

type SendMessageRequest struct {
	SessionId string `json:"session_id"`
	Content   string `json:"content"`
}

type SendMessageResponse struct {
	response.Response
	Messages   []Message `json:"messages"`
}

type TranscriptRequest struct {
	SessionId string `path:"session_id"`
}

type TranscriptResponse struct {
	response.Response
	SessionId  string    `json:"session_id"`
	Transcript []Message `json:"transcript"`
}

type Message struct {
	Id                string         `json:"id"`
	Role              string         `json:"role"`
	Content           string         `json:"content"`
	Timestamp         string         `json:"timestamp"`
	Suggestions       []string       `json:"suggestions,omitempty"`
	OutfitPreview     *OutfitPreview `json:"outfit_preview,omitempty"`
	RecommendedOutfit *Outfit        `json:"recommended_outfit,omitempty"`
	Alternatives      []Outfit       `json:"alternatives,omitempty"`
}

type OutfitPreview struct {
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Items []string `json:"items"`
}

type Outfit struct {
	OutfitId string       `json:"outfit_id"`
	Image    string       `json:"image,omitempty"`
	Items    []OutfitItem `json:"items"`
	Palette  []string     `json:"palette,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
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

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,optional"`
	Gender      string `json:"gender,optional"`
}

type TokenResponse struct {
	response.Response
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	response.Response
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type SavedOutfitsResponse struct {
	response.Response
	Outfits    []SavedOutfit `json:"outfits"`
}

type SavedOutfit struct {
	Id        int64                  `json:"id"`
	UserId    string                 `json:"user_id"`
	OutfitId  string                 `json:"outfit_id"`
	CreatedAt string                 `json:"created_at"`
	Payload   map[string]interface{} `json:"payload"`
}

type HistoryResponse struct {
	response.Response
	UserId  string         `json:"user_id"`
	Entries []HistoryEntry `json:"entries"`
}

type HistoryEntry struct {
	UserId    string                 `json:"user_id"`
	OutfitId  string                 `json:"outfit_id"`
	CreatedAt string                 `json:"created_at"`
	Payload   map[string]interface{} `json:"payload"`
}

type DeleteOutfitRequest struct {
	OutfitId string `path:"outfit_id"`
}

type OkResponse struct {
	response.Response
	Ok         bool   `json:"ok"`
}
