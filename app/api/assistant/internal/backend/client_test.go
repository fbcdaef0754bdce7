package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendSendsMultipartForm(t *testing.T) {
	var gotAuth, gotContentType string
	var gotReq RecommendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/recommend", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("request_json")), &gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RecommendResponse{
			UserID:             gotReq.UserID,
			CreatedAt:          time.Now().UTC(),
			RecommendationText: "done",
		})
	}))
	defer srv.Close()

	cli := NewClient(srv.URL + "/")
	occasion := "party"
	resp, err := cli.Recommend(context.Background(), "tok", &RecommendRequest{
		UserID:           "web-1",
		Occasion:         &occasion,
		StylePreferences: []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "done", resp.RecommendationText)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "web-1", gotReq.UserID)
	require.NotNil(t, gotReq.Occasion)
	assert.Equal(t, "party", *gotReq.Occasion)
}

func TestRecommendOmitsBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RecommendResponse{})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Recommend(context.Background(), "", &RecommendRequest{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestChatPostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hi", req.Message)
		require.Len(t, req.History, 1)
		assert.Equal(t, "assistant", req.History[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChatResponse{Reply: "hey!"})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Chat(context.Background(), &ChatRequest{
		Message: "hi",
		History: []ChatTurn{{Role: "assistant", Content: "greeting"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hey!", resp.Reply)
}

func TestHistoryForwardsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/history", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HistoryResponse{
			UserID: "user-1",
			Entries: []HistoryEntry{
				{UserID: "user-1", OutfitID: "o1", CreatedAt: time.Now().UTC()},
			},
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).History(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "o1", resp.Entries[0].OutfitID)
}

func TestStatusErrorIncludesBodySnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "intent service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Chat(context.Background(), &ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "intent service unavailable")
}

func TestDeleteOutfitEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OkReply{OK: true})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).DeleteOutfit(context.Background(), "tok", "outfit/7")
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "/v1/delete-outfit/outfit%2F7", gotPath)
}
