package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOpenAnonymous(t *testing.T) {
	store := NewStore(0)

	conv := store.Open("")
	require.NotEmpty(t, conv.ID)
	assert.True(t, strings.HasPrefix(conv.UserID, "web-"))
	assert.Equal(t, "web-"+conv.ID, conv.UserID)

	got, ok := store.Get(conv.ID)
	require.True(t, ok)
	assert.Same(t, conv, got)
}

func TestStoreOpenAuthenticated(t *testing.T) {
	store := NewStore(0)

	conv := store.Open("user-42")
	assert.Equal(t, "user-42", conv.UserID)
}

func TestStoreOpenStartsWithGreeting(t *testing.T) {
	store := NewStore(0)

	transcript := store.Open("").Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, RoleAssistant, transcript[0].Role)
	assert.Contains(t, transcript[0].Content, "AI stylist")
	assert.Equal(t, greetingSuggestions, transcript[0].Suggestions)
}

func TestStoreGetUnknown(t *testing.T) {
	store := NewStore(0)

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestStoreSweepsIdleSessions(t *testing.T) {
	store := NewStore(time.Minute)

	stale := store.Open("")
	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	fresh := store.Open("")

	_, ok := store.Get(stale.ID)
	assert.False(t, ok, "idle session should be swept on the next open")
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}
