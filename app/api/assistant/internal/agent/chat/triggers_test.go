package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutfitRequest(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Style me for a date", true},
		{"party outfit under 3k", true},
		{"Can you RECOMMEND something?", true},
		{"put together a look for the weekend", true},
		{"what to wear to a wedding", true},
		{"curate my wardrobe", true},
		{"I need a look for tonight", true},
		{"what colors suit me?", false},
		{"hello there", false},
		{"what's trending now?", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutfitRequest(tt.text))
		})
	}
}
