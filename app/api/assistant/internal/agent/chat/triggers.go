package chat

import "strings"

// outfitTriggers is the fixed phrase list that routes a message to the
// recommendation path instead of general chat. Any substring hit qualifies.
var outfitTriggers = []string{
	"style me", "outfit for", "dress me", "what to wear",
	"recommend", "suggest an outfit", "pick an outfit", "create a look",
	"show me outfits", "give me an outfit", "curate", "put together",
	"party outfit", "date outfit", "work outfit", "casual outfit",
	"outfit under", "look for", "dress for",
}

// IsOutfitRequest reports whether the message should call the recommendation
// endpoint rather than general chat.
func IsOutfitRequest(text string) bool {
	lowered := strings.ToLower(text)
	for _, trigger := range outfitTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}
