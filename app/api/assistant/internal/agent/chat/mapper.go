package chat

import (
	"strings"

	"drip/app/api/assistant/internal/agent/intent"
	"drip/app/api/assistant/internal/backend"
)

const (
	defaultOutfitImage = "/images/outfit-1.jpg"

	recommendationFallback = "Here's a look I pulled for you."
	budgetIntro            = "Got you, let's make this more wallet-friendly.\n\n"
	accessoriesIntro       = "Love that you're thinking about accessories.\n\n"

	previewNameAccessories = "Accessories: shoes, watch, bag"
	previewNameBudget      = "Budget-Friendly Version"
	previewNameStyled      = "Styled Outfit"

	shoesFallbackLine = "clean white sneakers to ground the look"
)

type mappedReply struct {
	message           string
	recommendedOutfit *backend.Outfit
	alternatives      []backend.Outfit
	preview           *OutfitPreview
}

// mapRecommendation turns a backend recommendation payload plus the current
// intent into a chat-displayable reply. The first scored outfit wins, the
// ones at positions 2-3 become alternatives; both slices are bounds checked
// rather than assumed.
func mapRecommendation(resp *backend.RecommendResponse, it intent.Intent) mappedReply {
	text := resp.RecommendationText
	if text == "" {
		text = recommendationFallback
	}

	var intro string
	switch {
	case it.IsBudgetFollowup:
		intro = budgetIntro
	case it.IsAccessoriesFollowup:
		intro = accessoriesIntro
	}

	out := mappedReply{message: intro + text}

	outfits := resp.Outfits
	if len(outfits) == 0 {
		return out
	}
	recommended := outfits[0].Outfit
	out.recommendedOutfit = &recommended

	end := 3
	if len(outfits) < end {
		end = len(outfits)
	}
	for _, scored := range outfits[1:end] {
		out.alternatives = append(out.alternatives, scored.Outfit)
	}

	out.preview = buildPreview(&recommended, it)
	return out
}

func buildPreview(outfit *backend.Outfit, it intent.Intent) *OutfitPreview {
	if it.IsAccessoriesFollowup {
		return accessoriesPreview(outfit)
	}

	items := make([]string, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		items = append(items, item.Name+" ("+item.Category+")")
	}

	name := previewNameStyled
	if it.IsBudgetFollowup && it.Budget == intent.BudgetLow {
		name = previewNameBudget
	}
	return &OutfitPreview{
		Name:  name,
		Image: defaultOutfitImage,
		Items: items,
	}
}

// accessoriesPreview synthesizes the fixed shoes/watch/bag lines rather than
// listing the outfit's own items. The watch and bag lines key off the first
// palette color, defaulting to black.
func accessoriesPreview(outfit *backend.Outfit) *OutfitPreview {
	// One scan picks the first shoe-or-sneaker item; a nameless match
	// falls back without considering later items.
	shoes := shoesFallbackLine
	if item, ok := findByCategory(outfit.Items, "shoe", "sneaker"); ok && item.Name != "" {
		shoes = item.Name
	}

	primaryColor := "black"
	if len(outfit.Palette) > 0 && outfit.Palette[0] != "" {
		primaryColor = outfit.Palette[0]
	}

	return &OutfitPreview{
		Name:  previewNameAccessories,
		Image: defaultOutfitImage,
		Items: []string{
			"Shoes: " + shoes,
			"Watch: slim " + primaryColor + " or metal watch to keep it polished",
			"Bag: structured " + primaryColor + " bag to pull everything together",
		},
	}
}

func findByCategory(items []backend.OutfitItem, needles ...string) (backend.OutfitItem, bool) {
	for _, item := range items {
		lowered := strings.ToLower(item.Category)
		for _, needle := range needles {
			if strings.Contains(lowered, needle) {
				return item, true
			}
		}
	}
	return backend.OutfitItem{}, false
}
