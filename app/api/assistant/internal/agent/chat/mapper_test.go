package chat

import (
	"testing"

	"drip/app/api/assistant/internal/agent/intent"
	"drip/app/api/assistant/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredOutfit(id string, items ...backend.OutfitItem) backend.ScoredOutfit {
	return backend.ScoredOutfit{
		Outfit: backend.Outfit{OutfitID: id, Items: items},
		Score:  0.9,
	}
}

func TestMapRecommendationBasicPreview(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Clean fit for the evening.",
		Outfits: []backend.ScoredOutfit{
			scoredOutfit("o1",
				backend.OutfitItem{Name: "Tee", Category: "top"},
				backend.OutfitItem{Name: "Jeans", Category: "bottom"},
			),
		},
	}

	got := mapRecommendation(resp, intent.Intent{})

	assert.Equal(t, "Clean fit for the evening.", got.message)
	require.NotNil(t, got.recommendedOutfit)
	assert.Equal(t, "o1", got.recommendedOutfit.OutfitID)
	assert.Empty(t, got.alternatives)

	require.NotNil(t, got.preview)
	assert.Equal(t, "Styled Outfit", got.preview.Name)
	assert.Equal(t, defaultOutfitImage, got.preview.Image)
	assert.Equal(t, []string{"Tee (top)", "Jeans (bottom)"}, got.preview.Items)
}

func TestMapRecommendationFallbackText(t *testing.T) {
	resp := &backend.RecommendResponse{}

	got := mapRecommendation(resp, intent.Intent{})

	assert.Equal(t, "Here's a look I pulled for you.", got.message)
	assert.Nil(t, got.recommendedOutfit)
	assert.Nil(t, got.preview)
	assert.Empty(t, got.alternatives)
}

func TestMapRecommendationAlternativesSlicing(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Options.",
		Outfits: []backend.ScoredOutfit{
			scoredOutfit("o1"), scoredOutfit("o2"), scoredOutfit("o3"), scoredOutfit("o4"),
		},
	}

	got := mapRecommendation(resp, intent.Intent{})
	require.Len(t, got.alternatives, 2)
	assert.Equal(t, "o2", got.alternatives[0].OutfitID)
	assert.Equal(t, "o3", got.alternatives[1].OutfitID)

	// Shorter lists stay in bounds.
	resp.Outfits = resp.Outfits[:2]
	got = mapRecommendation(resp, intent.Intent{})
	require.Len(t, got.alternatives, 1)
	assert.Equal(t, "o2", got.alternatives[0].OutfitID)
}

func TestMapRecommendationBudgetFollowup(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Swapped in cheaper pieces.",
		Outfits:            []backend.ScoredOutfit{scoredOutfit("o1")},
	}
	it := intent.Intent{IsBudgetFollowup: true, Budget: intent.BudgetLow}

	got := mapRecommendation(resp, it)

	assert.Equal(t, "Got you, let's make this more wallet-friendly.\n\nSwapped in cheaper pieces.", got.message)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Budget-Friendly Version", got.preview.Name)
}

func TestMapRecommendationBudgetFollowupWithExplicitBudget(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Done.",
		Outfits:            []backend.ScoredOutfit{scoredOutfit("o1")},
	}
	// Budget followup with a non-"low" budget keeps the plain preview name.
	it := intent.Intent{IsBudgetFollowup: true, Budget: "under 3k"}

	got := mapRecommendation(resp, it)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Styled Outfit", got.preview.Name)
}

func TestMapRecommendationAccessoriesPreview(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Finishing touches.",
		Outfits: []backend.ScoredOutfit{
			{
				Outfit: backend.Outfit{
					OutfitID: "o1",
					Items: []backend.OutfitItem{
						{Name: "Blazer", Category: "outerwear"},
						{Name: "Leather Loafers", Category: "Shoes"},
					},
					Palette: []string{"tan", "cream"},
				},
				Score: 0.8,
			},
		},
	}
	it := intent.Intent{IsAccessoriesFollowup: true}

	got := mapRecommendation(resp, it)

	assert.Equal(t, "Love that you're thinking about accessories.\n\nFinishing touches.", got.message)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Accessories: shoes, watch, bag", got.preview.Name)
	assert.Equal(t, []string{
		"Shoes: Leather Loafers",
		"Watch: slim tan or metal watch to keep it polished",
		"Bag: structured tan bag to pull everything together",
	}, got.preview.Items)
}

func TestMapRecommendationAccessoriesDefaults(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Extras.",
		Outfits: []backend.ScoredOutfit{
			scoredOutfit("o1", backend.OutfitItem{Name: "Tee", Category: "top"}),
		},
	}
	it := intent.Intent{IsAccessoriesFollowup: true}

	got := mapRecommendation(resp, it)

	require.NotNil(t, got.preview)
	assert.Equal(t, []string{
		"Shoes: clean white sneakers to ground the look",
		"Watch: slim black or metal watch to keep it polished",
		"Bag: structured black bag to pull everything together",
	}, got.preview.Items)
}

func TestMapRecommendationBudgetIntroWinsOverAccessories(t *testing.T) {
	resp := &backend.RecommendResponse{RecommendationText: "Both flags."}
	it := intent.Intent{IsBudgetFollowup: true, IsAccessoriesFollowup: true}

	got := mapRecommendation(resp, it)
	assert.Equal(t, "Got you, let's make this more wallet-friendly.\n\nBoth flags.", got.message)
}

func TestMapRecommendationBothFollowupsAccessoriesPreviewWins(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Both flags.",
		Outfits:            []backend.ScoredOutfit{scoredOutfit("o1")},
	}
	// The intro prefers budget, the preview prefers accessories; budget
	// "low" does not pull the preview name back to the budget version.
	it := intent.Intent{IsBudgetFollowup: true, IsAccessoriesFollowup: true, Budget: intent.BudgetLow}

	got := mapRecommendation(resp, it)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Accessories: shoes, watch, bag", got.preview.Name)
}

func TestMapRecommendationAccessoriesNamelessShoeFallsBack(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Extras.",
		Outfits: []backend.ScoredOutfit{
			scoredOutfit("o1",
				backend.OutfitItem{Name: "", Category: "Shoes"},
				backend.OutfitItem{Name: "Air Runners", Category: "sneakers"},
			),
		},
	}
	it := intent.Intent{IsAccessoriesFollowup: true}

	// The first shoe-or-sneaker item wins the pick; its empty name means
	// the fallback line, not the later sneaker's name.
	got := mapRecommendation(resp, it)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Shoes: clean white sneakers to ground the look", got.preview.Items[0])
}

func TestMapRecommendationAccessoriesSneakerName(t *testing.T) {
	resp := &backend.RecommendResponse{
		RecommendationText: "Extras.",
		Outfits: []backend.ScoredOutfit{
			scoredOutfit("o1",
				backend.OutfitItem{Name: "Tee", Category: "top"},
				backend.OutfitItem{Name: "Air Runners", Category: "sneakers"},
			),
		},
	}
	it := intent.Intent{IsAccessoriesFollowup: true}

	got := mapRecommendation(resp, it)
	require.NotNil(t, got.preview)
	assert.Equal(t, "Shoes: Air Runners", got.preview.Items[0])
}
