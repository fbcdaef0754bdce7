package intent

import (
	"regexp"
	"strings"
)

var underBudgetPattern = regexp.MustCompile(`under\s+([\d,.]+k?)`)

// Classify turns free-form user text plus the previous turn's intent into the
// structured intent record sent to the stylist backend. Matching is plain
// case-insensitive substring work over the lowered input; the branches are
// deliberately overlapping ("casual" is both an occasion and a style tag,
// "budget" feeds both the style set and the followup flag) because the
// backend scores against the union of signals.
func Classify(text string, prior *Intent) Intent {
	lowered := strings.ToLower(text)

	out := Intent{
		Occasion:         classifyOccasion(lowered),
		StylePreferences: classifyStyles(lowered),
		Budget:           classifyBudget(lowered),
	}

	if prior != nil {
		if out.Occasion == "" {
			out.Occasion = prior.Occasion
		}
		if len(out.StylePreferences) == 0 {
			out.StylePreferences = prior.StylePreferences
		}
		if out.Budget == "" {
			out.Budget = prior.Budget
		}

		out.IsBudgetFollowup = containsAny(lowered,
			"cheap version", "cheaper", "budget version", "make it cheaper") ||
			containsAny(lowered, "cheap", "budget", "affordable")
		out.IsAccessoriesFollowup = containsAny(lowered,
			"add accessories", "accessories", "jewelry", "earrings", "bag", "belt")
	}

	return out
}

// classifyOccasion resolves the occasion in fixed priority order, first match
// wins. No match returns the empty string so the caller can inherit.
func classifyOccasion(text string) string {
	switch {
	case strings.Contains(text, "party"):
		return OccasionParty
	case strings.Contains(text, "date"):
		return OccasionDate
	case strings.Contains(text, "casual"):
		return OccasionCasual
	case containsAny(text, "work", "office", "interview"):
		return OccasionWork
	case containsAny(text, "college", "school", "class"):
		return OccasionCasual
	case containsAny(text, "beach", "vacation"):
		return OccasionCasual
	default:
		return ""
	}
}

// classifyStyles runs every tag check independently; a single message can
// pick up several tags.
func classifyStyles(text string) []string {
	var styles []string
	if strings.Contains(text, "streetwear") {
		styles = append(styles, "streetwear")
	}
	if containsAny(text, "minimal", "minimalist") {
		styles = append(styles, "minimalist")
	}
	if strings.Contains(text, "formal") {
		styles = append(styles, "formal")
	}
	if strings.Contains(text, "casual") {
		styles = append(styles, "casual")
	}
	if containsAny(text, "college", "school") {
		styles = append(styles, "everyday")
	}
	if containsAny(text, "beach", "vacation") {
		styles = append(styles, "coastal")
	}
	if strings.Contains(text, "interview") {
		styles = append(styles, "classic")
	}
	if strings.Contains(text, "confident") {
		styles = append(styles, "modern", "elevated")
	}
	if strings.Contains(text, "accessor") {
		styles = append(styles, "accessories")
	}
	if containsAny(text, "cheap", "budget", "affordable") {
		styles = append(styles, "budget-friendly")
	}
	return styles
}

func classifyBudget(text string) string {
	if m := underBudgetPattern.FindStringSubmatch(text); m != nil {
		return "under " + m[1]
	}
	if containsAny(text, "cheap", "budget", "affordable") {
		return BudgetLow
	}
	return ""
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
