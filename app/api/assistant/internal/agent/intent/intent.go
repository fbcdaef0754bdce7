package intent

// Occasion values produced by the classifier. The closed set mirrors what the
// stylist backend scores against.
const (
	OccasionParty  = "party"
	OccasionDate   = "date"
	OccasionCasual = "casual"
	OccasionWork   = "work"
)

const BudgetLow = "low"

// Intent is the running interpretation of what the user wants. Occasion,
// style preferences and budget are inherited from the previous turn when the
// current text stays silent on them; the two followup flags are recomputed
// fresh every turn and are never inherited.
type Intent struct {
	Occasion              string
	StylePreferences      []string
	Budget                string
	IsBudgetFollowup      bool
	IsAccessoriesFollowup bool
}
