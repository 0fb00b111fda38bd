// Package models provides domain models for the trading journal.
package models

// Side represents the direction of a position.
type Side string

const (
	SideLong  Side = "Long"
	SideShort Side = "Short"
)

// TradeType records where a trade came from.
type TradeType string

const (
	TradeTypeAPI    TradeType = "API Trade"
	TradeTypeManual TradeType = "Manual Trade"
)

// TagCategory is one of the four fixed classification axes for
// emotional analysis. The string values double as the keys of the
// persisted stats file.
type TagCategory string

const (
	CategoryEmotionalStates TagCategory = "emotional_states"
	CategoryTriggers        TagCategory = "triggers"
	CategoryMistakes        TagCategory = "mistakes"
	CategoryActions         TagCategory = "actions"
)

// Categories returns all tag categories in display order.
func Categories() []TagCategory {
	return []TagCategory{
		CategoryEmotionalStates,
		CategoryTriggers,
		CategoryMistakes,
		CategoryActions,
	}
}

// Valid reports whether c is one of the four known categories.
func (c TagCategory) Valid() bool {
	switch c {
	case CategoryEmotionalStates, CategoryTriggers, CategoryMistakes, CategoryActions:
		return true
	}
	return false
}

// Title returns the human-readable name of the category.
func (c TagCategory) Title() string {
	switch c {
	case CategoryEmotionalStates:
		return "Emotional States"
	case CategoryTriggers:
		return "Triggers"
	case CategoryMistakes:
		return "Psychological Mistakes"
	case CategoryActions:
		return "Corrective Actions"
	}
	return string(c)
}

// Reflections holds the four free-text reflection fields.
type Reflections struct {
	Patterns    string `json:"patterns"`
	Triggers    string `json:"triggers"`
	Adjustments string `json:"adjustments"`
	Goals       string `json:"goals"`
}

// IsEmpty reports whether no reflection field has been filled in.
func (r Reflections) IsEmpty() bool {
	return r.Patterns == "" && r.Triggers == "" && r.Adjustments == "" && r.Goals == ""
}
