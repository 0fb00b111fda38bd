// Package tags implements the emotional-analysis tagging core:
// the fixed tag vocabulary, per-tag usage counters with popularity
// tiers, and the per-trade selection state machine.
package tags

import (
	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

// Canonical option lists, one per category. These are immutable at
// runtime; user-supplied custom tags live only in selections and
// usage stats, never in a separate registry.
var (
	emotionalStates = []string{
		"Fear", "Greed", "FOMO (Fear of Missing Out)", "Panic", "Overconfidence",
		"Anxiety", "Euphoria", "Doubt", "Frustration", "Hope",
	}

	triggers = []string{
		"Market volatility", "Price surges", "Price crashes", "Positive news/hype",
		"Negative news/FUD", "Social media buzz", "Seeing others' profits",
		"Recent losses", "Winning streaks", "Herd mentality",
	}

	mistakes = []string{
		"FOMO buying", "Panic selling", "Revenge trading", "Overconfidence bias",
		"Herd mentality", "Overtrading", "Ignoring risk management", "Chasing losses",
		"Not doing proper research", "Overleveraging",
	}

	actions = []string{
		"Develop a clear trading plan", "Implement risk management strategies",
		"Conduct thorough research", "Keep a trading journal", "Stick to your strategy",
		"Diversify your portfolio", "Set realistic goals", "Use position sizing",
		"Take regular breaks", "Continuously educate yourself",
	}
)

// Options returns the canonical option list for a category. The
// returned slice is a copy; callers may not mutate the vocabulary.
func Options(category models.TagCategory) ([]string, error) {
	var src []string
	switch category {
	case models.CategoryEmotionalStates:
		src = emotionalStates
	case models.CategoryTriggers:
		src = triggers
	case models.CategoryMistakes:
		src = mistakes
	case models.CategoryActions:
		src = actions
	default:
		return nil, errors.Wrapf(errors.ErrUnknownCategory, "%q", category)
	}
	out := make([]string, len(src))
	copy(out, src)
	return out, nil
}

// IsCustom reports whether value is not part of the canonical list
// for the category. Unknown categories treat every value as custom.
func IsCustom(category models.TagCategory, value string) bool {
	opts, err := Options(category)
	if err != nil {
		return true
	}
	for _, o := range opts {
		if o == value {
			return false
		}
	}
	return true
}
