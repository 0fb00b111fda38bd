package models

import "time"

// TimeLayout is the timestamp format used throughout the journal
// file for entry times and edit times.
const TimeLayout = "2006-01-02 15:04:05"

// Trade represents one journal record. API-sourced and manually
// entered trades share the same shape; Type tells them apart.
type Trade struct {
	ID       string    `json:"id"`
	Coin     string    `json:"coin"`
	Side     Side      `json:"side"`
	Size     float64   `json:"size"`
	Price    float64   `json:"price"`
	PnL      float64   `json:"pnl"`
	Fee      float64   `json:"fee"`
	Time     string    `json:"time"`
	Leverage int       `json:"leverage,omitempty"`
	Type     TradeType `json:"type"`

	LastEdited string `json:"last_edited,omitempty"`

	// Tag fields, one per category, each a comma-and-space-joined
	// string of selected values. Empty when nothing is selected.
	EmotionalState   string `json:"emotional_state"`
	Triggers         string `json:"triggers"`
	Mistakes         string `json:"mistakes"`
	CorrectiveAction string `json:"corrective_action"`
}

// TagField returns the stored tag string for the given category.
func (t *Trade) TagField(c TagCategory) string {
	switch c {
	case CategoryEmotionalStates:
		return t.EmotionalState
	case CategoryTriggers:
		return t.Triggers
	case CategoryMistakes:
		return t.Mistakes
	case CategoryActions:
		return t.CorrectiveAction
	}
	return ""
}

// SetTagField stores a serialized tag string for the given category.
func (t *Trade) SetTagField(c TagCategory, v string) {
	switch c {
	case CategoryEmotionalStates:
		t.EmotionalState = v
	case CategoryTriggers:
		t.Triggers = v
	case CategoryMistakes:
		t.Mistakes = v
	case CategoryActions:
		t.CorrectiveAction = v
	}
}

// EntryTime parses the trade's entry timestamp. The zero time is
// returned for records with a missing or malformed timestamp so
// sorting stays total.
func (t *Trade) EntryTime() time.Time {
	ts, err := time.Parse(TimeLayout, t.Time)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Touch updates the last-edited timestamp to now.
func (t *Trade) Touch(now time.Time) {
	t.LastEdited = now.Format(TimeLayout)
}
