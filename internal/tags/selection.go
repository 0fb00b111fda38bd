package tags

import (
	"sort"
	"strings"

	"hyperliquid-journal/internal/models"
)

// ParseList splits a stored comma-and-space-joined tag string into
// its values: split on comma, trim whitespace, drop empties, dedupe.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Selection is the in-memory toggle state for one trade (or the
// new-trade draft) and one category.
//
// The underlying container is a set; iteration order is made
// deterministic by sorting at the snapshot boundary, so serialized
// tag strings are stable.
type Selection struct {
	values  map[string]struct{}
	touched bool
}

// NewSelection returns an empty, untouched selection.
func NewSelection() *Selection {
	return &Selection{values: make(map[string]struct{})}
}

// Seed initializes the selection from stored values. Once the
// selection has been seeded or edited, further seeds are no-ops so
// user edits are never silently discarded; call Reset first to
// re-seed explicitly.
func (s *Selection) Seed(initial []string) {
	if s.touched {
		return
	}
	s.touched = true
	for _, v := range initial {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s.values[v] = struct{}{}
	}
}

// Toggle adds value if absent and removes it if present.
func (s *Selection) Toggle(value string) {
	s.touched = true
	if _, ok := s.values[value]; ok {
		delete(s.values, value)
	} else {
		s.values[value] = struct{}{}
	}
}

// AddCustom adds a free-text value to the selection. The value is
// trimmed; an empty result is a no-op.
func (s *Selection) AddCustom(value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	s.touched = true
	s.values[v] = struct{}{}
}

// Contains reports whether value is currently selected.
func (s *Selection) Contains(value string) bool {
	_, ok := s.values[value]
	return ok
}

// Clear empties the selection. The selection counts as touched, so a
// later Seed will not resurrect the cleared values.
func (s *Selection) Clear() {
	s.touched = true
	s.values = make(map[string]struct{})
}

// Reset returns the selection to its pristine state, allowing a new
// Seed.
func (s *Selection) Reset() {
	s.touched = false
	s.values = make(map[string]struct{})
}

// Len returns the number of selected values.
func (s *Selection) Len() int {
	return len(s.values)
}

// Snapshot returns the current selection sorted lexicographically.
// This order defines the canonical serialized form.
func (s *Selection) Snapshot() []string {
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Serialize joins the snapshot with ", " for storage on the trade
// record. Empty selection serializes to the empty string.
func (s *Selection) Serialize() string {
	return strings.Join(s.Snapshot(), ", ")
}

// Session holds the selections of every (context, category) pair
// touched so far. A context is a trade ID or the transient new-trade
// draft. Selections are created lazily on first access.
type Session struct {
	selections map[string]map[models.TagCategory]*Selection
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{selections: make(map[string]map[models.TagCategory]*Selection)}
}

// Get returns the selection for a context and category, creating it
// if this is the first interaction.
func (ss *Session) Get(contextID string, category models.TagCategory) *Selection {
	byCat := ss.selections[contextID]
	if byCat == nil {
		byCat = make(map[models.TagCategory]*Selection)
		ss.selections[contextID] = byCat
	}
	sel := byCat[category]
	if sel == nil {
		sel = NewSelection()
		byCat[category] = sel
	}
	return sel
}

// SeedFromTrade seeds every category of the trade's context from its
// stored tag strings. Categories already touched keep their state.
func (ss *Session) SeedFromTrade(t *models.Trade) {
	for _, c := range models.Categories() {
		ss.Get(t.ID, c).Seed(ParseList(t.TagField(c)))
	}
}

// Discard drops all selection state for a context.
func (ss *Session) Discard(contextID string) {
	delete(ss.selections, contextID)
}

// Commit folds the context's non-empty selections into the usage
// stats and writes the serialized strings back onto the trade.
// Usage is recorded exactly once per call, never per render.
func (ss *Session) Commit(t *models.Trade, stats *UsageStats) error {
	for _, c := range models.Categories() {
		sel := ss.Get(t.ID, c)
		if sel.Len() > 0 {
			if err := stats.Record(c, sel.Snapshot()); err != nil {
				return err
			}
		}
		t.SetTagField(c, sel.Serialize())
	}
	return nil
}
