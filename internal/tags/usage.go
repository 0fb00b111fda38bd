package tags

import (
	"encoding/json"
	"os"
	"sort"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

// Tier is a discrete popularity bucket derived from a usage count.
// It drives how prominently a tag is rendered.
type Tier string

const (
	TierNone   Tier = "none"
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TierForCount maps a usage count to its tier.
func TierForCount(count int) Tier {
	switch {
	case count <= 0:
		return TierNone
	case count <= 2:
		return TierLow
	case count <= 5:
		return TierMedium
	default:
		return TierHigh
	}
}

// UsageStats tracks how often each tag value has been committed,
// per category, across the whole journal history.
//
// Counts are monotonically non-decreasing; a value never recorded
// has an implicit count of zero and no map entry. Not safe for
// concurrent use; the journal is a single-user, single-process tool.
type UsageStats struct {
	counts map[models.TagCategory]map[string]int
	// first-recorded order per category, for stable ranking ties
	order map[models.TagCategory][]string
}

// NewUsageStats returns an empty stats store.
func NewUsageStats() *UsageStats {
	return &UsageStats{
		counts: make(map[models.TagCategory]map[string]int),
		order:  make(map[models.TagCategory][]string),
	}
}

// Record increments the counter of every value by exactly one.
// An empty value set is a no-op.
func (u *UsageStats) Record(category models.TagCategory, values []string) error {
	if !category.Valid() {
		return errors.Wrapf(errors.ErrUnknownCategory, "%q", category)
	}
	for _, v := range values {
		u.bump(category, v, 1)
	}
	return nil
}

func (u *UsageStats) bump(category models.TagCategory, value string, by int) {
	m := u.counts[category]
	if m == nil {
		m = make(map[string]int)
		u.counts[category] = m
	}
	if _, seen := m[value]; !seen {
		u.order[category] = append(u.order[category], value)
	}
	m[value] += by
}

// Count returns the recorded count for a value, zero if never seen.
func (u *UsageStats) Count(category models.TagCategory, value string) int {
	return u.counts[category][value]
}

// Tier returns the popularity tier for a value.
func (u *UsageStats) Tier(category models.TagCategory, value string) Tier {
	return TierForCount(u.Count(category, value))
}

// Ranked is one entry of a usage ranking.
type Ranked struct {
	Value string
	Count int
}

// TopN returns up to n values of a category ordered by descending
// count. Ties keep first-recorded order.
func (u *UsageStats) TopN(category models.TagCategory, n int) []Ranked {
	seen := u.order[category]
	ranked := make([]Ranked, 0, len(seen))
	for _, v := range seen {
		ranked = append(ranked, Ranked{Value: v, Count: u.counts[category][v]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Reset drops all counters.
func (u *UsageStats) Reset() {
	u.counts = make(map[models.TagCategory]map[string]int)
	u.order = make(map[models.TagCategory][]string)
}

// Save writes the full mapping to path as indented JSON, overwriting
// any existing file. The file always carries all four category keys.
func (u *UsageStats) Save(path string) error {
	out := make(map[models.TagCategory]map[string]int, 4)
	for _, c := range models.Categories() {
		m := make(map[string]int, len(u.counts[c]))
		for v, n := range u.counts[c] {
			m[v] = n
		}
		out[c] = m
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding usage stats")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing usage stats")
	}
	return nil
}

// Load merges the contents of path into the current counters. A
// missing file is a successful no-op. A malformed file is an error
// and leaves the current state unchanged.
func (u *UsageStats) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "reading usage stats")
	}

	var parsed map[models.TagCategory]map[string]int
	if err := json.Unmarshal(data, &parsed); err != nil {
		return errors.Wrap(err, "parsing usage stats")
	}

	for _, c := range models.Categories() {
		vals := parsed[c]
		// deterministic merge order
		keys := make([]string, 0, len(vals))
		for v := range vals {
			keys = append(keys, v)
		}
		sort.Strings(keys)
		for _, v := range keys {
			if n := vals[v]; n > 0 {
				u.bump(c, v, n)
			}
		}
	}
	return nil
}
