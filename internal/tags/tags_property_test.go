package tags

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"hyperliquid-journal/internal/models"
)

// Property: toggling a value twice returns the selection to its
// original membership state, regardless of prior contents.
func TestPropertyToggleInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	tagGen := gen.RegexMatch(`[A-Za-z][A-Za-z /()']{0,30}`)

	properties.Property("double toggle restores membership", prop.ForAll(
		func(existing []string, value string) bool {
			s := NewSelection()
			s.Seed(existing)
			before := s.Contains(value)

			s.Toggle(value)
			s.Toggle(value)

			return s.Contains(value) == before
		},
		gen.SliceOf(tagGen),
		tagGen,
	))

	properties.TestingRun(t)
}

// Property: serialize then seed on a fresh selection round-trips the
// same value set, and the serialized form is lexicographically
// ordered.
func TestPropertySerializeSeedRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// no commas: the comma is the serialization delimiter
	tagGen := gen.RegexMatch(`[A-Za-z][A-Za-z ]{0,20}[A-Za-z]`)

	properties.Property("round-trip preserves the value set", prop.ForAll(
		func(values []string) bool {
			s := NewSelection()
			for _, v := range values {
				s.AddCustom(v)
			}
			serialized := s.Serialize()

			fresh := NewSelection()
			fresh.Seed(ParseList(serialized))

			original := s.Snapshot()
			roundTripped := fresh.Snapshot()
			if len(original) != len(roundTripped) {
				return false
			}
			for i := range original {
				if original[i] != roundTripped[i] {
					return false
				}
			}
			// canonical order is lexicographic
			return strings.Join(original, ", ") == serialized
		},
		gen.SliceOf(tagGen),
	))

	properties.TestingRun(t)
}

// Property: tiers are monotone in the count and cover the documented
// boundaries.
func TestPropertyTierMonotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	rank := func(tr Tier) int {
		switch tr {
		case TierNone:
			return 0
		case TierLow:
			return 1
		case TierMedium:
			return 2
		default:
			return 3
		}
	}

	properties.Property("higher count never lowers the tier", prop.ForAll(
		func(a, b int) bool {
			if a > b {
				a, b = b, a
			}
			return rank(TierForCount(a)) <= rank(TierForCount(b))
		},
		gen.IntRange(0, 10000),
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}

// Property: committing a selection increments each selected value by
// exactly one, independent of value length.
func TestPropertyCommitIncrementsOnce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	tagGen := gen.RegexMatch(`[A-Za-z][A-Za-z ]{0,20}[A-Za-z]`)

	properties.Property("one increment per value per commit", prop.ForAll(
		func(values []string) bool {
			trade := &models.Trade{ID: "t"}
			ss := NewSession()
			sel := ss.Get("t", models.CategoryEmotionalStates)
			for _, v := range values {
				sel.AddCustom(v)
			}

			stats := NewUsageStats()
			if err := ss.Commit(trade, stats); err != nil {
				return false
			}
			for _, v := range sel.Snapshot() {
				if stats.Count(models.CategoryEmotionalStates, v) != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(tagGen),
	))

	properties.TestingRun(t)
}
