package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyperliquid-journal/internal/models"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseList(""))
	assert.Nil(t, ParseList("   "))
	assert.Equal(t, []string{"Fear"}, ParseList("Fear"))
	assert.Equal(t, []string{"Fear", "Greed"}, ParseList("Fear, Greed"))
	assert.Equal(t, []string{"Fear", "Greed"}, ParseList(" Fear ,, Greed , Fear "))
}

func TestToggle(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.Toggle("Fear")
	assert.True(t, s.Contains("Fear"))
	s.Toggle("Fear")
	assert.False(t, s.Contains("Fear"))
	assert.Equal(t, 0, s.Len())
}

func TestSeedOnlyOnce(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.Seed([]string{"Fear", "Greed"})
	assert.Equal(t, []string{"Fear", "Greed"}, s.Snapshot())

	// later seeds must not discard edits
	s.Toggle("Greed")
	s.Seed([]string{"Panic"})
	assert.Equal(t, []string{"Fear"}, s.Snapshot())
}

func TestSeedAfterUserClearIsNoOp(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.Seed([]string{"Fear"})
	s.Clear()
	s.Seed([]string{"Fear"})
	assert.Equal(t, 0, s.Len())

	// explicit reset re-enables seeding
	s.Reset()
	s.Seed([]string{"Hope"})
	assert.Equal(t, []string{"Hope"}, s.Snapshot())
}

func TestAddCustomTrims(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.AddCustom("  Boredom  ")
	s.AddCustom("   ")
	assert.Equal(t, []string{"Boredom"}, s.Snapshot())
}

func TestSerializeSorted(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.Toggle("Greed")
	s.Toggle("Anxiety")
	s.Toggle("Fear")
	assert.Equal(t, "Anxiety, Fear, Greed", s.Serialize())

	empty := NewSelection()
	assert.Equal(t, "", empty.Serialize())
}

func TestSessionLazyAndSeparate(t *testing.T) {
	t.Parallel()

	ss := NewSession()
	a := ss.Get("trade-1", models.CategoryEmotionalStates)
	b := ss.Get("trade-1", models.CategoryEmotionalStates)
	assert.Same(t, a, b)

	other := ss.Get("trade-2", models.CategoryEmotionalStates)
	other.Toggle("Fear")
	assert.Equal(t, 0, a.Len())
}

func TestSessionSeedFromTrade(t *testing.T) {
	t.Parallel()

	trade := &models.Trade{ID: "t1", EmotionalState: "Fear, Greed", Mistakes: "Overtrading"}
	ss := NewSession()
	ss.SeedFromTrade(trade)

	assert.Equal(t, []string{"Fear", "Greed"}, ss.Get("t1", models.CategoryEmotionalStates).Snapshot())
	assert.Equal(t, []string{"Overtrading"}, ss.Get("t1", models.CategoryMistakes).Snapshot())
	assert.Equal(t, 0, ss.Get("t1", models.CategoryTriggers).Len())
}

func TestSessionCommit(t *testing.T) {
	t.Parallel()

	trade := &models.Trade{ID: "t1", EmotionalState: "Fear"}
	ss := NewSession()
	ss.SeedFromTrade(trade)
	ss.Get("t1", models.CategoryEmotionalStates).Toggle("Greed")
	ss.Get("t1", models.CategoryActions).AddCustom("Walk away")

	stats := NewUsageStats()
	require.NoError(t, ss.Commit(trade, stats))

	assert.Equal(t, "Fear, Greed", trade.EmotionalState)
	assert.Equal(t, "Walk away", trade.CorrectiveAction)
	assert.Equal(t, "", trade.Triggers)

	assert.Equal(t, 1, stats.Count(models.CategoryEmotionalStates, "Fear"))
	assert.Equal(t, 1, stats.Count(models.CategoryEmotionalStates, "Greed"))
	assert.Equal(t, 1, stats.Count(models.CategoryActions, "Walk away"))
	// empty categories record nothing
	assert.Empty(t, stats.TopN(models.CategoryTriggers, 5))
}
