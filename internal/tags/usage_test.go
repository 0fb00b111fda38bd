package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

func TestCountZeroBeforeRecord(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	for _, c := range models.Categories() {
		assert.Equal(t, 0, u.Count(c, "Fear"))
		assert.Equal(t, TierNone, u.Tier(c, "Fear"))
	}
}

func TestRecordIncrementsOncePerCall(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	for i := 0; i < 4; i++ {
		require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{"Fear"}))
	}
	assert.Equal(t, 4, u.Count(models.CategoryEmotionalStates, "Fear"))

	// one increment per value, not per character
	require.NoError(t, u.Record(models.CategoryTriggers, []string{"Recent losses"}))
	assert.Equal(t, 1, u.Count(models.CategoryTriggers, "Recent losses"))
	assert.Equal(t, 0, u.Count(models.CategoryTriggers, "R"))
}

func TestRecordEmptySetNoOp(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	require.NoError(t, u.Record(models.CategoryMistakes, nil))
	assert.Empty(t, u.TopN(models.CategoryMistakes, 10))
}

func TestRecordUnknownCategory(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	err := u.Record(models.TagCategory("moods"), []string{"Fear"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownCategory)
}

func TestTierBoundaries(t *testing.T) {
	t.Parallel()

	cases := map[int]Tier{
		0:    TierNone,
		1:    TierLow,
		2:    TierLow,
		3:    TierMedium,
		5:    TierMedium,
		6:    TierHigh,
		1000: TierHigh,
	}
	for count, want := range cases {
		assert.Equal(t, want, TierForCount(count), "count %d", count)
	}
}

func TestTopNInsertionOrderTiebreak(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	record := func(value string, times int) {
		for i := 0; i < times; i++ {
			require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{value}))
		}
	}
	record("Fear", 5)
	record("Greed", 5)
	record("Panic", 2)

	top := u.TopN(models.CategoryEmotionalStates, 3)
	require.Len(t, top, 3)
	assert.Equal(t, Ranked{"Fear", 5}, top[0])
	assert.Equal(t, Ranked{"Greed", 5}, top[1])
	assert.Equal(t, Ranked{"Panic", 2}, top[2])

	// truncation
	assert.Len(t, u.TopN(models.CategoryEmotionalStates, 2), 2)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emotional_stats.json")

	u := NewUsageStats()
	require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{"Fear", "Greed"}))
	require.NoError(t, u.Record(models.CategoryActions, []string{"Take regular breaks"}))
	require.NoError(t, u.Save(path))

	loaded := NewUsageStats()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 1, loaded.Count(models.CategoryEmotionalStates, "Fear"))
	assert.Equal(t, 1, loaded.Count(models.CategoryEmotionalStates, "Greed"))
	assert.Equal(t, 1, loaded.Count(models.CategoryActions, "Take regular breaks"))
	assert.Equal(t, 0, loaded.Count(models.CategoryTriggers, "Price surges"))
}

func TestLoadMissingFileIsNoOp(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	require.NoError(t, u.Load(filepath.Join(t.TempDir(), "absent.json")))
	assert.Empty(t, u.TopN(models.CategoryEmotionalStates, 10))
}

func TestLoadMergesIntoCurrentState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"emotional_states":{"Fear":3}}`), 0o644))

	u := NewUsageStats()
	require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{"Fear"}))
	require.NoError(t, u.Load(path))
	assert.Equal(t, 4, u.Count(models.CategoryEmotionalStates, "Fear"))
}

func TestLoadMalformedLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	u := NewUsageStats()
	require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{"Fear"}))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"emotional_states": not json`), 0o644))
	assert.Error(t, u.Load(bad))
	assert.Equal(t, 1, u.Count(models.CategoryEmotionalStates, "Fear"))

	// non-integer counts are a reported failure as well
	nonInt := filepath.Join(dir, "nonint.json")
	require.NoError(t, os.WriteFile(nonInt, []byte(`{"emotional_states":{"Fear":"many"}}`), 0o644))
	assert.Error(t, u.Load(nonInt))
	assert.Equal(t, 1, u.Count(models.CategoryEmotionalStates, "Fear"))
}

func TestSaveWritesAllFourCategories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, NewUsageStats().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, c := range models.Categories() {
		assert.Contains(t, string(data), string(c))
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	u := NewUsageStats()
	require.NoError(t, u.Record(models.CategoryEmotionalStates, []string{"Fear"}))
	u.Reset()
	assert.Equal(t, 0, u.Count(models.CategoryEmotionalStates, "Fear"))
	assert.Empty(t, u.TopN(models.CategoryEmotionalStates, 10))
}
