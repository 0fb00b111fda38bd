package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

func TestOptionsPerCategory(t *testing.T) {
	t.Parallel()

	for _, c := range models.Categories() {
		opts, err := Options(c)
		require.NoError(t, err)
		assert.Len(t, opts, 10, "category %s", c)
	}
}

func TestOptionsUnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := Options(models.TagCategory("vibes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownCategory)
}

func TestOptionsReturnsCopy(t *testing.T) {
	t.Parallel()

	opts, err := Options(models.CategoryEmotionalStates)
	require.NoError(t, err)
	opts[0] = "Mutated"

	again, err := Options(models.CategoryEmotionalStates)
	require.NoError(t, err)
	assert.Equal(t, "Fear", again[0])
}

func TestIsCustom(t *testing.T) {
	t.Parallel()

	assert.False(t, IsCustom(models.CategoryEmotionalStates, "Fear"))
	assert.True(t, IsCustom(models.CategoryEmotionalStates, "Boredom"))
	assert.False(t, IsCustom(models.CategoryMistakes, "Overtrading"))
	assert.True(t, IsCustom(models.TagCategory("vibes"), "anything"))
}
