package pairing

import (
	"math/rand"
	"testing"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyAlternatesSecondaryCategory(t *testing.T) {
	policy := New(catalog.MustDefault(), rand.NewSource(42))

	var previous model.Category
	for i := 0; i < 50; i++ {
		pairing, err := policy.Next()
		require.NoError(t, err)

		assert.Equal(t, model.CategoryStretch, pairing.Stretch.Category)
		assert.Contains(t, []model.Category{model.CategoryEye, model.CategoryBreathing}, pairing.Secondary.Category)
		if i == 0 {
			assert.Equal(t, model.CategoryEye, pairing.Secondary.Category)
		} else {
			assert.NotEqual(t, previous, pairing.Secondary.Category, "reminder %d repeated category", i)
		}
		assert.Equal(t, pairing.Secondary.Category, policy.LastSecondary())
		previous = pairing.Secondary.Category
	}
}

func TestPolicyPicksFromCatalog(t *testing.T) {
	exercises := catalog.New(
		[]model.Exercise{{Name: "Calf Raises", Steps: []string{"Rise"}}, {Name: "Side Bends", Steps: []string{"Lean"}}},
		[]model.Exercise{{Name: "Palming", Steps: []string{"Cup"}}},
		[]model.Exercise{{Name: "Box Breathing", Steps: []string{"Inhale"}}},
	)
	policy := New(exercises, rand.NewSource(3))

	stretches := map[string]bool{}
	for i := 0; i < 40; i++ {
		pairing, err := policy.Next()
		require.NoError(t, err)
		stretches[pairing.Stretch.Name] = true
		if i%2 == 0 {
			assert.Equal(t, "Palming", pairing.Secondary.Name)
		} else {
			assert.Equal(t, "Box Breathing", pairing.Secondary.Name)
		}
	}
	assert.Len(t, stretches, 2)
}

func TestPolicyEmptyCategoryKeepsState(t *testing.T) {
	exercises := catalog.New(
		[]model.Exercise{{Name: "Calf Raises", Steps: []string{"Rise"}}},
		nil,
		[]model.Exercise{{Name: "Box Breathing", Steps: []string{"Inhale"}}},
	)
	policy := New(exercises, rand.NewSource(1))

	_, err := policy.Next()
	require.ErrorIs(t, err, catalog.ErrEmptyCategory)
	assert.Equal(t, model.CategoryBreathing, policy.LastSecondary())
}
