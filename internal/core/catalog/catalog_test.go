package catalog

import (
	"testing"

	"stretchtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 21, catalog.Len(model.CategoryStretch))
	assert.Equal(t, 6, catalog.Len(model.CategoryEye))
	assert.Equal(t, 6, catalog.Len(model.CategoryBreathing))

	for _, category := range []model.Category{model.CategoryStretch, model.CategoryEye, model.CategoryBreathing} {
		for _, exercise := range catalog.Exercises(category) {
			assert.Equal(t, category, exercise.Category)
			assert.NotEmpty(t, exercise.Name)
			assert.NotEmpty(t, exercise.Duration, exercise.Name)
			assert.NotEmpty(t, exercise.Steps, exercise.Name)
		}
	}

	first, err := catalog.At(model.CategoryEye, 0)
	require.NoError(t, err)
	assert.Equal(t, "Eye Focus - Window Gaze", first.Name)
	assert.Equal(t, "Reverse: 5 circles counter-clockwise", catalog.Exercises(model.CategoryEye)[4].Steps[3])
}

func TestParseRejectsEmptyCategory(t *testing.T) {
	_, err := Parse([]byte(`
stretches:
  - name: Calf Raises
    steps: [Rise up onto your toes]
eye:
  - name: Palming
    steps: [Cup palms over eyes]
`))
	require.ErrorIs(t, err, ErrEmptyCategory)
}

func TestParseRejectsExerciseWithoutSteps(t *testing.T) {
	_, err := Parse([]byte(`
stretches:
  - name: Calf Raises
eye:
  - name: Palming
    steps: [Cup palms over eyes]
breathing:
  - name: Box Breathing
    steps: [Inhale for 4 seconds]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Calf Raises")
}

func TestExercisesReturnsCopy(t *testing.T) {
	catalog := New(
		[]model.Exercise{{Name: "Calf Raises", Steps: []string{"Rise"}}},
		[]model.Exercise{{Name: "Palming", Steps: []string{"Cup"}}},
		[]model.Exercise{{Name: "Box Breathing", Steps: []string{"Inhale"}}},
	)

	exercises := catalog.Exercises(model.CategoryStretch)
	exercises[0].Name = "changed"

	again, err := catalog.At(model.CategoryStretch, 0)
	require.NoError(t, err)
	assert.Equal(t, "Calf Raises", again.Name)
	assert.Equal(t, model.CategoryStretch, again.Category)
}
