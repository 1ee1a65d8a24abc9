package preferences

import (
	"testing"
	"time"

	"stretchtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormRoundTripsDefaults(t *testing.T) {
	settings, err := FormFromSettings(model.DefaultSettings()).Settings(model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestFormRandomInterval(t *testing.T) {
	form := FormFromSettings(model.DefaultSettings())
	form.IntervalMinutes = "30"
	form.RandomInterval = true
	form.IntervalMaxMinutes = "60"

	settings, err := form.Settings(model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, model.IntervalRange{Min: 30 * time.Minute, Max: 60 * time.Minute}, settings.Interval)

	back := FormFromSettings(settings)
	assert.True(t, back.RandomInterval)
	assert.Equal(t, "60", back.IntervalMaxMinutes)
}

func TestFormIgnoresMaximumWhenNotRandom(t *testing.T) {
	form := FormFromSettings(model.DefaultSettings())
	form.IntervalMaxMinutes = "nonsense"

	settings, err := form.Settings(model.DefaultSettings())
	require.NoError(t, err)
	assert.False(t, settings.Interval.IsRandom())
}

func TestFormRejectsInvalidValues(t *testing.T) {
	cases := map[string]func(*Form){
		"interval zero":        func(form *Form) { form.IntervalMinutes = "0" },
		"interval not numeric": func(form *Form) { form.IntervalMinutes = "soon" },
		"max below min": func(form *Form) {
			form.RandomInterval = true
			form.IntervalMaxMinutes = "10"
		},
		"quiet start": func(form *Form) {
			form.QuietEnabled = true
			form.QuietStart = "25:00"
		},
		"quiet end": func(form *Form) {
			form.QuietEnabled = true
			form.QuietEnd = "8am"
		},
		"theme":         func(form *Form) { form.Theme = "sepia" },
		"blank message": func(form *Form) { form.Message = "   " },
		"popup timeout": func(form *Form) { form.PopupTimeoutSeconds = "5" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			form := FormFromSettings(model.DefaultSettings())
			mutate(&form)
			_, err := form.Settings(model.DefaultSettings())
			assert.Error(t, err)
		})
	}
}

func TestFormTrimsInput(t *testing.T) {
	form := FormFromSettings(model.DefaultSettings())
	form.IntervalMinutes = " 20 "
	form.QuietEnabled = true
	form.QuietStart = " 22:00"
	form.Message = "  Move!  "

	settings, err := form.Settings(model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, model.FixedInterval(20*time.Minute), settings.Interval)
	assert.Equal(t, model.NewClockTime(22, 0), settings.QuietHours.Start)
	assert.Equal(t, "Move!", settings.Message)
}

func TestFormKeepsQuietTimesWhenDisabled(t *testing.T) {
	current := model.DefaultSettings()
	current.QuietHours = model.QuietHours{Start: model.NewClockTime(21, 30), End: model.NewClockTime(6, 45)}

	form := FormFromSettings(current)
	form.QuietStart = "25:00"
	form.QuietEnd = ""

	settings, err := form.Settings(current)
	require.NoError(t, err)
	assert.False(t, settings.QuietHours.Enabled)
	assert.Equal(t, current.QuietHours, settings.QuietHours)

	form.QuietEnabled = true
	_, err = form.Settings(current)
	assert.ErrorContains(t, err, "quiet hours start")
}
