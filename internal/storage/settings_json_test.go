package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stretchtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SettingsStore {
	t.Helper()
	return NewSettingsStore(filepath.Join(t.TempDir(), SettingsFileName))
}

func writeSettingsFile(t *testing.T, store *SettingsStore, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o644))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadMissingFieldKeepsOthers(t *testing.T) {
	store := newTestStore(t)
	writeSettingsFile(t, store, `{
  "interval_minutes": 20,
  "quiet_enabled": true,
  "quiet_start": "22:00",
  "quiet_end": "07:00",
  "theme": "dark",
  "notifications_enabled": false,
  "custom_message": "Stand up!",
  "popup_timeout_seconds": 60,
  "popup_persistent": true
}`)

	settings, err := store.Load()
	require.NoError(t, err)

	expected := model.Settings{
		Interval: model.FixedInterval(20 * time.Minute),
		QuietHours: model.QuietHours{
			Enabled: true,
			Start:   model.NewClockTime(22, 0),
			End:     model.NewClockTime(7, 0),
		},
		Theme:                model.ThemeDark,
		SoundEnabled:         model.DefaultSettings().SoundEnabled,
		NotificationsEnabled: false,
		Message:              "Stand up!",
		PopupTimeout:         60 * time.Second,
		PopupPersistent:      true,
	}
	assert.Equal(t, expected, settings)
}

func TestLoadMalformedFieldsFallBackIndividually(t *testing.T) {
	store := newTestStore(t)
	writeSettingsFile(t, store, `{
  "interval_minutes": "soon",
  "quiet_enabled": true,
  "quiet_start": "10pm",
  "theme": "purple",
  "sound_enabled": false,
  "popup_timeout_seconds": 5000,
  "custom_message": null,
  "unknown_key": [1, 2, 3]
}`)

	settings, err := store.Load()
	require.Error(t, err)

	defaults := model.DefaultSettings()
	assert.Equal(t, defaults.Interval, settings.Interval)
	assert.True(t, settings.QuietHours.Enabled)
	assert.Equal(t, defaults.QuietHours.Start, settings.QuietHours.Start)
	assert.Equal(t, defaults.Theme, settings.Theme)
	assert.False(t, settings.SoundEnabled)
	assert.Equal(t, defaults.PopupTimeout, settings.PopupTimeout)
	assert.Equal(t, defaults.Message, settings.Message)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	for _, key := range []string{"interval_minutes", "quiet_start", "theme", "popup_timeout_seconds", "custom_message"} {
		assert.Contains(t, err.Error(), key)
	}
	assert.NotContains(t, err.Error(), "unknown_key")
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)
	writeSettingsFile(t, store, `{"interval_minutes": 20,`)

	settings, err := store.Load()
	require.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadIntervalRange(t *testing.T) {
	store := newTestStore(t)
	writeSettingsFile(t, store, `{"interval_minutes": 30, "interval_min_minutes": 25, "interval_max_minutes": 50}`)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.IntervalRange{Min: 25 * time.Minute, Max: 50 * time.Minute}, settings.Interval)

	writeSettingsFile(t, store, `{"interval_minutes": 30, "interval_min_minutes": 50, "interval_max_minutes": 25}`)
	settings, err = store.Load()
	require.Error(t, err)
	assert.Equal(t, model.FixedInterval(30*time.Minute), settings.Interval)
}

func TestSaveRoundTripLeavesNoTempFiles(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "nested", SettingsFileName))

	settings := model.DefaultSettings()
	settings.Interval = model.IntervalRange{Min: 30 * time.Minute, Max: 60 * time.Minute}
	settings.QuietHours = model.QuietHours{Enabled: true, Start: model.NewClockTime(21, 30), End: model.NewClockTime(6, 45)}
	settings.Theme = model.ThemeDark
	settings.SoundEnabled = false
	settings.Message = "Move!"

	require.NoError(t, store.Save(settings))
	settings.Message = "Move again!"
	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SettingsFileName, entries[0].Name())
}

func TestSaveWritesOriginalKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(model.DefaultSettings()))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{
  "interval_minutes": 45,
  "quiet_enabled": false,
  "quiet_start": "18:00",
  "quiet_end": "08:00",
  "theme": "light",
  "sound_enabled": true,
  "notifications_enabled": true,
  "custom_message": "Time to Stretch!",
  "popup_timeout_seconds": 180,
  "popup_persistent": false
}`, string(raw))
}
