package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"stretchtimer/internal/core/model"
)

// SettingsFileName is the file written beside the executable.
const SettingsFileName = "stretch_timer_settings.json"

const (
	settingsFileMode = 0o644
	settingsDirMode  = 0o755
	tempFilePattern  = ".stretch_timer_settings-*.json.tmp"
)

// JSON keys of the settings file.
const (
	keyIntervalMinutes      = "interval_minutes"
	keyIntervalMinMinutes   = "interval_min_minutes"
	keyIntervalMaxMinutes   = "interval_max_minutes"
	keyQuietEnabled         = "quiet_enabled"
	keyQuietStart           = "quiet_start"
	keyQuietEnd             = "quiet_end"
	keyTheme                = "theme"
	keySoundEnabled         = "sound_enabled"
	keyNotificationsEnabled = "notifications_enabled"
	keyCustomMessage        = "custom_message"
	keyPopupTimeoutSeconds  = "popup_timeout_seconds"
	keyPopupPersistent      = "popup_persistent"
)

type jsonSettings struct {
	IntervalMinutes      int    `json:"interval_minutes"`
	IntervalMinMinutes   int    `json:"interval_min_minutes,omitempty"`
	IntervalMaxMinutes   int    `json:"interval_max_minutes,omitempty"`
	QuietEnabled         bool   `json:"quiet_enabled"`
	QuietStart           string `json:"quiet_start"`
	QuietEnd             string `json:"quiet_end"`
	Theme                string `json:"theme"`
	SoundEnabled         bool   `json:"sound_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	CustomMessage        string `json:"custom_message"`
	PopupTimeoutSeconds  int    `json:"popup_timeout_seconds"`
	PopupPersistent      bool   `json:"popup_persistent"`
}

// FieldError reports a settings field that was replaced by its default.
type FieldError struct {
	Key string
	Err error
}

func (fieldErr *FieldError) Error() string {
	return fmt.Sprintf("settings field %q: %v", fieldErr.Key, fieldErr.Err)
}

func (fieldErr *FieldError) Unwrap() error {
	return fieldErr.Err
}

// SettingsStore persists user preferences as a flat JSON object.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewSettingsStore creates a store backed by the given file.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the backing file path.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads user preferences. A missing file yields the defaults with no
// error. Any other problem still yields usable settings: unreadable or
// invalid files fall back entirely to defaults, malformed fields fall back
// individually, and the returned error describes what was replaced.
func (store *SettingsStore) Load() (model.Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	settings := model.DefaultSettings()
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &fields); err != nil {
		return settings, fmt.Errorf("parse settings json: %w", err)
	}

	return settings, applyFields(&settings, fields)
}

// Save writes the full settings object, replacing the previous file only
// once the new content is completely on disk.
func (store *SettingsStore) Save(settings model.Settings) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	serialized, err := json.MarshalIndent(toJSON(settings), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}
	serialized = append(serialized, '\n')

	tempFile, err := os.CreateTemp(filepath.Dir(store.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(serialized); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp settings file: %w", err)
	}
	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}
	if err := os.Rename(tempName, store.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false
	return nil
}

func toJSON(settings model.Settings) jsonSettings {
	fileData := jsonSettings{
		IntervalMinutes:      int(settings.Interval.Min / time.Minute),
		QuietEnabled:         settings.QuietHours.Enabled,
		QuietStart:           settings.QuietHours.Start.String(),
		QuietEnd:             settings.QuietHours.End.String(),
		Theme:                string(settings.Theme),
		SoundEnabled:         settings.SoundEnabled,
		NotificationsEnabled: settings.NotificationsEnabled,
		CustomMessage:        settings.Message,
		PopupTimeoutSeconds:  int(settings.PopupTimeout / time.Second),
		PopupPersistent:      settings.PopupPersistent,
	}
	if settings.Interval.IsRandom() {
		fileData.IntervalMinMinutes = int(settings.Interval.Min / time.Minute)
		fileData.IntervalMaxMinutes = int(settings.Interval.Max / time.Minute)
	}
	return fileData
}

func applyFields(settings *model.Settings, fields map[string]json.RawMessage) error {
	decoder := fieldDecoder{fields: fields}

	if minutes, ok := decoder.intInRange(keyIntervalMinutes, model.MinIntervalMinutes, model.MaxIntervalMinutes); ok {
		settings.Interval = model.FixedInterval(time.Duration(minutes) * time.Minute)
	}
	minMinutes, minOK := decoder.intInRange(keyIntervalMinMinutes, model.MinIntervalMinutes, model.MaxIntervalMinutes)
	maxMinutes, maxOK := decoder.intInRange(keyIntervalMaxMinutes, model.MinIntervalMinutes, model.MaxIntervalMinutes)
	if minOK && maxOK {
		if minMinutes < maxMinutes {
			settings.Interval = model.IntervalRange{
				Min: time.Duration(minMinutes) * time.Minute,
				Max: time.Duration(maxMinutes) * time.Minute,
			}
		} else {
			decoder.fail(keyIntervalMaxMinutes, fmt.Errorf("must be greater than %s", keyIntervalMinMinutes))
		}
	}

	if enabled, ok := decoder.boolean(keyQuietEnabled); ok {
		settings.QuietHours.Enabled = enabled
	}
	if start, ok := decoder.clockTime(keyQuietStart); ok {
		settings.QuietHours.Start = start
	}
	if end, ok := decoder.clockTime(keyQuietEnd); ok {
		settings.QuietHours.End = end
	}

	if value, ok := decoder.text(keyTheme); ok {
		if theme := model.Theme(value); theme.Valid() {
			settings.Theme = theme
		} else {
			decoder.fail(keyTheme, fmt.Errorf("unknown theme %q", value))
		}
	}

	if enabled, ok := decoder.boolean(keySoundEnabled); ok {
		settings.SoundEnabled = enabled
	}
	if enabled, ok := decoder.boolean(keyNotificationsEnabled); ok {
		settings.NotificationsEnabled = enabled
	}
	if message, ok := decoder.text(keyCustomMessage); ok {
		if strings.TrimSpace(message) != "" {
			settings.Message = message
		} else {
			decoder.fail(keyCustomMessage, errors.New("message is empty"))
		}
	}
	if seconds, ok := decoder.intInRange(keyPopupTimeoutSeconds, model.MinPopupTimeoutSeconds, model.MaxPopupTimeoutSeconds); ok {
		settings.PopupTimeout = time.Duration(seconds) * time.Second
	}
	if persistent, ok := decoder.boolean(keyPopupPersistent); ok {
		settings.PopupPersistent = persistent
	}

	return errors.Join(decoder.errs...)
}

// fieldDecoder decodes individual keys; absent keys are skipped silently and
// malformed keys are recorded.
type fieldDecoder struct {
	fields map[string]json.RawMessage
	errs   []error
}

func (decoder *fieldDecoder) fail(key string, err error) {
	decoder.errs = append(decoder.errs, &FieldError{Key: key, Err: err})
}

func (decoder *fieldDecoder) decode(key string, target any) bool {
	raw, ok := decoder.fields[key]
	if !ok {
		return false
	}
	if strings.TrimSpace(string(raw)) == "null" {
		decoder.fail(key, errors.New("value is null"))
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		decoder.fail(key, err)
		return false
	}
	return true
}

func (decoder *fieldDecoder) boolean(key string) (bool, bool) {
	var value bool
	ok := decoder.decode(key, &value)
	return value, ok
}

func (decoder *fieldDecoder) text(key string) (string, bool) {
	var value string
	ok := decoder.decode(key, &value)
	return value, ok
}

func (decoder *fieldDecoder) intInRange(key string, low, high int) (int, bool) {
	var value int
	if !decoder.decode(key, &value) {
		return 0, false
	}
	if value < low || value > high {
		decoder.fail(key, fmt.Errorf("%d outside [%d, %d]", value, low, high))
		return 0, false
	}
	return value, true
}

func (decoder *fieldDecoder) clockTime(key string) (model.ClockTime, bool) {
	value, ok := decoder.text(key)
	if !ok {
		return 0, false
	}
	parsed, err := model.ParseClockTime(value)
	if err != nil {
		decoder.fail(key, err)
		return 0, false
	}
	return parsed, true
}
