package model

import "time"

// Theme selects the colour palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is known.
func (theme Theme) Valid() bool {
	return theme == ThemeLight || theme == ThemeDark
}

// Toggle returns the opposite theme.
func (theme Theme) Toggle() Theme {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Accepted ranges for user-editable values.
const (
	MinIntervalMinutes     = 1
	MaxIntervalMinutes     = 24 * 60
	MinPopupTimeoutSeconds = 10
	MaxPopupTimeoutSeconds = 300
)

// Settings defines editable user preferences.
type Settings struct {
	Interval             IntervalRange
	QuietHours           QuietHours
	Theme                Theme
	SoundEnabled         bool
	NotificationsEnabled bool

	Message         string
	PopupTimeout    time.Duration
	PopupPersistent bool
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		Interval: FixedInterval(45 * time.Minute),
		QuietHours: QuietHours{
			Enabled: false,
			Start:   NewClockTime(18, 0),
			End:     NewClockTime(8, 0),
		},
		Theme:                ThemeLight,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		Message:              "Time to Stretch!",
		PopupTimeout:         180 * time.Second,
		PopupPersistent:      false,
	}
}

// TimeKeeperConfig converts settings to TimeKeeperConfig.
func (settings Settings) TimeKeeperConfig() TimeKeeperConfig {
	return TimeKeeperConfig{
		Interval:   settings.Interval,
		QuietHours: settings.QuietHours,
	}
}
