package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stretchtimer/internal/core/model"
)

// Form holds the raw field values of the preferences window.
type Form struct {
	IntervalMinutes    string
	RandomInterval     bool
	IntervalMaxMinutes string

	QuietEnabled bool
	QuietStart   string
	QuietEnd     string

	Theme                string
	SoundEnabled         bool
	NotificationsEnabled bool
	Message              string
	PopupTimeoutSeconds  string
	PopupPersistent      bool
}

// FormFromSettings fills a form from saved settings.
func FormFromSettings(settings model.Settings) Form {
	return Form{
		IntervalMinutes:      strconv.Itoa(int(settings.Interval.Min / time.Minute)),
		RandomInterval:       settings.Interval.IsRandom(),
		IntervalMaxMinutes:   strconv.Itoa(int(settings.Interval.Max / time.Minute)),
		QuietEnabled:         settings.QuietHours.Enabled,
		QuietStart:           settings.QuietHours.Start.String(),
		QuietEnd:             settings.QuietHours.End.String(),
		Theme:                string(settings.Theme),
		SoundEnabled:         settings.SoundEnabled,
		NotificationsEnabled: settings.NotificationsEnabled,
		Message:              settings.Message,
		PopupTimeoutSeconds:  strconv.Itoa(int(settings.PopupTimeout / time.Second)),
		PopupPersistent:      settings.PopupPersistent,
	}
}

// Settings validates the form and returns the resulting settings. Quiet
// hours times are only checked while quiet hours are enabled; otherwise
// unparsable times fall back to the ones in current.
func (form Form) Settings(current model.Settings) (model.Settings, error) {
	var errs []error
	settings := model.Settings{
		QuietHours:           model.QuietHours{Enabled: form.QuietEnabled},
		Theme:                model.Theme(form.Theme),
		SoundEnabled:         form.SoundEnabled,
		NotificationsEnabled: form.NotificationsEnabled,
		Message:              strings.TrimSpace(form.Message),
		PopupPersistent:      form.PopupPersistent,
	}

	minMinutes, err := parseBounded("Interval", form.IntervalMinutes, model.MinIntervalMinutes, model.MaxIntervalMinutes)
	errs = append(errs, err)
	settings.Interval = model.FixedInterval(time.Duration(minMinutes) * time.Minute)
	if form.RandomInterval && err == nil {
		maxMinutes, err := parseBounded("Maximum interval", form.IntervalMaxMinutes, model.MinIntervalMinutes, model.MaxIntervalMinutes)
		switch {
		case err != nil:
			errs = append(errs, err)
		case maxMinutes <= minMinutes:
			errs = append(errs, fmt.Errorf("maximum interval must be greater than %d minutes", minMinutes))
		default:
			settings.Interval.Max = time.Duration(maxMinutes) * time.Minute
		}
	}

	settings.QuietHours.Start, err = form.quietTime("start", form.QuietStart, current.QuietHours.Start)
	errs = append(errs, err)
	settings.QuietHours.End, err = form.quietTime("end", form.QuietEnd, current.QuietHours.End)
	errs = append(errs, err)

	if !settings.Theme.Valid() {
		errs = append(errs, fmt.Errorf("unknown theme %q", form.Theme))
	}
	if settings.Message == "" {
		errs = append(errs, errors.New("reminder message is empty"))
	}

	seconds, err := parseBounded("Popup timeout", form.PopupTimeoutSeconds, model.MinPopupTimeoutSeconds, model.MaxPopupTimeoutSeconds)
	errs = append(errs, err)
	settings.PopupTimeout = time.Duration(seconds) * time.Second

	if err := errors.Join(errs...); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (form Form) quietTime(field, value string, current model.ClockTime) (model.ClockTime, error) {
	parsed, err := model.ParseClockTime(strings.TrimSpace(value))
	switch {
	case err == nil:
		return parsed, nil
	case !form.QuietEnabled:
		return current, nil
	default:
		return 0, fmt.Errorf("quiet hours %s: %w", field, err)
	}
}

func parseBounded(field, value string, low, high int) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(field))
	}
	if parsed < low || parsed > high {
		return 0, fmt.Errorf("%s must be between %d and %d", strings.ToLower(field), low, high)
	}
	return parsed, nil
}
