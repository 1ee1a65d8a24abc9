package model

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a time of day with minute precision, stored as minutes since midnight.
type ClockTime int

// NewClockTime builds a ClockTime from hours and minutes.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses an "HH:MM" value.
func ParseClockTime(value string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", value, err)
	}
	return NewClockTime(parsed.Hour(), parsed.Minute()), nil
}

// Hour returns the hour component.
func (clock ClockTime) Hour() int { return int(clock) / 60 }

// Minute returns the minute component.
func (clock ClockTime) Minute() int { return int(clock) % 60 }

// Valid reports whether the value is within a single day.
func (clock ClockTime) Valid() bool {
	return clock >= 0 && clock < minutesPerDay
}

func (clock ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", clock.Hour(), clock.Minute())
}

// QuietHours is a daily window during which reminders are suppressed.
type QuietHours struct {
	Enabled bool
	Start   ClockTime
	End     ClockTime
}

// Contains reports whether t falls inside the window. Both ends are inclusive
// and windows with Start after End wrap past midnight.
func (quiet QuietHours) Contains(t time.Time) bool {
	if !quiet.Enabled {
		return false
	}
	now := t.Hour()*3600 + t.Minute()*60 + t.Second()
	start := int(quiet.Start) * 60
	end := int(quiet.End) * 60
	if start <= end {
		return start <= now && now <= end
	}
	return now >= start || now <= end
}
