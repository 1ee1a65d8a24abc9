// Package format renders timer values and exercise text for display.
package format

import (
	"fmt"
	"strings"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/timekeeper"
)

// Countdown renders a remaining duration as mm:ss.
func Countdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Session renders elapsed session time as h:mm once past an hour and m:ss before.
func Session(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := int(elapsed / time.Second)
	hours, rest := seconds/3600, seconds%3600
	minutes, seconds := rest/60, rest%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d", hours, minutes)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Status describes a scheduler state.
func Status(state timekeeper.State) string {
	switch state {
	case timekeeper.StateRunning:
		return "Timer running..."
	case timekeeper.StatePaused:
		return "Paused"
	default:
		return "Timer stopped"
	}
}

// Steps numbers exercise steps one per line.
func Steps(steps []string) string {
	lines := make([]string, len(steps))
	for i, step := range steps {
		lines[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return strings.Join(lines, "\n")
}

// SecondaryHeading labels the secondary exercise, e.g. "Eye Break: Palming".
func SecondaryHeading(exercise model.Exercise) string {
	return fmt.Sprintf("%s: %s", exercise.Category.Label(), exercise.Name)
}

// StretchHeading names the stretch with its duration when known.
func StretchHeading(exercise model.Exercise) string {
	if exercise.Duration == "" {
		return exercise.Name
	}
	return fmt.Sprintf("%s (%s)", exercise.Name, exercise.Duration)
}

// Interval describes the reminder cadence.
func Interval(interval model.IntervalRange) string {
	if interval.IsRandom() {
		return fmt.Sprintf("every %d-%d min", int(interval.Min/time.Minute), int(interval.Max/time.Minute))
	}
	return fmt.Sprintf("every %d min", int(interval.Min/time.Minute))
}
