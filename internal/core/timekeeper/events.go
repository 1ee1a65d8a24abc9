package timekeeper

import "time"

// State represents the current TimeKeeper mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventReminder    EventType = "reminder"
	EventSuppressed  EventType = "suppressed"
)

// Reasons reported with EventSuppressed.
const (
	ReasonPaused     = "paused"
	ReasonQuietHours = "quiet_hours"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}
