package tray

import (
	"fmt"
	"time"

	"stretchtimer/internal/ui/format"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// PauseOptions are the durations offered under "Pause for...".
var PauseOptions = []time.Duration{15 * time.Minute, 30 * time.Minute, time.Hour, 2 * time.Hour}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnPauseFor    func(time.Duration)
	OnStretchNow  func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	pauseFor   *fyne.MenuItem
	paused     bool
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", call(callbacks.OnTogglePause))

	options := make([]*fyne.MenuItem, 0, len(PauseOptions))
	for _, duration := range PauseOptions {
		duration := duration
		options = append(options, fyne.NewMenuItem(PauseLabel(duration), func() {
			if callbacks.OnPauseFor != nil {
				callbacks.OnPauseFor(duration)
			}
		}))
	}
	manager.pauseFor = fyne.NewMenuItem("Pause for...", nil)
	manager.pauseFor.ChildMenu = fyne.NewMenu("", options...)

	manager.refresh()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.status {
		return
	}
	manager.status = status
	manager.refresh()
}

// SetPaused updates the pause toggle.
func (manager *Manager) SetPaused(paused bool) {
	if paused == manager.paused {
		return
	}
	manager.paused = paused
	manager.refresh()
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.status)
	if manager.paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Stretch Timer",
		manager.statusItem,
		fyne.NewMenuItem("Show", call(manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.pauseFor,
		fyne.NewMenuItem("Stretch now", call(manager.callbacks.OnStretchNow)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", call(manager.callbacks.OnQuit)),
	))
}

// StatusText is the tray status for a countdown state.
func StatusText(paused, running bool, remaining time.Duration) string {
	switch {
	case !running:
		return "stopped"
	case paused:
		return "paused"
	default:
		return "next stretch in " + format.Countdown(remaining)
	}
}

// PauseLabel renders a pause duration as a menu label.
func PauseLabel(duration time.Duration) string {
	if duration >= time.Hour && duration%time.Hour == 0 {
		hours := int(duration / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(duration/time.Minute))
}

func call(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
