package app

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/pairing"
	"stretchtimer/internal/core/timekeeper"
	"stretchtimer/internal/logfields"
	"stretchtimer/internal/platform"

	"github.com/jonboulle/clockwork"
)

// Dispatcher runs functions on the UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

// Post calls dispatch(fn).
func (dispatch DispatcherFunc) Post(fn func()) { dispatch(fn) }

// Presenter renders application state. All calls arrive through the Dispatcher.
type Presenter interface {
	ShowReminder(reminder model.Reminder, settings model.Settings)
	ShowStatus(status Status)
	ApplySettings(settings model.Settings)
}

// SettingsStore persists settings.
type SettingsStore interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}

// Stats summarises the current session.
type Stats struct {
	Count   int
	Session time.Duration
}

// Status is the countdown snapshot shown by the presenter.
type Status struct {
	State     timekeeper.State
	Remaining time.Duration
	Progress  float64
	Stats     Stats
}

// Deps are the collaborators of a Context.
type Deps struct {
	Store      SettingsStore
	Keeper     *timekeeper.TimeKeeper
	Policy     *pairing.Policy
	Notifier   platform.Notifier
	Sound      platform.SoundPlayer
	Dispatcher Dispatcher
	Clock      clockwork.Clock
	Logger     *slog.Logger
}

// Context owns the running application state.
type Context struct {
	deps Deps

	mu           sync.Mutex
	settings     model.Settings
	presenter    Presenter
	sessionStart time.Time
	pauseTimer   clockwork.Timer

	count    atomic.Int64
	pumpDone chan struct{}
}

// New wires the scheduler callback and starts forwarding scheduler events.
func New(settings model.Settings, deps Deps) *Context {
	if deps.Notifier == nil {
		deps.Notifier = platform.NoopNotifier{}
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = DispatcherFunc(func(fn func()) { fn() })
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	ctx := &Context{
		deps:     deps,
		settings: settings,
		pumpDone: make(chan struct{}),
	}
	deps.Keeper.SetOnFire(ctx.handleFire)
	go ctx.pump(deps.Keeper.Subscribe(32))
	return ctx
}

// SetPresenter attaches the UI.
func (ctx *Context) SetPresenter(presenter Presenter) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.presenter = presenter
}

// Settings returns the in-memory settings.
func (ctx *Context) Settings() model.Settings {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.settings
}

// UpdateSettings applies and persists new settings. The settings stay
// applied even when saving fails.
func (ctx *Context) UpdateSettings(updated model.Settings) error {
	ctx.apply(updated)
	if err := ctx.deps.Store.Save(updated); err != nil {
		ctx.deps.Logger.Error("Failed to save settings", logfields.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ReloadSettings applies settings read back from disk without saving them.
// It reports false when nothing changed.
func (ctx *Context) ReloadSettings(loaded model.Settings) bool {
	if loaded == ctx.Settings() {
		return false
	}
	ctx.deps.Logger.Info("Settings changed on disk")
	ctx.apply(loaded)
	return true
}

// ToggleTheme flips between the light and dark theme.
func (ctx *Context) ToggleTheme() error {
	settings := ctx.Settings()
	settings.Theme = settings.Theme.Toggle()
	return ctx.UpdateSettings(settings)
}

// Start begins a new session.
func (ctx *Context) Start() {
	ctx.mu.Lock()
	ctx.sessionStart = ctx.deps.Clock.Now()
	ctx.mu.Unlock()
	ctx.count.Store(0)
	ctx.deps.Keeper.Start()
}

// Stop ends the session.
func (ctx *Context) Stop() {
	ctx.cancelPauseTimer()
	ctx.deps.Keeper.Stop()
}

// IsRunning reports whether the countdown is active.
func (ctx *Context) IsRunning() bool {
	return ctx.deps.Keeper.IsRunning()
}

// IsPaused reports whether the countdown is frozen.
func (ctx *Context) IsPaused() bool {
	return ctx.deps.Keeper.IsPaused()
}

// TogglePause pauses or resumes the countdown and returns the new paused state.
func (ctx *Context) TogglePause() bool {
	ctx.cancelPauseTimer()
	if ctx.deps.Keeper.IsPaused() {
		ctx.deps.Keeper.Resume()
		return false
	}
	ctx.deps.Keeper.Pause()
	return true
}

// PauseFor pauses now and resumes automatically after duration.
func (ctx *Context) PauseFor(duration time.Duration) {
	ctx.cancelPauseTimer()
	ctx.deps.Keeper.Pause()
	timer := ctx.deps.Clock.AfterFunc(duration, func() {
		ctx.deps.Keeper.Resume()
	})
	ctx.mu.Lock()
	ctx.pauseTimer = timer
	ctx.mu.Unlock()
	ctx.deps.Logger.Info("Reminders paused", slog.Duration("for", duration))
}

// TriggerNow shows a reminder immediately and restarts the countdown.
func (ctx *Context) TriggerNow() error {
	err := ctx.remind(ctx.deps.Clock.Now())
	ctx.deps.Keeper.Reset()
	return err
}

// Stats returns the reminder count and session length.
func (ctx *Context) Stats() Stats {
	ctx.mu.Lock()
	start := ctx.sessionStart
	ctx.mu.Unlock()

	stats := Stats{Count: int(ctx.count.Load())}
	if !start.IsZero() && ctx.deps.Keeper.IsRunning() {
		stats.Session = ctx.deps.Clock.Since(start)
	}
	return stats
}

// Close stops the scheduler, waits for the event pump and saves settings.
func (ctx *Context) Close() error {
	ctx.cancelPauseTimer()
	ctx.deps.Keeper.Close()
	<-ctx.pumpDone
	if err := ctx.deps.Store.Save(ctx.Settings()); err != nil {
		return fmt.Errorf("save settings on exit: %w", err)
	}
	return nil
}

func (ctx *Context) apply(settings model.Settings) {
	ctx.mu.Lock()
	ctx.settings = settings
	ctx.mu.Unlock()

	ctx.deps.Keeper.UpdateConfig(settings.TimeKeeperConfig())
	ctx.present(func(presenter Presenter) {
		presenter.ApplySettings(settings)
	})
}

func (ctx *Context) handleFire(at time.Time) error {
	return ctx.remind(at)
}

func (ctx *Context) remind(at time.Time) error {
	pair, err := ctx.deps.Policy.Next()
	if err != nil {
		return fmt.Errorf("select exercises: %w", err)
	}

	settings := ctx.Settings()
	reminder := model.Reminder{
		Sequence: int(ctx.count.Add(1)),
		At:       at,
		Message:  settings.Message,
		Pairing:  pair,
	}
	ctx.deps.Logger.Info("Reminder due",
		logfields.Sequence(reminder.Sequence),
		logfields.Stretch(pair.Stretch.Name),
		logfields.Secondary(pair.Secondary.Name),
		logfields.Category(string(pair.Secondary.Category)))

	if settings.SoundEnabled && ctx.deps.Sound != nil {
		if err := ctx.deps.Sound.PlayAlert(); err != nil {
			ctx.deps.Logger.Debug("Alert sound unavailable", logfields.Error(err))
		}
	}
	if settings.NotificationsEnabled {
		title, message := NotificationText(reminder)
		if err := ctx.deps.Notifier.Notify(title, message); err != nil {
			ctx.deps.Logger.Debug("Desktop notification unavailable", logfields.Error(err))
		}
	}

	ctx.present(func(presenter Presenter) {
		presenter.ShowReminder(reminder, settings)
	})
	return nil
}

func (ctx *Context) pump(events <-chan timekeeper.Event) {
	defer close(ctx.pumpDone)
	for event := range events {
		if event.Type == timekeeper.EventSuppressed {
			ctx.deps.Logger.Info("Reminder skipped", logfields.Reason(event.Message))
		}
		status := Status{
			State:     event.State,
			Remaining: event.Remaining,
			Progress:  event.Progress,
			Stats:     ctx.Stats(),
		}
		ctx.present(func(presenter Presenter) {
			presenter.ShowStatus(status)
		})
	}
}

func (ctx *Context) present(render func(Presenter)) {
	ctx.mu.Lock()
	presenter := ctx.presenter
	ctx.mu.Unlock()
	if presenter == nil {
		return
	}

	ctx.deps.Dispatcher.Post(func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				ctx.deps.Logger.Error("Presenter failed", logfields.Panic(recovered))
			}
		}()
		render(presenter)
	})
}

func (ctx *Context) cancelPauseTimer() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.pauseTimer != nil {
		ctx.pauseTimer.Stop()
		ctx.pauseTimer = nil
	}
}

// NotificationText builds the desktop notification title and body.
func NotificationText(reminder model.Reminder) (string, string) {
	title := fmt.Sprintf("%s - %s", reminder.Message, reminder.Pairing.Stretch.Name)
	message := fmt.Sprintf("+ %s: %s", reminder.Pairing.Secondary.Category.Label(), reminder.Pairing.Secondary.Name)
	return title, message
}
