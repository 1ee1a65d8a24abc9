package timekeeper

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/logfields"

	"github.com/jonboulle/clockwork"
)

// ErrCallbackPanic wraps a panic recovered from the fire callback.
var ErrCallbackPanic = errors.New("reminder callback panicked")

// FireFunc is invoked on the ticking goroutine once per non-suppressed expiry.
type FireFunc func(at time.Time) error

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
	Source       rand.Source
	Logger       *slog.Logger
}

// TimeKeeper counts down the reminder interval in whole-second steps.
//
// The countdown and pause flag are atomics so the UI can read and flip them
// without waiting on the ticking goroutine.
type TimeKeeper struct {
	mu      sync.Mutex
	config  model.TimeKeeperConfig
	options Config
	rng     *rand.Rand
	onFire  FireFunc
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	closed  bool

	remaining atomic.Int64
	cycle     atomic.Int64
	paused    atomic.Bool
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.TimeKeeperConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	if options.Source == nil {
		options.Source = rand.NewSource(time.Now().UnixNano())
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	keeper := &TimeKeeper{
		config:  config,
		options: options,
		rng:     rand.New(options.Source),
	}
	keeper.resetCountdownLocked()
	return keeper
}

// SetOnFire registers the reminder callback.
func (keeper *TimeKeeper) SetOnFire(handler FireFunc) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.onFire = handler
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start begins a new session with a fresh countdown.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.doneCh = make(chan struct{})
	keeper.paused.Store(false)
	keeper.resetCountdownLocked()
	stopCh, doneCh := keeper.stopCh, keeper.doneCh
	keeper.mu.Unlock()

	keeper.options.Logger.Info("Reminder timer started", logfields.State(string(StateRunning)), logfields.Remaining(keeper.Remaining()))
	keeper.emit(keeper.snapshot(EventStateChange, keeper.options.Clock.Now()))

	go keeper.run(stopCh, doneCh)
}

// Stop terminates the ticking loop and waits for it to exit.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = false
	close(keeper.stopCh)
	doneCh := keeper.doneCh
	keeper.mu.Unlock()

	<-doneCh
	keeper.options.Logger.Info("Reminder timer stopped", logfields.State(string(StateStopped)))
	keeper.emit(keeper.snapshot(EventStateChange, keeper.options.Clock.Now()))
}

// Close stops the loop and closes observer channels.
func (keeper *TimeKeeper) Close() {
	keeper.Stop()

	keeper.mu.Lock()
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	if keeper.paused.Swap(true) {
		return
	}
	keeper.options.Logger.Info("Reminder timer paused", logfields.State(string(StatePaused)), logfields.Remaining(keeper.Remaining()))
	keeper.emit(keeper.snapshot(EventStateChange, keeper.options.Clock.Now()))
}

// Resume continues the countdown from where it was frozen.
func (keeper *TimeKeeper) Resume() {
	if !keeper.paused.Swap(false) {
		return
	}
	keeper.options.Logger.Info("Reminder timer resumed", logfields.State(string(keeper.state())), logfields.Remaining(keeper.Remaining()))
	keeper.emit(keeper.snapshot(EventStateChange, keeper.options.Clock.Now()))
}

// IsPaused reports whether the countdown is frozen.
func (keeper *TimeKeeper) IsPaused() bool {
	return keeper.paused.Load()
}

// IsRunning reports whether the ticking loop is active.
func (keeper *TimeKeeper) IsRunning() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.running
}

// Remaining returns the time left in the current cycle.
func (keeper *TimeKeeper) Remaining() time.Duration {
	return time.Duration(keeper.remaining.Load()) * time.Second
}

// Reset restarts the countdown with a freshly drawn interval.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	keeper.resetCountdownLocked()
	keeper.mu.Unlock()

	keeper.emit(keeper.snapshot(EventProgress, keeper.options.Clock.Now()))
}

// UpdateConfig swaps the runtime configuration. The countdown restarts only
// when the interval changed.
func (keeper *TimeKeeper) UpdateConfig(config model.TimeKeeperConfig) {
	keeper.mu.Lock()
	intervalChanged := config.Interval != keeper.config.Interval
	keeper.config = config
	if intervalChanged {
		keeper.resetCountdownLocked()
	}
	keeper.mu.Unlock()

	if intervalChanged {
		keeper.options.Logger.Debug("Reminder interval changed", logfields.Remaining(keeper.Remaining()))
		keeper.emit(keeper.snapshot(EventProgress, keeper.options.Clock.Now()))
	}
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	if keeper.paused.Load() {
		return
	}
	if keeper.remaining.Add(-1) > 0 {
		keeper.emit(keeper.snapshot(EventProgress, tickTime))
		return
	}
	keeper.expire(tickTime)
}

func (keeper *TimeKeeper) expire(tickTime time.Time) {
	keeper.mu.Lock()
	quiet := keeper.config.QuietHours.Contains(tickTime)
	handler := keeper.onFire
	keeper.mu.Unlock()

	switch {
	case keeper.paused.Load():
		keeper.suppress(ReasonPaused, tickTime)
	case quiet:
		keeper.suppress(ReasonQuietHours, tickTime)
	default:
		keeper.fire(handler, tickTime)
	}
	keeper.Reset()
}

func (keeper *TimeKeeper) suppress(reason string, tickTime time.Time) {
	keeper.options.Logger.Debug("Reminder suppressed", logfields.Reason(reason))
	event := keeper.snapshot(EventSuppressed, tickTime)
	event.Message = reason
	keeper.emit(event)
}

func (keeper *TimeKeeper) fire(handler FireFunc, tickTime time.Time) {
	if handler != nil {
		if err := callSafely(handler, tickTime); err != nil {
			keeper.options.Logger.Error("Reminder callback failed", logfields.Error(err))
		}
	}
	keeper.emit(keeper.snapshot(EventReminder, tickTime))
}

func callSafely(handler FireFunc, at time.Time) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, recovered)
		}
	}()
	return handler(at)
}

func (keeper *TimeKeeper) resetCountdownLocked() {
	seconds := int64(keeper.config.Interval.Draw(keeper.rng) / time.Second)
	keeper.cycle.Store(seconds)
	keeper.remaining.Store(seconds)
}

func (keeper *TimeKeeper) snapshot(eventType EventType, at time.Time) Event {
	return Event{
		Type:      eventType,
		State:     keeper.state(),
		Remaining: keeper.Remaining(),
		Progress:  keeper.progress(),
		At:        at,
	}
}

func (keeper *TimeKeeper) state() State {
	if !keeper.IsRunning() {
		return StateStopped
	}
	if keeper.paused.Load() {
		return StatePaused
	}
	return StateRunning
}

func (keeper *TimeKeeper) progress() float64 {
	cycle := keeper.cycle.Load()
	if cycle <= 0 {
		return 1
	}
	progress := float64(cycle-keeper.remaining.Load()) / float64(cycle)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
