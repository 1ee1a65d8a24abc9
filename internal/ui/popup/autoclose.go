package popup

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// autoCloser hides the popup once its timeout elapses. Every arm or disarm
// starts a new generation so a stale timer never hides a newer popup.
type autoCloser struct {
	clock clockwork.Clock
	post  func(func())
	hide  func()

	mu         sync.Mutex
	generation uint64
	timer      clockwork.Timer
}

func newAutoCloser(clock clockwork.Clock, post func(func()), hide func()) *autoCloser {
	return &autoCloser{clock: clock, post: post, hide: hide}
}

func (closer *autoCloser) arm(timeout time.Duration, persistent bool) {
	closer.mu.Lock()
	defer closer.mu.Unlock()

	generation := closer.nextGenerationLocked()
	if persistent || timeout <= 0 {
		return
	}
	closer.timer = closer.clock.AfterFunc(timeout, func() {
		closer.post(func() {
			if closer.current() == generation {
				closer.hide()
			}
		})
	})
}

func (closer *autoCloser) disarm() {
	closer.mu.Lock()
	defer closer.mu.Unlock()
	closer.nextGenerationLocked()
}

func (closer *autoCloser) current() uint64 {
	closer.mu.Lock()
	defer closer.mu.Unlock()
	return closer.generation
}

func (closer *autoCloser) nextGenerationLocked() uint64 {
	if closer.timer != nil {
		closer.timer.Stop()
		closer.timer = nil
	}
	closer.generation++
	return closer.generation
}
