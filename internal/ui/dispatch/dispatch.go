package dispatch

import "fyne.io/fyne/v2"

// Fyne marshals work onto the fyne main loop.
type Fyne struct{}

// Post schedules fn on the UI goroutine.
func (Fyne) Post(fn func()) {
	fyne.Do(fn)
}
