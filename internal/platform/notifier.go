package platform

import (
	"errors"

	"fyne.io/fyne/v2"
)

// ErrNotificationsUnavailable indicates the desktop cannot show notifications.
var ErrNotificationsUnavailable = errors.New("desktop notifications unavailable")

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// NoopNotifier is used when no notification backend is available.
type NoopNotifier struct{}

// Notify does nothing.
func (NoopNotifier) Notify(string, string) error { return nil }

type fyneNotifier struct {
	app fyne.App
}

// NewNotifier returns a notifier backed by the fyne app, or a no-op
// notifier when app is nil.
func NewNotifier(app fyne.App) Notifier {
	if app == nil {
		return NoopNotifier{}
	}
	return &fyneNotifier{app: app}
}

func (notifier *fyneNotifier) Notify(title, message string) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrNotificationsUnavailable
		}
	}()
	notifier.app.SendNotification(fyne.NewNotification(title, message))
	return nil
}
