// Package popup shows the reminder window.
package popup

import (
	"fmt"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/ui/format"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
)

var popupSize = fyne.NewSize(450, 600)

// Window displays one reminder at a time and reuses the same native window.
type Window struct {
	window fyne.Window
	closer *autoCloser

	message          *widget.Label
	stretchHeading   *widget.Label
	stretchSteps     *widget.Label
	secondaryHeading *widget.Label
	secondarySteps   *widget.Label
	sequence         *widget.Label
}

// New creates the popup window. post must run functions on the UI goroutine.
func New(app fyne.App, clock clockwork.Clock, post func(func())) *Window {
	window := app.NewWindow("Time to Stretch!")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetFixedSize(true)

	popup := &Window{
		window:           window,
		message:          widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		stretchHeading:   widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		stretchSteps:     wrappingLabel(),
		secondaryHeading: widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		secondarySteps:   wrappingLabel(),
		sequence:         widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	popup.closer = newAutoCloser(clock, post, popup.hideWindow)

	done := widget.NewButton("Done!", popup.Hide)
	done.Importance = widget.SuccessImportance

	body := container.NewVBox(
		popup.stretchHeading,
		popup.stretchSteps,
		widget.NewSeparator(),
		popup.secondaryHeading,
		popup.secondarySteps,
	)
	footer := container.NewVBox(popup.sequence, container.NewCenter(done))
	window.SetContent(container.NewBorder(popup.message, footer, nil, nil, container.NewVScroll(body)))
	window.SetCloseIntercept(popup.Hide)
	window.Resize(popupSize)

	return popup
}

// Show fills the window with the reminder and brings it to the front. Unless
// the popup is persistent it closes itself after the configured timeout.
func (popup *Window) Show(reminder model.Reminder, settings model.Settings) {
	popup.window.SetTitle(reminder.Message)
	popup.message.SetText(reminder.Message)
	popup.stretchHeading.SetText(format.StretchHeading(reminder.Pairing.Stretch))
	popup.stretchSteps.SetText(format.Steps(reminder.Pairing.Stretch.Steps))
	popup.secondaryHeading.SetText(format.SecondaryHeading(reminder.Pairing.Secondary))
	popup.secondarySteps.SetText(format.Steps(reminder.Pairing.Secondary.Steps))
	popup.sequence.SetText(fmt.Sprintf("Stretch #%d", reminder.Sequence))

	popup.closer.arm(settings.PopupTimeout, settings.PopupPersistent)
	popup.window.Show()
	popup.window.CenterOnScreen()
	popup.window.RequestFocus()
}

// Hide closes the popup and cancels any pending timeout.
func (popup *Window) Hide() {
	popup.closer.disarm()
	popup.hideWindow()
}

func (popup *Window) hideWindow() {
	popup.window.Hide()
}

func wrappingLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	return label
}
