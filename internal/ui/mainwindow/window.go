// Package mainwindow implements the countdown window.
package mainwindow

import (
	"strconv"

	"stretchtimer/internal/app"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/timekeeper"
	"stretchtimer/internal/ui/format"
	apptheme "stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const placeholderSteps = "Click 'Start' to begin.\n\nStretch reminders will appear here\nwith step-by-step instructions."

// Controller is the application surface driven by the window buttons.
type Controller interface {
	Settings() model.Settings
	Start()
	Stop()
	IsRunning() bool
	TogglePause() bool
	TriggerNow() error
	ToggleTheme() error
	Stats() app.Stats
}

// Window is the view countdown window.
type Window struct {
	window     fyne.Window
	controller Controller
	onSettings func()

	countdown *canvas.Text
	status    *widget.Label
	interval  *widget.Label
	startStop *widget.Button
	pause     *widget.Button
	themeBtn  *widget.Button

	count    *widget.Label
	duration *widget.Label

	stretchName      *widget.Label
	stretchSteps     *widget.Label
	secondaryHeading *widget.Label
	secondarySteps   *widget.Label

	state timekeeper.State
}

// New builds the window. onSettings opens the preferences window.
func New(fyneApp fyne.App, controller Controller, onSettings func()) *Window {
	view := &Window{
		window:     fyneApp.NewWindow("Stretch Reminder Timer"),
		controller: controller,
		onSettings: onSettings,
		state:      timekeeper.StateStopped,
	}

	view.countdown = canvas.NewText("00:00", theme.Color(theme.ColorNamePrimary))
	view.countdown.Alignment = fyne.TextAlignCenter
	view.countdown.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.countdown.TextSize = 36

	view.status = widget.NewLabelWithStyle("Ready to start", fyne.TextAlignCenter, fyne.TextStyle{})
	view.interval = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	view.startStop = widget.NewButton("Start", view.handleStartStop)
	view.startStop.Importance = widget.HighImportance
	view.pause = widget.NewButton("Pause", view.handlePause)
	view.pause.Disable()
	now := widget.NewButton("Now", view.handleNow)
	view.themeBtn = widget.NewButton("Dark", view.handleTheme)
	settingsBtn := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		if view.onSettings != nil {
			view.onSettings()
		}
	})

	view.count = widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.duration = widget.NewLabelWithStyle("0:00", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	view.stretchName = widget.NewLabelWithStyle("Ready!", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.stretchSteps = widget.NewLabel(placeholderSteps)
	view.stretchSteps.Wrapping = fyne.TextWrapWord
	view.secondaryHeading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.secondarySteps = widget.NewLabel("")
	view.secondarySteps.Wrapping = fyne.TextWrapWord

	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle("Stretch Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.themeBtn)
	timerCard := widget.NewCard("", "", container.NewVBox(
		view.countdown,
		view.status,
		container.NewCenter(container.NewHBox(view.startStop, view.pause, now)),
		container.NewBorder(nil, nil, nil, settingsBtn, view.interval),
	))
	stats := widget.NewCard("Stats", "", container.NewGridWithColumns(2,
		container.NewVBox(view.count, widget.NewLabelWithStyle("Stretches", fyne.TextAlignCenter, fyne.TextStyle{})),
		container.NewVBox(view.duration, widget.NewLabelWithStyle("Duration", fyne.TextAlignCenter, fyne.TextStyle{})),
	))
	current := widget.NewCard("Current Stretch", "", container.NewVScroll(container.NewVBox(
		view.stretchName,
		view.stretchSteps,
		view.secondaryHeading,
		view.secondarySteps,
	)))

	view.window.SetContent(container.NewBorder(
		container.NewVBox(header, timerCard, stats),
		nil, nil, nil,
		current,
	))
	view.window.Resize(fyne.NewSize(480, 760))
	view.ApplySettings(controller.Settings())
	return view
}

// Window exposes the native window for close handling and dialogs.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show brings the window to the front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// ShowStatus refreshes the countdown, controls and stats.
func (view *Window) ShowStatus(status app.Status) {
	view.state = status.State
	view.status.SetText(format.Status(status.State))
	if status.State == timekeeper.StateStopped {
		view.showIdleCountdown(view.controller.Settings())
	} else {
		view.setCountdown(format.Countdown(status.Remaining))
	}

	switch status.State {
	case timekeeper.StateStopped:
		view.startStop.SetText("Start")
		view.pause.SetText("Pause")
		view.pause.Disable()
	case timekeeper.StatePaused:
		view.startStop.SetText("Stop")
		view.pause.SetText("Resume")
		view.pause.Enable()
	default:
		view.startStop.SetText("Stop")
		view.pause.SetText("Pause")
		view.pause.Enable()
	}

	view.count.SetText(strconv.Itoa(status.Stats.Count))
	view.duration.SetText(format.Session(status.Stats.Session))
}

// ShowReminder fills the current stretch card.
func (view *Window) ShowReminder(reminder model.Reminder) {
	view.stretchName.SetText(format.StretchHeading(reminder.Pairing.Stretch))
	view.stretchSteps.SetText(format.Steps(reminder.Pairing.Stretch.Steps))
	view.secondaryHeading.SetText(format.SecondaryHeading(reminder.Pairing.Secondary))
	view.secondarySteps.SetText(format.Steps(reminder.Pairing.Secondary.Steps))
	view.count.SetText(strconv.Itoa(reminder.Sequence))
}

// ApplySettings updates labels that depend on settings.
func (view *Window) ApplySettings(settings model.Settings) {
	view.themeBtn.SetText(apptheme.ToggleLabel(settings.Theme))
	view.interval.SetText("Reminders " + format.Interval(settings.Interval))
	view.countdown.Color = theme.Color(theme.ColorNamePrimary)
	if view.state == timekeeper.StateStopped {
		view.showIdleCountdown(settings)
	} else {
		view.countdown.Refresh()
	}
}

func (view *Window) showIdleCountdown(settings model.Settings) {
	view.setCountdown(format.Countdown(settings.Interval.Min))
}

func (view *Window) setCountdown(text string) {
	view.countdown.Text = text
	view.countdown.Refresh()
}

func (view *Window) handleStartStop() {
	if view.controller.IsRunning() {
		view.controller.Stop()
		return
	}
	view.controller.Start()
}

func (view *Window) handlePause() {
	view.controller.TogglePause()
}

func (view *Window) handleNow() {
	if err := view.controller.TriggerNow(); err != nil {
		dialog.ShowError(err, view.window)
	}
}

func (view *Window) handleTheme() {
	if err := view.controller.ToggleTheme(); err != nil {
		dialog.ShowError(err, view.window)
	}
}
