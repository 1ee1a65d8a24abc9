package preferences

import (
	"stretchtimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var themeOptions = []string{string(model.ThemeLight), string(model.ThemeDark)}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	onSave   func(model.Settings) error
	settings model.Settings

	interval      *widget.Entry
	random        *widget.Check
	intervalMax   *widget.Entry
	quiet         *widget.Check
	quietStart    *widget.Entry
	quietEnd      *widget.Entry
	theme         *widget.RadioGroup
	sound         *widget.Check
	notifications *widget.Check
	message       *widget.Entry
	popupTimeout  *widget.Entry
	persistent    *widget.Check
}

// New creates a preferences window. onSave applies the edited settings and
// reports whether they could be persisted.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings) error) *Window {
	prefs := &Window{
		window:        app.NewWindow("Stretch Timer Settings"),
		onSave:        onSave,
		interval:      widget.NewEntry(),
		intervalMax:   widget.NewEntry(),
		quietStart:    widget.NewEntry(),
		quietEnd:      widget.NewEntry(),
		message:       widget.NewEntry(),
		popupTimeout:  widget.NewEntry(),
		theme:         widget.NewRadioGroup(themeOptions, nil),
		sound:         widget.NewCheck("Play sound on reminder", nil),
		notifications: widget.NewCheck("Show desktop notification", nil),
	}
	prefs.random = widget.NewCheck("Random interval up to", func(checked bool) {
		setEnabled(prefs.intervalMax, checked)
	})
	prefs.quiet = widget.NewCheck("Quiet hours", func(checked bool) {
		setEnabled(prefs.quietStart, checked)
		setEnabled(prefs.quietEnd, checked)
	})
	prefs.persistent = widget.NewCheck("Persistent popup (no auto-close)", func(checked bool) {
		setEnabled(prefs.popupTimeout, !checked)
	})
	prefs.theme.Horizontal = true
	prefs.quietStart.SetPlaceHolder("HH:MM")
	prefs.quietEnd.SetPlaceHolder("HH:MM")

	form := widget.NewForm(
		widget.NewFormItem("Interval (minutes)", prefs.interval),
		widget.NewFormItem("", container.NewBorder(nil, nil, prefs.random, nil, prefs.intervalMax)),
		widget.NewFormItem("", container.NewBorder(nil, nil, prefs.quiet, nil,
			container.NewGridWithColumns(2, prefs.quietStart, prefs.quietEnd))),
		widget.NewFormItem("Message", prefs.message),
		widget.NewFormItem("Popup timeout (seconds)", prefs.popupTimeout),
		widget.NewFormItem("", prefs.persistent),
		widget.NewFormItem("", prefs.sound),
		widget.NewFormItem("", prefs.notifications),
		widget.NewFormItem("Theme", prefs.theme),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", prefs.window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	prefs.window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	prefs.window.SetCloseIntercept(prefs.window.Hide)
	prefs.window.Resize(fyne.NewSize(440, 420))
	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.setForm(FormFromSettings(settings))
}

func (prefs *Window) setForm(form Form) {
	prefs.interval.SetText(form.IntervalMinutes)
	prefs.intervalMax.SetText(form.IntervalMaxMinutes)
	prefs.random.SetChecked(form.RandomInterval)
	setEnabled(prefs.intervalMax, form.RandomInterval)

	prefs.quietStart.SetText(form.QuietStart)
	prefs.quietEnd.SetText(form.QuietEnd)
	prefs.quiet.SetChecked(form.QuietEnabled)
	setEnabled(prefs.quietStart, form.QuietEnabled)
	setEnabled(prefs.quietEnd, form.QuietEnabled)

	prefs.theme.SetSelected(form.Theme)
	prefs.sound.SetChecked(form.SoundEnabled)
	prefs.notifications.SetChecked(form.NotificationsEnabled)
	prefs.message.SetText(form.Message)

	prefs.popupTimeout.SetText(form.PopupTimeoutSeconds)
	prefs.persistent.SetChecked(form.PopupPersistent)
	setEnabled(prefs.popupTimeout, !form.PopupPersistent)
}

func (prefs *Window) form() Form {
	return Form{
		IntervalMinutes:      prefs.interval.Text,
		RandomInterval:       prefs.random.Checked,
		IntervalMaxMinutes:   prefs.intervalMax.Text,
		QuietEnabled:         prefs.quiet.Checked,
		QuietStart:           prefs.quietStart.Text,
		QuietEnd:             prefs.quietEnd.Text,
		Theme:                prefs.theme.Selected,
		SoundEnabled:         prefs.sound.Checked,
		NotificationsEnabled: prefs.notifications.Checked,
		Message:              prefs.message.Text,
		PopupTimeoutSeconds:  prefs.popupTimeout.Text,
		PopupPersistent:      prefs.persistent.Checked,
	}
}

func (prefs *Window) handleSave() {
	settings, err := prefs.form().Settings(prefs.settings)
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	if prefs.onSave != nil {
		if err := prefs.onSave(settings); err != nil {
			dialog.ShowError(err, prefs.window)
			return
		}
	}
	prefs.window.Hide()
}

func setEnabled(entry *widget.Entry, enabled bool) {
	if enabled {
		entry.Enable()
		return
	}
	entry.Disable()
}
