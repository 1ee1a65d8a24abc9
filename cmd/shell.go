package main

import (
	"log/slog"
	"time"

	stretchapp "stretchtimer/internal/app"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/timekeeper"
	"stretchtimer/internal/logfields"
	"stretchtimer/internal/ui/dispatch"
	"stretchtimer/internal/ui/mainwindow"
	"stretchtimer/internal/ui/popup"
	"stretchtimer/internal/ui/preferences"
	apptheme "stretchtimer/internal/ui/theme"
	"stretchtimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"
)

// shell fans application state out to every window and the tray.
type shell struct {
	app    fyne.App
	main   *mainwindow.Window
	popup  *popup.Window
	prefs  *preferences.Window
	tray   *tray.Manager
	logger *slog.Logger
}

var _ stretchapp.Presenter = (*shell)(nil)

func newShell(fyneApp fyne.App, appCtx *stretchapp.Context, clock clockwork.Clock, logger *slog.Logger) *shell {
	ui := &shell{
		app:    fyneApp,
		popup:  popup.New(fyneApp, clock, dispatch.Fyne{}.Post),
		prefs:  preferences.New(fyneApp, appCtx.Settings(), appCtx.UpdateSettings),
		logger: logger,
	}
	ui.main = mainwindow.New(fyneApp, appCtx, ui.prefs.Show)

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Info("System tray unsupported, closing the window quits")
		ui.main.Window().SetCloseIntercept(fyneApp.Quit)
		return ui
	}

	ui.main.Window().SetCloseIntercept(ui.main.Window().Hide)
	desktopApp.SetSystemTrayWindow(ui.main.Window())
	desktopApp.SetSystemTrayIcon(fyneApp.Icon())
	ui.tray = tray.New(desktopApp, tray.Callbacks{
		OnShow:        ui.main.Show,
		OnTogglePause: func() { appCtx.TogglePause() },
		OnPauseFor:    appCtx.PauseFor,
		OnStretchNow: func() {
			if err := appCtx.TriggerNow(); err != nil {
				logger.Error("Failed to show reminder", logfields.Error(err))
			}
		},
		OnQuit: fyneApp.Quit,
	})
	return ui
}

func (ui *shell) show() {
	ui.main.Show()
}

func (ui *shell) ShowReminder(reminder model.Reminder, settings model.Settings) {
	ui.main.ShowReminder(reminder)
	ui.popup.Show(reminder, settings)
}

func (ui *shell) ShowStatus(status stretchapp.Status) {
	ui.main.ShowStatus(status)
	if ui.tray == nil {
		return
	}
	paused := status.State == timekeeper.StatePaused
	ui.tray.SetPaused(paused)
	ui.tray.SetStatus(tray.StatusText(paused, status.State != timekeeper.StateStopped, trayRemaining(status.Remaining)))
}

func (ui *shell) ApplySettings(settings model.Settings) {
	ui.app.Settings().SetTheme(apptheme.New(settings.Theme))
	ui.main.ApplySettings(settings)
	ui.prefs.UpdateSettings(settings)
}

// trayRemaining rounds up to whole minutes so the tray menu is rebuilt once
// a minute rather than every tick.
func trayRemaining(remaining time.Duration) time.Duration {
	if remaining <= 0 {
		return 0
	}
	return ((remaining + time.Minute - 1) / time.Minute) * time.Minute
}
