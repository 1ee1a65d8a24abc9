package mainwindow

import (
	"errors"
	"testing"
	"time"

	"stretchtimer/internal/app"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/timekeeper"
	apptheme "stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

type fakeController struct {
	settings  model.Settings
	running   bool
	paused    bool
	triggered int
	themeErr  error
}

func (controller *fakeController) Settings() model.Settings { return controller.settings }
func (controller *fakeController) Start()                   { controller.running = true }
func (controller *fakeController) Stop()                    { controller.running = false }
func (controller *fakeController) IsRunning() bool          { return controller.running }
func (controller *fakeController) Stats() app.Stats         { return app.Stats{} }

func (controller *fakeController) TogglePause() bool {
	controller.paused = !controller.paused
	return controller.paused
}

func (controller *fakeController) TriggerNow() error {
	controller.triggered++
	return nil
}

func (controller *fakeController) ToggleTheme() error {
	if controller.themeErr != nil {
		return controller.themeErr
	}
	controller.settings.Theme = controller.settings.Theme.Toggle()
	return nil
}

func newTestWindow(t *testing.T) (*Window, *fakeController) {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	fyneApp.Settings().SetTheme(apptheme.New(model.ThemeLight))
	controller := &fakeController{settings: model.DefaultSettings()}
	return New(fyneApp, controller, nil), controller
}

func TestStoppedWindowShowsInterval(t *testing.T) {
	view, _ := newTestWindow(t)

	assert.Equal(t, "45:00", view.countdown.Text)
	assert.Equal(t, "Start", view.startStop.Text)
	assert.True(t, view.pause.Disabled())
	assert.Equal(t, "Reminders every 45 min", view.interval.Text)
	assert.Equal(t, "Dark", view.themeBtn.Text)
}

func TestShowStatusUpdatesControls(t *testing.T) {
	view, _ := newTestWindow(t)

	view.ShowStatus(app.Status{
		State:     timekeeper.StatePaused,
		Remaining: 12*time.Minute + 3*time.Second,
		Stats:     app.Stats{Count: 4, Session: 75 * time.Minute},
	})

	assert.Equal(t, "12:03", view.countdown.Text)
	assert.Equal(t, "Paused", view.status.Text)
	assert.Equal(t, "Stop", view.startStop.Text)
	assert.Equal(t, "Resume", view.pause.Text)
	assert.False(t, view.pause.Disabled())
	assert.Equal(t, "4", view.count.Text)
	assert.Equal(t, "1:15", view.duration.Text)
}

func TestButtonsDriveController(t *testing.T) {
	view, controller := newTestWindow(t)

	test.Tap(view.startStop)
	assert.True(t, controller.running)
	test.Tap(view.startStop)
	assert.False(t, controller.running)

	test.Tap(view.themeBtn)
	assert.Equal(t, model.ThemeDark, controller.settings.Theme)
}

func TestThemeErrorDoesNotPanic(t *testing.T) {
	view, controller := newTestWindow(t)
	controller.themeErr = errors.New("disk full")

	assert.NotPanics(t, func() { test.Tap(view.themeBtn) })
}

func TestShowReminderFillsCard(t *testing.T) {
	view, _ := newTestWindow(t)

	view.ShowReminder(model.Reminder{
		Sequence: 2,
		Pairing: model.Pairing{
			Stretch:   model.Exercise{Name: "Neck Rolls", Duration: "30 seconds", Steps: []string{"Drop chin", "Roll slowly"}},
			Secondary: model.Exercise{Name: "Box Breathing", Category: model.CategoryBreathing, Steps: []string{"Inhale 4"}},
		},
	})

	assert.Equal(t, "Neck Rolls (30 seconds)", view.stretchName.Text)
	assert.Equal(t, "1. Drop chin\n2. Roll slowly", view.stretchSteps.Text)
	assert.Equal(t, "Breathing: Box Breathing", view.secondaryHeading.Text)
	assert.Equal(t, "2", view.count.Text)
}
