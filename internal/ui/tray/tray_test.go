package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseLabel(t *testing.T) {
	assert.Equal(t, "15 minutes", PauseLabel(15*time.Minute))
	assert.Equal(t, "1 hour", PauseLabel(time.Hour))
	assert.Equal(t, "2 hours", PauseLabel(2*time.Hour))
	assert.Equal(t, "90 minutes", PauseLabel(90*time.Minute))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "stopped", StatusText(false, false, time.Minute))
	assert.Equal(t, "paused", StatusText(true, true, time.Minute))
	assert.Equal(t, "next stretch in 04:05", StatusText(false, true, 4*time.Minute+5*time.Second))
}

func TestManagerWithoutDesktopTracksLabels(t *testing.T) {
	var paused []time.Duration
	manager := New(nil, Callbacks{OnPauseFor: func(duration time.Duration) { paused = append(paused, duration) }})

	manager.SetStatus("next stretch in 10:00")
	manager.SetPaused(true)
	assert.Equal(t, "Status: next stretch in 10:00", manager.statusItem.Label)
	assert.Equal(t, "Resume", manager.pauseItem.Label)

	require.Len(t, manager.pauseFor.ChildMenu.Items, len(PauseOptions))
	manager.pauseFor.ChildMenu.Items[1].Action()
	assert.Equal(t, []time.Duration{30 * time.Minute}, paused)
}
