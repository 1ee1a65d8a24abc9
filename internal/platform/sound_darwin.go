package platform

import (
	"fmt"
	"os/exec"
)

const darwinAlertSound = "/System/Library/Sounds/Glass.aiff"

type afplaySoundPlayer struct{}

func newSoundPlayer() SoundPlayer {
	return afplaySoundPlayer{}
}

func (afplaySoundPlayer) PlayAlert() error {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return fmt.Errorf("afplay: %w", ErrSoundUnsupported)
	}
	cmd := exec.Command(path, darwinAlertSound)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("afplay: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
