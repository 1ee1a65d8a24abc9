package platform

import (
	"fmt"
	"syscall"
)

const mbIconExclamation = 0x00000030

type beepSoundPlayer struct{}

func newSoundPlayer() SoundPlayer {
	return beepSoundPlayer{}
}

func (beepSoundPlayer) PlayAlert() error {
	user32 := syscall.NewLazyDLL("user32.dll")
	messageBeep := user32.NewProc("MessageBeep")
	if err := messageBeep.Find(); err != nil {
		return fmt.Errorf("message beep: %w", ErrSoundUnsupported)
	}
	result, _, err := messageBeep.Call(uintptr(mbIconExclamation))
	if result == 0 {
		return fmt.Errorf("message beep: %w", err)
	}
	return nil
}
