package platform

import "errors"

// ErrSoundUnsupported indicates no alert sound backend was found.
var ErrSoundUnsupported = errors.New("alert sound unsupported")

// SoundPlayer plays a short alert without blocking.
type SoundPlayer interface {
	PlayAlert() error
}

// NewSoundPlayer returns a platform-specific sound player.
func NewSoundPlayer() SoundPlayer {
	return newSoundPlayer()
}
