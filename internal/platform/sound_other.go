//go:build !linux && !darwin && !windows

package platform

type unsupportedSoundPlayer struct{}

func newSoundPlayer() SoundPlayer {
	return unsupportedSoundPlayer{}
}

func (unsupportedSoundPlayer) PlayAlert() error {
	return ErrSoundUnsupported
}
