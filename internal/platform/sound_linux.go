package platform

import (
	"fmt"
	"os/exec"
)

type soundCommand struct {
	name string
	args []string
}

var linuxSoundCommands = []soundCommand{
	{name: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
	{name: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
	{name: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
	{name: "canberra-gtk-play", args: []string{"-i", "complete"}},
	{name: "canberra-gtk-play", args: []string{"-i", "bell"}},
}

type commandSoundPlayer struct {
	lookPath func(string) (string, error)
	commands []soundCommand
}

func newSoundPlayer() SoundPlayer {
	return &commandSoundPlayer{lookPath: exec.LookPath, commands: linuxSoundCommands}
}

func (player *commandSoundPlayer) PlayAlert() error {
	for _, candidate := range player.commands {
		path, err := player.lookPath(candidate.name)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, candidate.args...)
		if err := cmd.Start(); err != nil {
			continue
		}
		go func() { _ = cmd.Wait() }()
		return nil
	}
	return fmt.Errorf("no sound command found: %w", ErrSoundUnsupported)
}
