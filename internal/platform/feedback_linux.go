//go:build linux

package platform

import (
	"os"
	"os/exec"
)

const (
	tickSoundID     = "button-pressed"
	completeSoundID = "complete"

	tickSoundFile     = "/usr/share/sounds/freedesktop/stereo/message.oga"
	completeSoundFile = "/usr/share/sounds/freedesktop/stereo/complete.oga"
)

type canberraFeedback struct {
	playerPath string
}

type paplayFeedback struct {
	playerPath string
}

func newFeedbackProvider() FeedbackProvider {
	if path, err := exec.LookPath("canberra-gtk-play"); err == nil {
		return &canberraFeedback{playerPath: path}
	}
	if path, err := exec.LookPath("paplay"); err == nil {
		if _, err := os.Stat(tickSoundFile); err == nil {
			return &paplayFeedback{playerPath: path}
		}
	}
	return silentFeedback{}
}

func (provider *canberraFeedback) Tick() {
	playAsync(provider.playerPath, "-i", tickSoundID)
}

func (provider *canberraFeedback) PhaseComplete() {
	playAsync(provider.playerPath, "-i", completeSoundID)
}

func (provider *paplayFeedback) Tick() {
	playAsync(provider.playerPath, tickSoundFile)
}

func (provider *paplayFeedback) PhaseComplete() {
	playAsync(provider.playerPath, completeSoundFile)
}

// playAsync fires a cue without holding up the engine tick. Playback
// errors are ignored; a missed cue is not worth surfacing.
func playAsync(playerPath string, args ...string) {
	go func() {
		_ = exec.Command(playerPath, args...).Run()
	}()
}
