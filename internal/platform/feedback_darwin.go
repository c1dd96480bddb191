//go:build darwin

package platform

import "os/exec"

const (
	tickSoundFile     = "/System/Library/Sounds/Tink.aiff"
	completeSoundFile = "/System/Library/Sounds/Glass.aiff"
)

type feedbackProvider struct {
	playerPath string
}

func newFeedbackProvider() FeedbackProvider {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return silentFeedback{}
	}
	return &feedbackProvider{playerPath: path}
}

func (provider *feedbackProvider) Tick() {
	provider.play(tickSoundFile)
}

func (provider *feedbackProvider) PhaseComplete() {
	provider.play(completeSoundFile)
}

func (provider *feedbackProvider) play(soundFile string) {
	go func() {
		_ = exec.Command(provider.playerPath, soundFile).Run()
	}()
}
