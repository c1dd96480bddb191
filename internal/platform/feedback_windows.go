//go:build windows

package platform

import "syscall"

const (
	beepDefault  = 0xFFFFFFFF
	beepAsterisk = 0x00000040
)

type feedbackProvider struct{}

func newFeedbackProvider() FeedbackProvider {
	return &feedbackProvider{}
}

func (provider *feedbackProvider) Tick() {
	messageBeep(beepDefault)
}

func (provider *feedbackProvider) PhaseComplete() {
	messageBeep(beepAsterisk)
}

func messageBeep(kind uintptr) {
	user32 := syscall.NewLazyDLL("user32.dll")
	beep := user32.NewProc("MessageBeep")
	_, _, _ = beep.Call(kind)
}
