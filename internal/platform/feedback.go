package platform

// FeedbackProvider emits the cues that stand in for watch haptics on the
// desktop: a short cue per elapsed second and a stronger cue at phase
// boundaries.
type FeedbackProvider interface {
	Tick()
	PhaseComplete()
}

// NewFeedbackProvider returns a platform-specific provider. When no
// usable backend exists the provider is silent; cues are best-effort and
// never error.
func NewFeedbackProvider() FeedbackProvider {
	return newFeedbackProvider()
}

type silentFeedback struct{}

func (silentFeedback) Tick()          {}
func (silentFeedback) PhaseComplete() {}
