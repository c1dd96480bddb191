package session

import (
	"fmt"

	"kegeltimer/internal/core/model"
)

// Snapshot is a consistent read of the engine's derived view state.
type Snapshot struct {
	State      State
	Started    bool
	PhaseIndex int
	PhaseCount int
	Phase      model.ExpandedPhase // zero value when the routine is empty

	Remaining        int
	DisplaySeconds   int
	Progress         float64
	TotalSets        int
	CompletedSets    int
	SessionSeconds   int
	ElapsedSeconds   int
	RemainingSeconds int
}

// Snapshot returns the current derived state. All values are recomputed
// on demand from the engine's position; nothing here is cached.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	snapshot := Snapshot{
		State:          engine.state,
		Started:        engine.started,
		PhaseIndex:     engine.index,
		PhaseCount:     len(engine.phases),
		Remaining:      engine.remaining,
		Progress:       engine.phaseProgressLocked(),
		SessionSeconds: engine.totalSeconds,
	}

	if len(engine.phases) > 0 {
		snapshot.TotalSets = engine.phases[len(engine.phases)-1].TotalSets
		if engine.index < len(engine.phases) {
			snapshot.Phase = engine.phases[engine.index]
		}
	}

	snapshot.CompletedSets = engine.completedSetsLocked()
	snapshot.RemainingSeconds = engine.sessionRemainingLocked()
	snapshot.ElapsedSeconds = engine.totalSeconds - snapshot.RemainingSeconds
	if snapshot.ElapsedSeconds < 0 {
		snapshot.ElapsedSeconds = 0
	}

	switch {
	case engine.state == StateComplete:
		snapshot.DisplaySeconds = 0
	case engine.started:
		snapshot.DisplaySeconds = engine.remaining
	case len(engine.phases) > 0:
		snapshot.DisplaySeconds = engine.phases[0].Seconds
	}

	return snapshot
}

// completedSetsLocked counts repetitions whose phases have all finished.
// A set only counts once playback has moved past its final phase.
func (engine *Engine) completedSetsLocked() int {
	if len(engine.phases) == 0 {
		return 0
	}
	if engine.state == StateComplete {
		return engine.phases[len(engine.phases)-1].TotalSets
	}
	if !engine.started || engine.index >= len(engine.phases) {
		return 0
	}
	completed := engine.phases[engine.index].SetIndex - 1
	if completed < 0 {
		return 0
	}
	return completed
}

// sessionRemainingLocked sums the seconds left in the current phase plus
// every phase not yet reached.
func (engine *Engine) sessionRemainingLocked() int {
	if engine.state == StateComplete {
		return 0
	}
	remaining := engine.remaining
	for phaseIndex := engine.index + 1; phaseIndex < len(engine.phases); phaseIndex++ {
		remaining += engine.phases[phaseIndex].Seconds
	}
	return remaining
}

// FormatSeconds renders a second count for display: "0s", "45s", "1:00",
// "2:05".
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
