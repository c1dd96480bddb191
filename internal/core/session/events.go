package session

import "time"

// State represents the current playback mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateComplete State = "complete"
)

// EventType defines the type of playback event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
)

// Event represents a playback update for observers.
type Event struct {
	Type       EventType
	State      State
	PhaseIndex int
	Remaining  int
	Progress   float64
	At         time.Time
}
