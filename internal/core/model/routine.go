package model

import "image/color"

// PhaseType identifies the kind of a timed phase.
type PhaseType string

const (
	PhaseHold PhaseType = "hold"
	PhaseRest PhaseType = "rest"
)

// Label returns the display name for the phase type.
func (phaseType PhaseType) Label() string {
	if phaseType == PhaseHold {
		return "Hold"
	}
	return "Rest"
}

// Tint returns the display color for the phase type. The session engine
// never looks at this; it exists for the countdown ring.
func (phaseType PhaseType) Tint() color.NRGBA {
	if phaseType == PhaseHold {
		return color.NRGBA{R: 225, G: 110, B: 80, A: 255}
	}
	return color.NRGBA{R: 90, G: 170, B: 220, A: 255}
}

// PhaseTemplate is a single timed segment inside a block.
type PhaseTemplate struct {
	Type    PhaseType
	Seconds int
}

// Block is a repeated group of phase templates.
type Block struct {
	Repeats int
	Phases  []PhaseTemplate
}

// Routine is the editable and persisted configuration unit: an ordered
// list of blocks.
type Routine struct {
	Blocks []Block
}

// ClampSeconds forces a phase duration to at least one second.
func ClampSeconds(seconds int) int {
	if seconds < 1 {
		return 1
	}
	return seconds
}

// ClampRepeats forces an edited repeat count to at least one. Persisted
// zero-repeat blocks stay legal; they simply expand to nothing.
func ClampRepeats(repeats int) int {
	if repeats < 1 {
		return 1
	}
	return repeats
}

// Normalize clamps every phase duration to at least one second and every
// repeat count to at least zero, in place.
func (routine *Routine) Normalize() {
	for blockIndex := range routine.Blocks {
		block := &routine.Blocks[blockIndex]
		if block.Repeats < 0 {
			block.Repeats = 0
		}
		for phaseIndex := range block.Phases {
			block.Phases[phaseIndex].Seconds = ClampSeconds(block.Phases[phaseIndex].Seconds)
		}
	}
}

// DefaultRoutine returns the built-in routine used when nothing can be
// loaded from disk.
func DefaultRoutine() Routine {
	return Routine{
		Blocks: []Block{
			{
				Repeats: 10,
				Phases: []PhaseTemplate{
					{Type: PhaseHold, Seconds: 5},
					{Type: PhaseRest, Seconds: 5},
				},
			},
			{
				Repeats: 5,
				Phases: []PhaseTemplate{
					{Type: PhaseHold, Seconds: 10},
					{Type: PhaseRest, Seconds: 10},
				},
			},
		},
	}
}
