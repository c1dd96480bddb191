package model

// ExpandedPhase is one concrete playback step produced by expanding a
// routine. It is derived, never persisted, and never mutated in place.
type ExpandedPhase struct {
	Type        PhaseType
	Seconds     int
	SetIndex    int // 1-based repetition number across all blocks
	TotalSets   int
	PhaseInSet  int // 0-based position within the block's phase list
	PhasesInSet int // length of the block's phase list
}

// Expand flattens a routine into its ordered playback sequence. Blocks
// with a non-positive repeat count contribute nothing and do not consume
// a set index. Every emitted phase carries the same TotalSets, computed
// as the sum of all positive repeat counts.
func Expand(routine Routine) []ExpandedPhase {
	totalSets := 0
	for _, block := range routine.Blocks {
		if block.Repeats > 0 {
			totalSets += block.Repeats
		}
	}

	var phases []ExpandedPhase
	setIndex := 0
	for _, block := range routine.Blocks {
		if block.Repeats <= 0 {
			continue
		}
		for repetition := 0; repetition < block.Repeats; repetition++ {
			setIndex++
			for position, template := range block.Phases {
				phases = append(phases, ExpandedPhase{
					Type:        template.Type,
					Seconds:     ClampSeconds(template.Seconds),
					SetIndex:    setIndex,
					TotalSets:   totalSets,
					PhaseInSet:  position,
					PhasesInSet: len(block.Phases),
				})
			}
		}
	}
	return phases
}
