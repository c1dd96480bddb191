package session

import (
	"sync"
	"time"

	"kegeltimer/internal/core/model"
)

// Haptics receives feedback cues from the engine: a short cue for every
// elapsed second and a stronger cue at each phase boundary.
type Haptics interface {
	Tick()
	PhaseComplete()
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine is a state machine that plays an expanded routine on a
// one-second tick. All transitions are total: out-of-range indices and
// empty routines degrade to no-ops rather than errors.
type Engine struct {
	mu           sync.Mutex
	options      Config
	phases       []model.ExpandedPhase
	index        int
	remaining    int
	totalSeconds int
	started      bool
	state        State
	scheduler    Scheduler
	haptics      Haptics
	events       []chan Event
	ticking      bool
}

// New creates an Engine positioned at the start of the given routine.
func New(routine model.Routine, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	engine := &Engine{
		options:   options,
		state:     StateIdle,
		scheduler: NewTickerScheduler(),
	}
	engine.loadLocked(routine)
	return engine
}

// SetHaptics injects the feedback collaborator.
func (engine *Engine) SetHaptics(haptics Haptics) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.haptics = haptics
}

// SetScheduler injects the tick source. Only valid while not running.
func (engine *Engine) SetScheduler(scheduler Scheduler) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if scheduler != nil && !engine.ticking {
		engine.scheduler = scheduler
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Load replaces the routine: the sequence is re-expanded and playback
// resets to idle at the first phase, cancelling any in-flight ticking.
func (engine *Engine) Load(routine model.Routine) {
	engine.mu.Lock()
	engine.loadLocked(routine)
	engine.emitLocked(Event{
		Type:  EventStateChange,
		State: StateIdle,
		At:    time.Now(),
	})
	engine.mu.Unlock()
}

// Toggle starts, pauses, or resumes playback. A completed session is
// reset and restarted from the beginning. Toggling an empty routine is
// a no-op.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	if len(engine.phases) == 0 {
		engine.mu.Unlock()
		return
	}

	switch engine.state {
	case StateRunning:
		engine.state = StatePaused
		engine.stopTickingLocked()
	case StateComplete:
		engine.resetLocked()
		engine.startLocked()
	default:
		engine.startLocked()
	}
	currentState := engine.state
	engine.emitLocked(Event{
		Type:       EventStateChange,
		State:      currentState,
		PhaseIndex: engine.index,
		Remaining:  engine.remaining,
		At:         time.Now(),
	})
	engine.mu.Unlock()
}

// Pause freezes playback in place. No-op unless running.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.state != StateRunning {
		engine.mu.Unlock()
		return
	}
	engine.state = StatePaused
	engine.stopTickingLocked()
	engine.emitLocked(Event{
		Type:       EventStateChange,
		State:      StatePaused,
		PhaseIndex: engine.index,
		Remaining:  engine.remaining,
		At:         time.Now(),
	})
	engine.mu.Unlock()
}

// Reset returns the engine to idle at the first phase from any state.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.resetLocked()
	engine.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateIdle,
		Remaining: engine.remaining,
		At:        time.Now(),
	})
	engine.mu.Unlock()
}

// Stop terminates ticking and closes all observer channels.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.stopTickingLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) loadLocked(routine model.Routine) {
	engine.phases = model.Expand(routine)
	engine.totalSeconds = 0
	for _, phase := range engine.phases {
		engine.totalSeconds += phase.Seconds
	}
	engine.resetLocked()
}

func (engine *Engine) startLocked() {
	engine.state = StateRunning
	engine.started = true
	engine.ticking = true
	engine.scheduler.Start(engine.options.TickInterval, engine.tick)
}

func (engine *Engine) resetLocked() {
	engine.stopTickingLocked()
	engine.state = StateIdle
	engine.started = false
	engine.index = 0
	engine.remaining = 0
	if len(engine.phases) > 0 {
		engine.remaining = engine.phases[0].Seconds
	}
}

func (engine *Engine) stopTickingLocked() {
	if engine.ticking {
		engine.scheduler.Stop()
		engine.ticking = false
	}
}

// tick consumes one second of phase time. A decrement that reaches zero
// completes the phase within the same tick, so an n-second phase takes
// exactly n ticks.
func (engine *Engine) tick() {
	engine.mu.Lock()
	if engine.state != StateRunning {
		engine.mu.Unlock()
		return
	}
	if engine.index >= len(engine.phases) {
		engine.completeLocked()
		engine.mu.Unlock()
		return
	}

	if engine.remaining > 0 {
		engine.remaining--
		if engine.remaining > 0 {
			if engine.haptics != nil {
				engine.haptics.Tick()
			}
			engine.emitLocked(Event{
				Type:       EventTick,
				State:      StateRunning,
				PhaseIndex: engine.index,
				Remaining:  engine.remaining,
				Progress:   engine.phaseProgressLocked(),
				At:         time.Now(),
			})
			engine.mu.Unlock()
			return
		}
	}

	if engine.haptics != nil {
		engine.haptics.PhaseComplete()
	}
	if engine.index+1 < len(engine.phases) {
		engine.index++
		engine.remaining = engine.phases[engine.index].Seconds
		engine.emitLocked(Event{
			Type:       EventPhaseChange,
			State:      StateRunning,
			PhaseIndex: engine.index,
			Remaining:  engine.remaining,
			At:         time.Now(),
		})
		engine.mu.Unlock()
		return
	}

	engine.completeLocked()
	engine.mu.Unlock()
}

func (engine *Engine) completeLocked() {
	engine.remaining = 0
	engine.state = StateComplete
	engine.stopTickingLocked()
	engine.emitLocked(Event{
		Type:  EventStateChange,
		State: StateComplete,
		At:    time.Now(),
	})
}

func (engine *Engine) phaseProgressLocked() float64 {
	if engine.state == StateComplete || !engine.started {
		return 0
	}
	if engine.index >= len(engine.phases) {
		return 0
	}
	duration := engine.phases[engine.index].Seconds
	if duration <= 0 {
		return 0
	}
	progress := float64(duration-engine.remaining) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), engine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
