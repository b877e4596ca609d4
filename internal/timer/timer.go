// Package timer implements the Pomodoro phase state machine.
//
// The engine is pull-based: it holds no goroutines and schedules nothing.
// The host polls Tick on its own cadence and drives transitions explicitly.
// Every operation takes the current time as an argument; values obtained
// from time.Now carry a monotonic reading, so elapsed-time deltas are not
// affected by wall-clock adjustments.
package timer

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used to bucket sessions.
const DateLayout = "2006-01-02"

// Phase is the current activity interval type.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseFocus:
		return "focus"
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	}
	return "unknown"
}

// IsBreak reports whether the phase is a short or long break.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Status is the run state of the engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// SessionRecord is the immutable fact of one completed focus interval.
// Only focus completions produce a record; breaks do not.
type SessionRecord struct {
	Date            string    // calendar date, DateLayout
	DurationSeconds int       // configured focus duration, not wall-clock elapsed
	CompletedAt     time.Time
}

// Snapshot is the result of a Tick query.
type Snapshot struct {
	Phase     Phase
	Status    Status
	Elapsed   time.Duration
	Remaining time.Duration
	Complete  bool
}

// Progress returns the phase progress as a ratio in [0, 1].
func (s Snapshot) Progress() float64 {
	total := s.Elapsed + s.Remaining
	if total <= 0 {
		return 0
	}
	p := float64(s.Elapsed) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}

// AdvanceResult describes a phase transition performed by Advance.
type AdvanceResult struct {
	Finished  Phase
	Next      Phase
	LongBreak bool // the next phase is the long break
	Cycles    int  // focus phases completed since the last long break
	Record    *SessionRecord
}

// Engine owns phase state and elapsed/remaining computation. It is not
// safe for concurrent use; the host is expected to drive it from a single
// loop.
type Engine struct {
	cfg         Config
	phase       Phase
	status      Status
	startedAt   time.Time     // zero unless running
	accumulated time.Duration // elapsed time banked across pause/resume
	cycles      int           // focus completions since the last long break
}

// New returns an idle engine in the focus phase.
func New() *Engine {
	return &Engine{phase: PhaseFocus, status: StatusIdle}
}

// Start begins a fresh run in the focus phase. Valid from idle or after a
// completed phase; the config is validated and never clamped.
func (e *Engine) Start(cfg Config, now time.Time) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.status != StatusIdle && e.status != StatusCompleted {
		return fmt.Errorf("start while %s: %w", e.status, ErrInvalidTransition)
	}
	e.cfg = cfg
	e.phase = PhaseFocus
	e.status = StatusRunning
	e.startedAt = now
	e.accumulated = 0
	return nil
}

// Pause banks the elapsed running time and freezes the clock. Wall time
// that passes while paused never counts toward the phase.
func (e *Engine) Pause(now time.Time) error {
	if e.status != StatusRunning {
		return fmt.Errorf("pause while %s: %w", e.status, ErrInvalidTransition)
	}
	e.accumulated += now.Sub(e.startedAt)
	e.startedAt = time.Time{}
	e.status = StatusPaused
	return nil
}

// Resume continues a paused phase.
func (e *Engine) Resume(now time.Time) error {
	if e.status != StatusPaused {
		return fmt.Errorf("resume while %s: %w", e.status, ErrInvalidTransition)
	}
	e.startedAt = now
	e.status = StatusRunning
	return nil
}

// Reset returns the engine to idle in the focus phase. The cycle count is
// kept: abandoning an in-progress interval does not erase focus phases
// already completed toward the long break.
func (e *Engine) Reset() {
	e.phase = PhaseFocus
	e.status = StatusIdle
	e.startedAt = time.Time{}
	e.accumulated = 0
}

// Tick computes elapsed and remaining time for the current phase. When the
// accumulated time reaches the phase duration the engine marks itself
// completed and banks the elapsed time, so the value no longer grows with
// the wall clock. Completion is detected, not clamped: the banked elapsed
// time may exceed the phase duration by up to one polling interval.
func (e *Engine) Tick(now time.Time) Snapshot {
	elapsed := e.accumulated
	if e.status == StatusRunning {
		elapsed += now.Sub(e.startedAt)
	}

	duration := e.cfg.Duration(e.phase)
	if (e.status == StatusRunning || e.status == StatusPaused) && elapsed >= duration {
		e.accumulated = elapsed
		e.startedAt = time.Time{}
		e.status = StatusCompleted
	}

	remaining := duration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Snapshot{
		Phase:     e.phase,
		Status:    e.status,
		Elapsed:   elapsed,
		Remaining: remaining,
		Complete:  e.status == StatusCompleted,
	}
}

// Advance moves to the next phase after the current one has completed and
// immediately starts it. Finishing a focus phase yields a SessionRecord
// and selects the long break every cfg.CyclesBeforeLongBreak completions;
// finishing any break returns to focus, and finishing the long break
// resets the cycle count.
func (e *Engine) Advance(now time.Time) (AdvanceResult, error) {
	// Completion may not have been observed by a Tick yet.
	if snap := e.Tick(now); !snap.Complete {
		return AdvanceResult{}, fmt.Errorf("%s has %s remaining: %w", e.phase, snap.Remaining, ErrPhaseNotComplete)
	}

	res := AdvanceResult{Finished: e.phase}
	switch e.phase {
	case PhaseFocus:
		e.cycles++
		if e.cycles%e.cfg.CyclesBeforeLongBreak == 0 {
			e.phase = PhaseLongBreak
			res.LongBreak = true
		} else {
			e.phase = PhaseShortBreak
		}
		res.Record = &SessionRecord{
			Date:            now.Format(DateLayout),
			DurationSeconds: e.cfg.FocusMinutes * 60,
			CompletedAt:     now,
		}
	default:
		if e.phase == PhaseLongBreak {
			e.cycles = 0
		}
		e.phase = PhaseFocus
	}
	res.Next = e.phase
	res.Cycles = e.cycles

	e.accumulated = 0
	e.startedAt = now
	e.status = StatusRunning
	return res, nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Status returns the current run state.
func (e *Engine) Status() Status { return e.status }

// Cycles returns the focus completions counted since the last long break.
func (e *Engine) Cycles() int { return e.cycles }

// Config returns the config the current run was started with.
func (e *Engine) Config() Config { return e.cfg }
