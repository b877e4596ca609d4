package timer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfig is returned by Start when the config fails validation.
	ErrInvalidConfig = errors.New("invalid timer config")
	// ErrInvalidTransition is returned when an operation is called from a
	// state that forbids it.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPhaseNotComplete is returned by Advance before the current phase
	// has run to completion.
	ErrPhaseNotComplete = errors.New("phase not complete")
)

// Config holds the phase durations and the long-break cadence. It is
// immutable once a run starts; changes take effect at the next Start.
type Config struct {
	FocusMinutes          int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

// DefaultConfig is the classic 25/5/15 Pomodoro setup.
func DefaultConfig() Config {
	return Config{
		FocusMinutes:          25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate rejects out-of-range values. Values are never clamped.
func (c Config) Validate() error {
	if c.FocusMinutes < 1 || c.FocusMinutes > 60 {
		return fmt.Errorf("focus minutes %d out of range 1..60: %w", c.FocusMinutes, ErrInvalidConfig)
	}
	if c.ShortBreakMinutes < 1 || c.ShortBreakMinutes > 30 {
		return fmt.Errorf("short break minutes %d out of range 1..30: %w", c.ShortBreakMinutes, ErrInvalidConfig)
	}
	if c.LongBreakMinutes < 5 || c.LongBreakMinutes > 60 {
		return fmt.Errorf("long break minutes %d out of range 5..60: %w", c.LongBreakMinutes, ErrInvalidConfig)
	}
	if c.CyclesBeforeLongBreak < 1 || c.CyclesBeforeLongBreak > 10 {
		return fmt.Errorf("cycles before long break %d out of range 1..10: %w", c.CyclesBeforeLongBreak, ErrInvalidConfig)
	}
	return nil
}

// Duration returns the configured length of the given phase.
func (c Config) Duration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return time.Duration(c.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(c.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(c.FocusMinutes) * time.Minute
	}
}
