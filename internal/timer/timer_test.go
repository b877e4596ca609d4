package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		FocusMinutes:          25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
}

// started returns an engine running a fresh focus phase anchored at t0.
func started(t *testing.T) *Engine {
	t.Helper()
	e := New()
	require.NoError(t, e.Start(testConfig(), t0))
	return e
}

// finish runs the current phase to completion and advances.
func finish(t *testing.T, e *Engine, now time.Time) (AdvanceResult, time.Time) {
	t.Helper()
	end := now.Add(e.Config().Duration(e.Phase()))
	res, err := e.Advance(end)
	require.NoError(t, err)
	return res, end
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"focus zero", func(c *Config) { c.FocusMinutes = 0 }, true},
		{"focus too long", func(c *Config) { c.FocusMinutes = 61 }, true},
		{"focus max", func(c *Config) { c.FocusMinutes = 60 }, false},
		{"short break zero", func(c *Config) { c.ShortBreakMinutes = 0 }, true},
		{"short break too long", func(c *Config) { c.ShortBreakMinutes = 31 }, true},
		{"long break too short", func(c *Config) { c.LongBreakMinutes = 4 }, true},
		{"long break min", func(c *Config) { c.LongBreakMinutes = 5 }, false},
		{"cycles zero", func(c *Config) { c.CyclesBeforeLongBreak = 0 }, true},
		{"cycles too many", func(c *Config) { c.CyclesBeforeLongBreak = 11 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	e := New()
	cfg := testConfig()
	cfg.FocusMinutes = 0

	err := e.Start(cfg, t0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	// Engine state unchanged by the failed start.
	assert.Equal(t, StatusIdle, e.Status())
	assert.Equal(t, PhaseFocus, e.Phase())
}

func TestStartFromRunningRejected(t *testing.T) {
	e := started(t)
	err := e.Start(testConfig(), t0.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTickImmediatelyAfterStart(t *testing.T) {
	e := started(t)
	snap := e.Tick(t0)

	assert.Equal(t, time.Duration(0), snap.Elapsed)
	assert.Equal(t, 25*time.Minute, snap.Remaining)
	assert.False(t, snap.Complete)
	assert.Equal(t, PhaseFocus, snap.Phase)
}

func TestTickWhileRunning(t *testing.T) {
	e := started(t)
	snap := e.Tick(t0.Add(10 * time.Minute))

	assert.Equal(t, 10*time.Minute, snap.Elapsed)
	assert.Equal(t, 15*time.Minute, snap.Remaining)
	assert.False(t, snap.Complete)
	assert.InDelta(t, 0.4, snap.Progress(), 0.001)
}

func TestPauseFreezesElapsedTime(t *testing.T) {
	e := started(t)

	require.NoError(t, e.Pause(t0.Add(10*time.Minute)))
	assert.Equal(t, StatusPaused, e.Status())

	// An hour passes while paused; none of it counts.
	snap := e.Tick(t0.Add(70 * time.Minute))
	assert.Equal(t, 10*time.Minute, snap.Elapsed)
	assert.Equal(t, 15*time.Minute, snap.Remaining)

	require.NoError(t, e.Resume(t0.Add(70*time.Minute)))
	snap = e.Tick(t0.Add(75 * time.Minute))
	assert.Equal(t, 15*time.Minute, snap.Elapsed)
	assert.Equal(t, 10*time.Minute, snap.Remaining)
}

func TestPauseResumeTransitionGuards(t *testing.T) {
	e := New()
	assert.ErrorIs(t, e.Pause(t0), ErrInvalidTransition)
	assert.ErrorIs(t, e.Resume(t0), ErrInvalidTransition)

	e = started(t)
	assert.ErrorIs(t, e.Resume(t0.Add(time.Minute)), ErrInvalidTransition)

	require.NoError(t, e.Pause(t0.Add(time.Minute)))
	assert.ErrorIs(t, e.Pause(t0.Add(2*time.Minute)), ErrInvalidTransition)
}

func TestCompletionDetectedNotClamped(t *testing.T) {
	e := started(t)

	// Polled a bit past the end of the phase.
	snap := e.Tick(t0.Add(25*time.Minute + 3*time.Second))
	assert.True(t, snap.Complete)
	assert.Equal(t, StatusCompleted, snap.Status)
	assert.Equal(t, 25*time.Minute+3*time.Second, snap.Elapsed)
	assert.Equal(t, time.Duration(0), snap.Remaining)

	// Elapsed is banked at completion; it no longer grows.
	later := e.Tick(t0.Add(2 * time.Hour))
	assert.Equal(t, 25*time.Minute+3*time.Second, later.Elapsed)
}

func TestAdvanceBeforeCompletion(t *testing.T) {
	e := started(t)
	_, err := e.Advance(t0.Add(10 * time.Minute))
	assert.ErrorIs(t, err, ErrPhaseNotComplete)

	// The failed advance does not disturb the run.
	snap := e.Tick(t0.Add(10 * time.Minute))
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, PhaseFocus, snap.Phase)
}

func TestAdvanceFocusEmitsRecord(t *testing.T) {
	e := started(t)

	end := t0.Add(25 * time.Minute)
	res, err := e.Advance(end)
	require.NoError(t, err)

	assert.Equal(t, PhaseFocus, res.Finished)
	assert.Equal(t, PhaseShortBreak, res.Next)
	assert.False(t, res.LongBreak)
	assert.Equal(t, 1, res.Cycles)

	require.NotNil(t, res.Record)
	assert.Equal(t, "2024-01-01", res.Record.Date)
	// Configured duration, not wall-clock elapsed.
	assert.Equal(t, 25*60, res.Record.DurationSeconds)
	assert.True(t, res.Record.CompletedAt.Equal(end))

	// Auto-advance: the break starts immediately.
	snap := e.Tick(end)
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, 5*time.Minute, snap.Remaining)
}

func TestAdvanceBreakEmitsNoRecord(t *testing.T) {
	e := started(t)
	res, now := finish(t, e, t0)
	require.Equal(t, PhaseShortBreak, res.Next)

	res, _ = finish(t, e, now)
	assert.Equal(t, PhaseShortBreak, res.Finished)
	assert.Equal(t, PhaseFocus, res.Next)
	assert.Nil(t, res.Record)
}

func TestLongBreakEveryFourthCycle(t *testing.T) {
	e := started(t)
	now := t0

	var res AdvanceResult
	for i := 1; i <= 4; i++ {
		res, now = finish(t, e, now) // focus -> break
		if i < 4 {
			assert.Equal(t, PhaseShortBreak, res.Next, "cycle %d", i)
			assert.False(t, res.LongBreak)
		} else {
			assert.Equal(t, PhaseLongBreak, res.Next)
			assert.True(t, res.LongBreak)
		}
		assert.Equal(t, i, res.Cycles)

		res, now = finish(t, e, now) // break -> focus
		require.Equal(t, PhaseFocus, res.Next)
	}

	// The long break reset the counter; the cadence repeats.
	assert.Equal(t, 0, e.Cycles())
	res, _ = finish(t, e, now)
	assert.Equal(t, PhaseShortBreak, res.Next)
	assert.Equal(t, 1, res.Cycles)
}

func TestLongBreakCadenceOfTwo(t *testing.T) {
	cfg := testConfig()
	cfg.CyclesBeforeLongBreak = 2

	e := New()
	require.NoError(t, e.Start(cfg, t0))
	now := t0

	res, now := finish(t, e, now)
	assert.Equal(t, PhaseShortBreak, res.Next)
	res, now = finish(t, e, now)
	require.Equal(t, PhaseFocus, res.Next)

	res, _ = finish(t, e, now)
	assert.Equal(t, PhaseLongBreak, res.Next)
}

func TestResetKeepsCycleCount(t *testing.T) {
	e := started(t)
	_, now := finish(t, e, t0)
	require.Equal(t, 1, e.Cycles())

	e.Reset()
	assert.Equal(t, StatusIdle, e.Status())
	assert.Equal(t, PhaseFocus, e.Phase())
	// Completed cycles are history, not part of the abandoned interval.
	assert.Equal(t, 1, e.Cycles())

	require.NoError(t, e.Start(testConfig(), now))
	snap := e.Tick(now)
	assert.Equal(t, time.Duration(0), snap.Elapsed)
}

func TestStartAfterCompletedPhase(t *testing.T) {
	e := started(t)
	end := t0.Add(25 * time.Minute)
	snap := e.Tick(end)
	require.True(t, snap.Complete)

	// A fresh start from the completed state is allowed.
	require.NoError(t, e.Start(testConfig(), end))
	assert.Equal(t, StatusRunning, e.Status())
	assert.Equal(t, PhaseFocus, e.Phase())
}

func TestPausedPhaseCanComplete(t *testing.T) {
	e := started(t)
	require.NoError(t, e.Pause(t0.Add(25*time.Minute)))

	snap := e.Tick(t0.Add(26 * time.Minute))
	assert.True(t, snap.Complete)

	res, err := e.Advance(t0.Add(26 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, PhaseShortBreak, res.Next)
}

func TestSnapshotProgress(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{}.Progress())
	assert.InDelta(t, 0.5, Snapshot{Elapsed: time.Minute, Remaining: time.Minute}.Progress(), 0.001)
	assert.Equal(t, 1.0, Snapshot{Elapsed: time.Minute, Remaining: 0}.Progress())
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "focus", PhaseFocus.String())
	assert.Equal(t, "short_break", PhaseShortBreak.String())
	assert.Equal(t, "long_break", PhaseLongBreak.String())
	assert.True(t, PhaseShortBreak.IsBreak())
	assert.True(t, PhaseLongBreak.IsBreak())
	assert.False(t, PhaseFocus.IsBreak())
}
