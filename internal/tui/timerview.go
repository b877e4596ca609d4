package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/sadopc/pomo/internal/quotes"
	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
)

// timerModel is the main view: it polls the engine once per tick and
// drives completion bookkeeping (stats, ledger, quote rotation).
type timerModel struct {
	engine *timer.Engine
	stats  *stats.Store
	store  *store.Store
	log    zerolog.Logger

	width  int
	height int

	snap   timer.Snapshot
	voice  quotes.Voice
	quote  string
	quoteN int
}

func newTimerModel(s *store.Store, st *stats.Store, log zerolog.Logger) timerModel {
	m := timerModel{
		engine: timer.New(),
		stats:  st,
		store:  s,
		log:    log,
		voice:  quotes.Solea,
	}
	if v, err := s.GetSetting("voice"); err == nil {
		if voice, err := quotes.Parse(v); err == nil {
			m.voice = voice
		}
	}
	return m
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) running() bool {
	return t.engine.Status() == timer.StatusRunning
}

func (t timerModel) paused() bool {
	return t.engine.Status() == timer.StatusPaused
}

func (t timerModel) remaining() time.Duration {
	return t.snap.Remaining
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		t.snap = t.engine.Tick(now)
		if t.snap.Complete {
			return t.advance(now)
		}
		return t, nil

	case tea.KeyMsg:
		now := time.Now()
		switch {
		case key.Matches(msg, keys.Start):
			return t.start(now)
		case key.Matches(msg, keys.Pause):
			return t.togglePause(now)
		case key.Matches(msg, keys.Reset):
			t.engine.Reset()
			t.snap = t.engine.Tick(now)
			t.quote = ""
			return t, status("Timer reset")
		}
	}
	return t, nil
}

func (t timerModel) start(now time.Time) (timerModel, tea.Cmd) {
	cfg := t.store.TimerConfig()
	if err := t.engine.Start(cfg, now); err != nil {
		return t, statusErr(fmt.Sprintf("Cannot start: %v", err))
	}
	t.snap = t.engine.Tick(now)
	t.quote = ""
	t.log.Info().Int("focus_minutes", cfg.FocusMinutes).Msg("run started")
	return t, status("Focus started")
}

func (t timerModel) togglePause(now time.Time) (timerModel, tea.Cmd) {
	switch t.engine.Status() {
	case timer.StatusRunning:
		if err := t.engine.Pause(now); err != nil {
			return t, statusErr(err.Error())
		}
		t.snap = t.engine.Tick(now)
		return t, status("Paused")
	case timer.StatusPaused:
		if err := t.engine.Resume(now); err != nil {
			return t, statusErr(err.Error())
		}
		t.snap = t.engine.Tick(now)
		return t, status("Resumed")
	}
	return t, nil
}

// advance performs the phase transition and records the outcome. Focus
// completions feed the statistics store; every completion lands in the
// session ledger.
func (t timerModel) advance(now time.Time) (timerModel, tea.Cmd) {
	cfg := t.engine.Config()
	res, err := t.engine.Advance(now)
	if err != nil {
		return t, statusErr(err.Error())
	}
	t.snap = t.engine.Tick(now)

	if res.Record != nil {
		if err := t.stats.RecordSession(*res.Record); err != nil {
			t.log.Error().Err(err).Msg("record session")
		}
		if _, err := t.store.LogSession(res.Finished.String(), res.Record.Date, res.Record.DurationSeconds, now); err != nil {
			t.log.Error().Err(err).Msg("log focus session")
		}
	} else {
		date := now.Format(timer.DateLayout)
		if err := t.stats.RecordBreak(date); err != nil {
			t.log.Error().Err(err).Msg("record break")
		}
		secs := int(cfg.Duration(res.Finished).Seconds())
		if _, err := t.store.LogSession(res.Finished.String(), date, secs, now); err != nil {
			t.log.Error().Err(err).Msg("log break session")
		}
	}

	if res.Next.IsBreak() {
		t.quote = quotes.Pick(t.voice, t.quoteN)
		t.quoteN++
		if res.LongBreak {
			return t, status("Long break — you earned it \a")
		}
		return t, status("Break time \a")
	}
	t.quote = ""
	return t, status("Back to focus \a")
}

func (t timerModel) view() string {
	w := t.width - 4

	title := titleStyle.Render("Pomodoro")
	label := phaseLabels[t.engine.Phase()]
	accent := phaseStyle(label)

	var timeDisplay, phaseLine, hint string
	switch t.engine.Status() {
	case timer.StatusIdle:
		cfg := t.store.TimerConfig()
		timeDisplay = timerStyle.Width(w - 6).Render(formatClock(cfg.Duration(timer.PhaseFocus)))
		phaseLine = mutedStyle.Render("Ready to focus")
		hint = mutedStyle.Render("Press s to begin")
	case timer.StatusPaused:
		timeDisplay = warningStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatClock(t.snap.Remaining))
		phaseLine = warningStyle.Bold(true).Render(label + " · PAUSED")
		hint = t.renderCycles()
	default:
		timeDisplay = accent.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatClock(t.snap.Remaining))
		phaseLine = accent.Bold(true).Render(label)
		hint = t.renderCycles()
	}

	rows := []string{title, "", timeDisplay, phaseLine, "", hint}

	if t.quote != "" && t.engine.Phase().IsBreak() {
		rows = append(rows, "", quoteStyle.Render(t.quote), mutedStyle.Render("— "+t.voice.String()))
	}

	rows = append(rows, "", t.renderToday())

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)

	var controls string
	switch t.engine.Status() {
	case timer.StatusIdle:
		controls = mutedStyle.Render("s: start  q: quit")
	case timer.StatusPaused:
		controls = mutedStyle.Render("space: resume  x: reset")
	default:
		controls = mutedStyle.Render("space: pause  x: reset")
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

func (t timerModel) renderCycles() string {
	target := t.engine.Config().CyclesBeforeLongBreak
	if target == 0 {
		return ""
	}
	done := t.engine.Cycles() % target
	if done == 0 && t.engine.Phase() == timer.PhaseLongBreak {
		done = target
	}

	var parts []string
	for i := 0; i < target; i++ {
		switch {
		case i < done:
			parts = append(parts, highlightStyle.Render("●"))
		case i == done && t.engine.Phase() == timer.PhaseFocus:
			parts = append(parts, focusStyle.Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	progress := strings.Join(parts, " ")
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d until long break", done, target))
	return progress + counter
}

func (t timerModel) renderToday() string {
	today := t.stats.Daily(time.Now().Format(timer.DateLayout))
	streak := t.stats.CurrentStreak()
	return mutedStyle.Render(fmt.Sprintf(
		"Today: %d pomodoros · %s focus · streak %d",
		today.PomodoroCount, formatSeconds(today.TotalFocusSeconds), streak,
	))
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func statusErr(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}
