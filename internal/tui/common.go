package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewStats
	viewHistory
	viewSettings
)

var viewNames = []string{"Timer", "Stats", "History", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type statsDataMsg struct {
	week    []stats.DailyStats
	today   stats.DailyStats
	current int
	longest int
}

type historyDataMsg struct {
	sessions []store.Session
}

type settingsDataMsg struct {
	settings []store.Setting
}

// --- Helpers ---

var phaseLabels = map[timer.Phase]string{
	timer.PhaseFocus:      "FOCUS",
	timer.PhaseShortBreak: "SHORT BREAK",
	timer.PhaseLongBreak:  "LONG BREAK",
}

// formatClock renders a countdown as MM:SS.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatSeconds(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
