package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/store"
)

const historyLimit = 25

type historyModel struct {
	store  *store.Store
	width  int
	height int

	sessions []store.Session
}

func newHistoryModel(s *store.Store) historyModel {
	return historyModel{store: s}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		sessions, _ := h.store.ListSessions(store.SessionFilter{Limit: historyLimit})
		return historyDataMsg{sessions: sessions}
	}
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.sessions = msg.sessions
		return h, nil
	}
	return h, nil
}

func (h historyModel) view() string {
	w := h.width - 4

	title := titleStyle.Render("Session History")

	if len(h.sessions) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "",
				mutedStyle.Render("  No sessions yet — finish a pomodoro first")),
		)
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-13s %10s %10s", "Date", "Phase", "Duration", "Finished")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 50))))

	for _, sess := range h.sessions {
		label := phaseDisplay(sess.Phase)
		rows = append(rows, fmt.Sprintf("  %-12s %s %10s %10s",
			sess.Date,
			phaseStyle(label).Render(fmt.Sprintf("%-13s", label)),
			formatSeconds(int64(sess.Duration)),
			sess.CompletedAt.Local().Format("15:04"),
		))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func phaseDisplay(phase string) string {
	switch phase {
	case "short_break":
		return "SHORT BREAK"
	case "long_break":
		return "LONG BREAK"
	default:
		return "FOCUS"
	}
}
