package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/timer"
)

type statsModel struct {
	stats  *stats.Store
	width  int
	height int

	week    []stats.DailyStats
	today   stats.DailyStats
	current int
	longest int

	chart barchart.Model
}

func newStatsModel(st *stats.Store) statsModel {
	return statsModel{
		stats: st,
		chart: barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		return statsDataMsg{
			week:    s.stats.Weekly(now),
			today:   s.stats.Daily(now.Format(timer.DateLayout)),
			current: s.stats.CurrentStreak(),
			longest: s.stats.LongestStreak(),
		}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.week = msg.week
		s.today = msg.today
		s.current = msg.current
		s.longest = msg.longest
		s.buildChart()
		return s, nil
	}
	return s, nil
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if s.height > 28 {
		chartHeight = 14
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, d := range s.week {
		label := d.Date
		if t, err := time.Parse(timer.DateLayout, d.Date); err == nil {
			label = t.Format("Mon 02")
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  "pomodoros",
				Value: float64(d.PomodoroCount),
				Style: lipgloss.NewStyle().Foreground(colorTerracotta),
			}},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Statistics"), "  ",
		mutedStyle.Render("last 7 days"),
	)

	chartView := s.chart.View()

	var weekPomodoros int
	var weekFocus int64
	for _, d := range s.week {
		weekPomodoros += d.PomodoroCount
		weekFocus += d.TotalFocusSeconds
	}

	summary := []string{
		fmt.Sprintf("  %-18s %s", "Today", highlightStyle.Render(fmt.Sprintf("%d pomodoros · %s focus · %d breaks",
			s.today.PomodoroCount, formatSeconds(s.today.TotalFocusSeconds), s.today.BreaksTaken))),
		fmt.Sprintf("  %-18s %s", "This week", highlightStyle.Render(fmt.Sprintf("%d pomodoros · %s focus",
			weekPomodoros, formatSeconds(weekFocus)))),
		fmt.Sprintf("  %-18s %s", "Current streak", focusStyle.Render(fmt.Sprintf("%d days", s.current))),
		fmt.Sprintf("  %-18s %s", "Longest streak", focusStyle.Render(fmt.Sprintf("%d days", s.longest))),
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "",
			lipgloss.JoinVertical(lipgloss.Left, summary...),
		),
	)
}
