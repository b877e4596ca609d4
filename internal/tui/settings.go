package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/quotes"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	focusMinutes      *string
	shortBreakMinutes *string
	longBreakMinutes  *string
	cycles            *string
	voice             *string
}

func newSettingsModel(s *store.Store) settingsModel {
	fm, sb, lb, cy, vo := "", "", "", "", ""
	return settingsModel{
		store:             s,
		focusMinutes:      &fm,
		shortBreakMinutes: &sb,
		longBreakMinutes:  &lb,
		cycles:            &cy,
		voice:             &vo,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cfg := s.store.TimerConfig()
	*s.focusMinutes = strconv.Itoa(cfg.FocusMinutes)
	*s.shortBreakMinutes = strconv.Itoa(cfg.ShortBreakMinutes)
	*s.longBreakMinutes = strconv.Itoa(cfg.LongBreakMinutes)
	*s.cycles = strconv.Itoa(cfg.CyclesBeforeLongBreak)
	*s.voice = "solea"
	if v, err := s.store.GetSetting("voice"); err == nil {
		*s.voice = v
	}

	voiceOptions := make([]huh.Option[string], 0, len(quotes.All))
	for _, v := range quotes.All {
		voiceOptions = append(voiceOptions, huh.NewOption(v.String(), v.Key()))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min, 1-60)").
				Value(s.focusMinutes).Validate(inRange(1, 60)),
			huh.NewInput().Title("Short break (min, 1-30)").
				Value(s.shortBreakMinutes).Validate(inRange(1, 30)),
			huh.NewInput().Title("Long break (min, 5-60)").
				Value(s.longBreakMinutes).Validate(inRange(5, 60)),
			huh.NewInput().Title("Focus cycles before long break (1-10)").
				Value(s.cycles).Validate(inRange(1, 10)),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Quote voice").
				Options(voiceOptions...).Value(s.voice),
		).Title("Breaks"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			return s, statusErr(fmt.Sprintf("Settings rejected: %v", err))
		}
		return s, tea.Batch(s.refresh(), status("Settings saved"))
	}

	return s, cmd
}

// saveSettings rebuilds the config from the form and persists it. The
// store validates once more; out-of-range values are rejected, never
// clamped.
func (s settingsModel) saveSettings() error {
	cfg := timer.Config{
		FocusMinutes:          atoiOr(*s.focusMinutes, -1),
		ShortBreakMinutes:     atoiOr(*s.shortBreakMinutes, -1),
		LongBreakMinutes:      atoiOr(*s.longBreakMinutes, -1),
		CyclesBeforeLongBreak: atoiOr(*s.cycles, -1),
	}
	if err := s.store.SaveTimerConfig(cfg); err != nil {
		return err
	}
	return s.store.SetSetting("voice", *s.voice)
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	var rows []string
	rows = append(rows, title, "")
	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(28).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "focus_minutes", "short_break_minutes", "long_break_minutes":
		return v + " min"
	case "voice":
		if voice, err := quotes.Parse(v); err == nil {
			return voice.String()
		}
	}
	return v
}

// inRange validates a form field as an integer within [lo, hi].
func inRange(lo, hi int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func atoiOr(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
