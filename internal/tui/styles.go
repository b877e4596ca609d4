package tui

import "github.com/charmbracelet/lipgloss"

// SEED color palette
var (
	colorAnthrazit  = lipgloss.Color("#2C2C2C")
	colorTerracotta = lipgloss.Color("#E07A5F")
	colorOlive      = lipgloss.Color("#81B29A")
	colorBlue       = lipgloss.Color("#3D5A80")
	colorLight      = lipgloss.Color("#F4F1DE")
	colorMuted      = lipgloss.Color("#666666")
	colorWarning    = lipgloss.Color("#F39C12")
	colorError      = lipgloss.Color("#E74C3C")
	colorSubtle     = lipgloss.Color("#414868")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTerracotta).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorTerracotta).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	// Timer
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLight).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLight)

	focusStyle = lipgloss.NewStyle().
			Foreground(colorTerracotta)

	breakStyle = lipgloss.NewStyle().
			Foreground(colorOlive)

	longBreakStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorOlive)

	quoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorLight).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorTerracotta).
			Padding(0, 1)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)

// phaseStyle returns the accent style for a phase label.
func phaseStyle(label string) lipgloss.Style {
	switch label {
	case "SHORT BREAK":
		return breakStyle
	case "LONG BREAK":
		return longBreakStyle
	default:
		return focusStyle
	}
}
