package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#5DADE2"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#EC7063"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#BDC3C7", Dark: "#566573"}

	// Base styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActivePaneStyle = PaneStyle.
			BorderForeground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	IssueStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)
)
