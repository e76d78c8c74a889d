package output

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#5DADE2"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"}

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	desiredStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// column is one console table column
type column struct {
	title string
	width int
	left  bool
}

// cell pads a value to the column width
func (c column) cell(v string) string {
	align := lipgloss.Right
	if c.left {
		align = lipgloss.Left
	}
	return lipgloss.NewStyle().Width(c.width).Align(align).Render(v)
}
