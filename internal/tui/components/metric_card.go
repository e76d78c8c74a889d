package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder   = lipgloss.AdaptiveColor{Light: "#BDC3C7", Dark: "#566573"}
	colorPositive = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
	colorNegative = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#EC7063"}

	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"})
	valueStyle       = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"})
)

// MetricCard displays a single metric with label, value, and optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend represents a metric's change direction and amount
type Trend struct {
	IsPositive bool
	Change     string // e.g., "+$1,250.00"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{
		IsPositive: isPositive,
		Change:     change,
	}
	return m
}

// WithDescription adds a description/subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// TrendIndicator returns the arrow for a trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

func trendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(colorPositive)
	}
	return lipgloss.NewStyle().Foreground(colorNegative)
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := labelStyle.Render(m.Label)
	value := valueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		trend = "\n" + trendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", TrendIndicator(m.Trend.IsPositive), m.Trend.Change))
	}

	var desc string
	if m.Description != "" {
		desc = "\n" + descriptionStyle.Render(m.Description)
	}

	content := label + "\n" + value + trend + desc

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns a compact inline version without border
func (m *MetricCard) RenderCompact() string {
	label := labelStyle.Render(m.Label + ":")
	value := valueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		trend = " " + trendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", TrendIndicator(m.Trend.IsPositive), m.Trend.Change))
	}

	return label + " " + value + trend
}

// MetricGrid renders multiple metric cards in a grid layout
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := []string{}
	currentRow := []string{}

	for i, card := range cards {
		currentRow = append(currentRow, card.Render())

		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
