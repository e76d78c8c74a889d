package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/output"
	"github.com/rgehrsitz/ley73/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}
	if m.loading {
		return TitleStyle.Render("Ley 73 pension projections") + "\n" + SubtitleStyle.Render("Projecting "+m.source+"...")
	}

	sections := []string{m.renderHeader()}

	clientPane, quotePane := PaneStyle, PaneStyle
	if m.focus == PaneClients {
		clientPane = ActivePaneStyle
	} else {
		quotePane = ActivePaneStyle
	}
	sections = append(sections, clientPane.Render(m.clients.View()))

	if p, ok := m.Selected(); ok {
		s := compare.Summarize(p)
		sections = append(sections, components.MetricGrid(summaryCards(s), 4))
		sections = append(sections, quotePane.Render(m.quotes.View()))
	}

	if len(m.issues) > 0 {
		sections = append(sections, m.renderIssues())
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("Ley 73 pension projections")
	if m.result == nil {
		return title
	}
	sub := fmt.Sprintf("%s  |  constants %d  |  %d clients", m.source, m.result.Year, len(m.result.Clients))
	return title + "\n" + SubtitleStyle.Render(sub)
}

func (m Model) renderIssues() string {
	var b strings.Builder
	b.WriteString(IssueStyle.Render(fmt.Sprintf("%d rows skipped:", len(m.issues))))
	for _, issue := range m.issues {
		b.WriteString("\n  " + issue.String())
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	if !m.showHelp {
		return StatusBarStyle.Render("? help  q quit")
	}
	return StatusBarStyle.Render(m.keys.helpLine())
}

func (m Model) renderError() string {
	return ErrorStyle.Render("Error: "+m.err.Error()) + "\n" + StatusBarStyle.Render("r retry  q quit")
}

// summaryCards builds the metric cards for one client
func summaryCards(s compare.ContinuationSummary) []*components.MetricCard {
	desired := components.NewMetricCard(
		fmt.Sprintf("Monthly at %d", s.DesiredAge),
		monthlyText(s.DesiredEligible, s.DesiredFloorApplied, s.DesiredMonthly),
	)
	if s.DesiredFloorApplied {
		desired.WithDescription("guaranteed minimum")
	}
	cards := []*components.MetricCard{desired}

	if !s.HasComparison {
		return cards
	}

	baseline := components.NewMetricCard("Without continuation", compare.Money(s.DesiredBaselineMonthly))
	gain := components.NewMetricCard("Monthly gain", output.FormatSigned(s.DesiredBenefit))
	if !s.DesiredBenefit.IsZero() {
		gain.WithTrend(s.DesiredBenefit.IsPositive(), output.FormatSigned(s.DesiredBenefit.Mul(decimal.NewFromInt(12)))+" / year")
	}
	best := components.NewMetricCard("Largest gain", output.FormatSigned(s.BestBenefit)).
		WithDescription("at age " + itoa(s.BestAge))
	return append(cards, baseline, gain, best)
}

// monthlyText renders a monthly amount with its eligibility and floor markers
func monthlyText(eligible, floor bool, monthly decimal.Decimal) string {
	if !eligible {
		return "not eligible"
	}
	if floor {
		return compare.Money(monthly) + " *"
	}
	return compare.Money(monthly)
}

func itoa(n int) string { return strconv.Itoa(n) }
