package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/output"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTables()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ReloadMsg:
		m.loading = true
		m.err = nil
		return m, projectCmd(m.source, m.engine, m.load)

	case ProjectionsReadyMsg:
		m.loading = false
		m.err = nil
		m.result = msg.Result
		m.issues = msg.Issues
		m.clients.SetRows(clientRows(msg.Result))
		m.selected = 0
		m.clients.SetCursor(0)
		m.syncQuotes()
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Switch):
		m.toggleFocus()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, func() tea.Msg { return ReloadMsg{} }
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == PaneClients {
		m.clients, cmd = m.clients.Update(msg)
		if c := m.clients.Cursor(); c != m.selected {
			m.selected = c
			m.syncQuotes()
		}
	} else {
		m.quotes, cmd = m.quotes.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == PaneClients {
		m.focus = PaneQuotes
		m.clients.Blur()
		m.quotes.Focus()
		return
	}
	m.focus = PaneClients
	m.quotes.Blur()
	m.clients.Focus()
}

func (m *Model) resizeTables() {
	// header, metric cards, status bar and borders; h includes the column header
	h := (m.height - 14) / 2
	if h < 3 {
		h = 3
	}
	m.clients.SetHeight(h)
	m.quotes.SetHeight(h)
}

// syncQuotes fills the quote table with the rows of the selected client
func (m *Model) syncQuotes() {
	p, ok := m.Selected()
	if !ok {
		m.quotes.SetRows(nil)
		return
	}
	rows := make([]table.Row, 0, len(p.Quotes))
	for _, q := range p.Quotes {
		age := itoa(q.RetirementAge)
		if q.IsDesiredAge {
			age += "<"
		}
		row := table.Row{age, output.FormatWeeks(q.TotalWeeks), compare.Money(q.AverageWage), monthlyText(q.Pension.Eligible, q.Pension.FloorApplied, q.Monthly())}
		if q.Baseline != nil {
			row = append(row,
				monthlyText(q.Baseline.Pension.Eligible, q.Baseline.Pension.FloorApplied, q.Baseline.Pension.Monthly),
				output.FormatSigned(q.ContinuationGain()))
		} else {
			row = append(row, "-", "-")
		}
		rows = append(rows, row)
	}
	m.quotes.SetRows(rows)
	m.quotes.SetCursor(0)
}

func clientRows(result *compare.BatchResult) []table.Row {
	if result == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(result.Clients))
	for _, c := range result.Clients {
		gain := "-"
		if c.Continuation {
			gain = output.FormatSigned(c.MonthlyBenefit)
		}
		rows = append(rows, table.Row{
			c.Name,
			itoa(c.DesiredAge),
			monthlyText(c.Eligible, c.FloorApplied, c.Monthly),
			gain,
		})
	}
	return rows
}
