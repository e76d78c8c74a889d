package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/importer"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testEngine() *calculation.Engine {
	return calculation.NewEngine(domain.RegulatoryConstants{
		Year:               2025,
		ReferenceUnitDaily: dec("113.14"),
		MinimumDailyWage:   dec("278.80"),
		WageCapMultiplier:  decimal.NewFromInt(25),
	})
}

func testLoader() ([]domain.ContributorProfile, []importer.RowIssue, error) {
	return []domain.ContributorProfile{
		{
			Name:                 "Ana",
			CurrentAge:           dec("58"),
			DesiredRetirementAge: 65,
			WeeksContributed:     900,
			HistoricalWage:       dec("450"),
			Continuation:         true,
			ContinuationWage:     dec("2828.5"),
		},
		{
			Name:                 "Bruno",
			CurrentAge:           dec("60"),
			DesiredRetirementAge: 62,
			WeeksContributed:     1500,
			HistoricalWage:       dec("900"),
		},
	}, []importer.RowIssue{{Row: 4, Name: "Eva", Reason: "current age is required"}}, nil
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel("clients.xlsx", testEngine(), testLoader)
	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	ready, ok := msg.(ProjectionsReadyMsg)
	require.True(t, ok, "expected ProjectionsReadyMsg, got %T", msg)
	require.Len(t, ready.Result.Clients, 2)
	assert.Equal(t, "clients.xlsx", ready.Result.Source)

	updated, _ := m.Update(ready)
	return updated.(Model)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsProjections(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.NoError(t, m.Err())
	require.Len(t, m.issues, 1)

	p, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Ana", p.Profile.Name)
	assert.Len(t, m.quotes.Rows(), len(p.Quotes))
	assert.Len(t, m.clients.Rows(), 2)

	view := m.View()
	assert.Contains(t, view, "Ley 73 pension projections")
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "Bruno")
	assert.Contains(t, view, "Without continuation")
	assert.Contains(t, view, "1 rows skipped")
	assert.Contains(t, view, "row 4 (Eva): current age is required")
}

func TestModel_SelectNextClient(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress("down"))
	m = updated.(Model)

	p, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bruno", p.Profile.Name)
	assert.Len(t, m.quotes.Rows(), len(p.Quotes))
	for _, row := range m.quotes.Rows() {
		assert.Equal(t, "-", row[4], "no baseline without continuation")
	}
	assert.NotContains(t, m.View(), "Without continuation")
}

func TestModel_SwitchFocus(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, PaneClients, m.Focus())

	updated, _ := m.Update(keyPress("tab"))
	m = updated.(Model)
	assert.Equal(t, PaneQuotes, m.Focus())

	// navigation now moves the quote table, not the client list
	updated, _ = m.Update(keyPress("down"))
	m = updated.(Model)
	p, _ := m.Selected()
	assert.Equal(t, "Ana", p.Profile.Name)
	assert.Equal(t, 1, m.quotes.Cursor())

	updated, _ = m.Update(keyPress("tab"))
	assert.Equal(t, PaneClients, updated.(Model).Focus())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := loadedModel(t)
			_, cmd := m.Update(keyPress(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_ReloadAndErrors(t *testing.T) {
	calls := 0
	failing := func() ([]domain.ContributorProfile, []importer.RowIssue, error) {
		calls++
		return nil, nil, errors.New("file is locked")
	}
	m := NewModel("clients.xlsx", testEngine(), failing)

	msg := m.Init()()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.Contains(t, errMsg.Err.Error(), "failed to load clients.xlsx")

	updated, _ := m.Update(errMsg)
	m = updated.(Model)
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "Error: failed to load clients.xlsx: file is locked")

	_, cmd := m.Update(keyPress("r"))
	require.NotNil(t, cmd)
	assert.IsType(t, ReloadMsg{}, cmd())

	updated, cmd = m.Update(ReloadMsg{})
	m = updated.(Model)
	assert.True(t, m.loading)
	assert.NoError(t, m.Err())
	require.NotNil(t, cmd)
	_, ok = cmd().(ErrorMsg)
	assert.True(t, ok)
	assert.Equal(t, 2, calls)
}

func TestModel_NoLoader(t *testing.T) {
	m := NewModel("", nil, nil)
	_, ok := m.Init()().(ErrorMsg)
	assert.True(t, ok)
}

func TestModel_WindowResize(t *testing.T) {
	m := loadedModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 120, m.width)
	// each pane gets (40-14)/2 lines, one of them the column header
	assert.Equal(t, 12, m.clients.Height())
	assert.Equal(t, 12, m.quotes.Height())

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = updated.(Model)
	assert.Equal(t, 2, m.clients.Height(), "tiny windows keep a minimum pane")
}

func TestMonthlyText(t *testing.T) {
	assert.Equal(t, "not eligible", monthlyText(false, false, dec("0")))
	assert.Equal(t, "$8,364.00 *", monthlyText(true, true, dec("8364")))
	assert.Equal(t, "$12,345.68", monthlyText(true, false, dec("12345.678")))
}
