package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/importer"
)

// Loader reads the client profiles shown by the browser
type Loader func() ([]domain.ContributorProfile, []importer.RowIssue, error)

// Pane identifies which table receives navigation keys
type Pane int

const (
	PaneClients Pane = iota
	PaneQuotes
)

// Model represents the entire application state
type Model struct {
	source string
	engine *calculation.Engine
	load   Loader
	keys   keyMap

	// Terminal dimensions
	width  int
	height int

	// Tables
	clients table.Model
	quotes  table.Model
	focus   Pane

	// Data
	result   *compare.BatchResult
	issues   []importer.RowIssue
	selected int

	showHelp bool

	// Error state
	err error

	// Loading state
	loading bool
}

var clientColumns = []table.Column{
	{Title: "Client", Width: 24},
	{Title: "Age", Width: 4},
	{Title: "Monthly", Width: 14},
	{Title: "Gain", Width: 12},
}

var quoteColumns = []table.Column{
	{Title: "Age", Width: 4},
	{Title: "Weeks", Width: 7},
	{Title: "Avg wage", Width: 11},
	{Title: "Monthly", Width: 14},
	{Title: "Without M40", Width: 14},
	{Title: "Gain", Width: 12},
}

// NewModel creates a new application model
func NewModel(source string, engine *calculation.Engine, load Loader) Model {
	clients := table.New(
		table.WithColumns(clientColumns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	quotes := table.New(
		table.WithColumns(quoteColumns),
		table.WithHeight(10),
	)
	return Model{
		source:  source,
		engine:  engine,
		load:    load,
		keys:    defaultKeyMap(),
		clients: clients,
		quotes:  quotes,
		focus:   PaneClients,
		width:   80,
		height:  24,
		loading: true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return projectCmd(m.source, m.engine, m.load)
}

// projectCmd loads the clients and projects each of them
func projectCmd(source string, engine *calculation.Engine, load Loader) tea.Cmd {
	return func() tea.Msg {
		if load == nil || engine == nil {
			return ErrorMsg{Err: fmt.Errorf("no client source configured")}
		}
		profiles, issues, err := load()
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load %s: %w", source, err)}
		}
		result, err := compare.NewCompareEngine(engine).CompareProfiles(context.Background(), profiles)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		result.Source = source
		return ProjectionsReadyMsg{Result: result, Issues: issues}
	}
}

// Selected returns the projection of the highlighted client
func (m Model) Selected() (*domain.Projection, bool) {
	if m.result == nil || m.selected < 0 || m.selected >= len(m.result.Projections) {
		return nil, false
	}
	return m.result.Projections[m.selected], true
}

// Focus returns the pane that receives navigation keys
func (m Model) Focus() Pane {
	return m.focus
}

// Err returns the last error reported to the model
func (m Model) Err() error {
	return m.err
}
