package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/importer"
	"github.com/rgehrsitz/ley73/internal/tui"
)

func main() {
	// Get client file path from arguments
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		fmt.Println("Usage: ley73-tui <clients.xlsx|profile.yaml>")
		os.Exit(1)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("Error: file not found: %s\n", path)
		os.Exit(1)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	parser := config.NewInputParser()
	constants, err := parser.ResolveConstants(settings.ConstantsFile, settings.Year)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// The engine logs nothing here; the alternate screen owns the terminal.
	engine := calculation.NewEngine(constants)
	load := func() ([]domain.ContributorProfile, []importer.RowIssue, error) {
		return importer.LoadProfiles(path, parser)
	}

	p := tea.NewProgram(
		tui.NewModel(path, engine, load),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
