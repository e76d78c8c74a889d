package tui

import (
	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/importer"
)

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProjectionsReadyMsg carries the projected client list
type ProjectionsReadyMsg struct {
	Result *compare.BatchResult
	Issues []importer.RowIssue
}

// ReloadMsg asks the model to read the source again
type ReloadMsg struct{}
