// Package tui is the live-diagnostics viewer: a split list/detail view
// over the messages produced by the most recent Analyze call, with an
// optional watch mode that re-analyzes a file on every write.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ffanalyze/internal/model"
)

// AppModel holds the TUI state.
type AppModel struct {
	FilePath string
	Content  string

	Diagnostics []model.Diagnostic
	Loading     bool
	Err         error

	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Detail scrolls the selected diagnostic's body, which can run long
	// once rich Markdown tables are inlined.
	Detail viewport.Model

	Watching bool
}

// InitialModel returns the initial state for the given file.
func InitialModel(filePath string, watching bool) AppModel {
	return AppModel{
		FilePath: filePath,
		Loading:  true,
		Watching: watching,
		Detail:   viewport.New(0, 0),
	}
}

// MsgAnalysisReady carries a fresh analysis result into the model.
type MsgAnalysisReady struct {
	Content     string
	Diagnostics []model.Diagnostic
}

// MsgError carries a fatal error (e.g. file unreadable) into the model.
type MsgError struct{ Err error }

// MsgFileChanged signals the watcher observed a write to FilePath.
type MsgFileChanged struct{}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
