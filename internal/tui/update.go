package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"ffanalyze"
)

// Init kicks off the first analysis, and starts the file watcher if
// watch mode is enabled.
func (m AppModel) Init() tea.Cmd {
	if m.Watching {
		return tea.Batch(analyzeCmd(m.FilePath), watchCmd(m.FilePath))
	}
	return analyzeCmd(m.FilePath)
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		_, rightWidth, interiorHeight := panelDims(msg)
		m.Detail.Width = rightWidth
		m.Detail.Height = interiorHeight - 2 // minus the "Detail" title and blank line
		m.refreshDetail()
		return m, nil

	case MsgAnalysisReady:
		m.Loading = false
		m.Err = nil
		m.Content = msg.Content
		m.Diagnostics = msg.Diagnostics
		if m.SelectedIdx >= len(m.Diagnostics) {
			m.SelectedIdx = 0
		}
		m.refreshDetail()
		return m, nil

	case MsgError:
		m.Loading = false
		m.Err = msg.Err
		return m, nil

	case MsgFileChanged:
		return m, tea.Batch(analyzeCmd(m.FilePath), watchCmd(m.FilePath))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
			m.refreshDetail()
		case "down", "j":
			if m.SelectedIdx < len(m.Diagnostics)-1 {
				m.SelectedIdx++
			}
			m.refreshDetail()
		case "r":
			return m, analyzeCmd(m.FilePath)
		default:
			var cmd tea.Cmd
			m.Detail, cmd = m.Detail.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// refreshDetail re-syncs the detail viewport's content with the
// currently selected diagnostic, resetting the scroll position.
func (m *AppModel) refreshDetail() {
	m.Detail.SetContent(detailBody(*m))
	m.Detail.GotoTop()
}

func analyzeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := readFile(path)
		if err != nil {
			return MsgError{Err: err}
		}
		result := ffanalyze.Analyze(content, &path, 1, 0)
		return MsgAnalysisReady{Content: content, Diagnostics: result.Messages}
	}
}

// watchCmd blocks until fsnotify reports a write to path, then returns
// once. Update re-issues it after every fire to keep watching.
func watchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return MsgError{Err: err}
		}
		defer watcher.Close()

		if err := watcher.Add(path); err != nil {
			return MsgError{Err: err}
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return MsgFileChanged{}
				}
			case err, ok := <-watcher.Errors:
				if !ok || err == nil {
					continue
				}
				return MsgError{Err: err}
			}
		}
	}
}
