package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ffanalyze/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorColor    = lipgloss.Color("203")
	warningColor  = lipgloss.Color("214")
	infoColor     = lipgloss.Color("81")
	hintColor     = lipgloss.Color("240")
	borderColor   = lipgloss.Color("63")
)

func severityColor(s model.Severity) lipgloss.Color {
	switch s {
	case model.SeverityError:
		return errorColor
	case model.SeverityWarning:
		return warningColor
	case model.SeverityInfo:
		return infoColor
	default:
		return hintColor
	}
}

// panelDims computes the left (list) and right (detail) panel widths
// and the shared interior height from the terminal size, falling back
// to a sane default before the first WindowSizeMsg arrives.
func panelDims(ws tea.WindowSizeMsg) (leftWidth, rightWidth, interiorHeight int) {
	width := ws.Width
	height := ws.Height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth = netWidth / 3
	rightWidth = netWidth - leftWidth

	boxHeight := height - 5
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight = boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}
	return leftWidth, rightWidth, interiorHeight
}

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Analyzing " + m.FilePath + " ...\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	leftWidth, rightWidth, interiorHeight := panelDims(m.WindowSize)

	left := m.renderList(leftWidth, interiorHeight)
	right := m.renderDetail()

	leftBox := lipgloss.NewStyle().
		Width(leftWidth).Height(interiorHeight).
		Border(lipgloss.NormalBorder()).BorderForeground(borderColor).
		Render(left)
	rightBox := lipgloss.NewStyle().
		Width(rightWidth).Height(interiorHeight).
		Border(lipgloss.NormalBorder()).BorderForeground(borderColor).
		Render(right)

	watchNote := ""
	if m.Watching {
		watchNote = " (watching for changes)"
	}
	footer := fmt.Sprintf("\n%s%s\nHelp: ↑/↓ navigate • pgup/pgdn scroll detail • r: re-analyze • q: quit", m.FilePath, watchNote)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox) + footer
}

func (m AppModel) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Diagnostics (%d)", len(m.Diagnostics))))
	b.WriteString("\n\n")

	if len(m.Diagnostics) == 0 {
		b.WriteString(dimStyle.Render("No issues found."))
		return b.String()
	}

	for i, d := range m.Diagnostics {
		line := fmt.Sprintf("%s %s", SeverityIcon(d.Severity), d.Code)
		if len(line) > width-2 {
			line = line[:width-2]
		}
		style := lipgloss.NewStyle().Foreground(severityColor(d.Severity))
		if i == m.SelectedIdx {
			style = selectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// detailBody renders the selected diagnostic's full text: headline,
// every labeled span, and any rich blocks. It is the scrollable content
// of m.Detail, kept in sync by refreshDetail.
func detailBody(m AppModel) string {
	if len(m.Diagnostics) == 0 || m.SelectedIdx >= len(m.Diagnostics) {
		return dimStyle.Render("Select a diagnostic to see details.")
	}

	var b strings.Builder
	d := m.Diagnostics[m.SelectedIdx]
	b.WriteString(fmt.Sprintf("%s %s: %s\n\n", SeverityIcon(d.Severity), d.Code, d.Message))

	for _, s := range d.Spans {
		b.WriteString(fmt.Sprintf("  %s line %d, col %d-%d: %s\n",
			s.Role.Kind, s.Span.StartLine, s.Span.StartColumn, s.Span.EndColumn, s.Message))
	}

	if d.Rich != nil {
		b.WriteString("\n")
		for _, block := range d.Rich.Blocks {
			switch block.Kind {
			case model.RichMarkdownGfm:
				b.WriteString(block.Markdown)
				b.WriteString("\n")
			case model.RichMermaid:
				b.WriteString(dimStyle.Render("[diagram omitted in terminal view]\n"))
			}
		}
	}

	return b.String()
}

func (m AppModel) renderDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Detail"))
	b.WriteString("\n\n")
	b.WriteString(m.Detail.View())
	return b.String()
}
