package tui

import "ffanalyze/internal/model"

// Centralized severity icons, single-width characters for consistent
// terminal rendering.
const (
	IconError   = "✗"
	IconWarning = "▲"
	IconInfo    = "●"
	IconHint    = "·"
)

// SeverityIcon returns the glyph for a diagnostic's severity.
func SeverityIcon(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return IconError
	case model.SeverityWarning:
		return IconWarning
	case model.SeverityInfo:
		return IconInfo
	case model.SeverityHint:
		return IconHint
	default:
		return " "
	}
}
