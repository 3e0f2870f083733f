// Package offsetmap rewrites spans computed against the internal
// command buffer into editor-absolute line/column coordinates, per the
// caller-supplied line/column offsets.
package offsetmap

import "ffanalyze/internal/model"

// Map rewrites every span across diags in place (on copies; the input
// slice is not mutated) using lineOffset (the 1-based absolute line
// that internal line 1 maps to) and columnOffset (added to columns on
// internal line 1 only).
func Map(diags []model.Diagnostic, lineOffset, columnOffset int) []model.Diagnostic {
	out := make([]model.Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = mapDiagnostic(d, lineOffset, columnOffset)
	}
	return out
}

func mapDiagnostic(d model.Diagnostic, lineOffset, columnOffset int) model.Diagnostic {
	spans := make([]model.LabeledSpan, len(d.Spans))
	for i, s := range d.Spans {
		s.Span = MapSpan(s.Span, lineOffset, columnOffset)
		spans[i] = s
	}
	d.Spans = spans
	return d
}

// MapSpan applies the offset-mapping rule to a single span:
// out_line = line_offset + (in_line - 1); out_column = in_column +
// column_offset when in_line == 1, else in_column unchanged.
func MapSpan(s model.Span, lineOffset, columnOffset int) model.Span {
	out := s
	out.StartLine = lineOffset + (s.StartLine - 1)
	out.EndLine = lineOffset + (s.EndLine - 1)
	if s.StartLine == 1 {
		out.StartColumn = s.StartColumn + columnOffset
	}
	if s.EndLine == 1 {
		out.EndColumn = s.EndColumn + columnOffset
	}
	return out
}
