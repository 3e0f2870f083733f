// Package model holds the data types shared across the analyzer: source
// spans, diagnostics, the command AST, and the stream environment.
package model

// Span is a half-open source region. Lines are 1-based, columns are
// 0-based, and the end column is exclusive.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Zero reports whether s is the unset span.
func (s Span) Zero() bool {
	return s == Span{}
}

// WellFormed reports whether s obeys the builder's invariants.
func (s Span) WellFormed() bool {
	if s.StartLine < 1 || s.EndLine < 1 {
		return false
	}
	if s.StartColumn < 0 || s.EndColumn < 0 {
		return false
	}
	if s.EndLine < s.StartLine {
		return false
	}
	if s.EndLine == s.StartLine && s.EndColumn < s.StartColumn {
		return false
	}
	return true
}

// Clamp returns a well-formed version of s, fixing inverted or negative
// bounds in place. ok is false when clamping had to change anything.
func (s Span) Clamp() (Span, bool) {
	out := s
	ok := true
	if out.StartLine < 1 {
		out.StartLine = 1
		ok = false
	}
	if out.EndLine < out.StartLine {
		out.EndLine = out.StartLine
		ok = false
	}
	if out.StartColumn < 0 {
		out.StartColumn = 0
		ok = false
	}
	if out.EndColumn < out.StartColumn {
		if out.EndLine == out.StartLine {
			out.EndColumn = out.StartColumn
			ok = false
		} else if out.EndColumn < 0 {
			out.EndColumn = 0
			ok = false
		}
	}
	return out, ok
}

// Severity is a diagnostic severity level.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// Weight orders severities for sorting: Error first, Hint last.
func (s Severity) Weight() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	case SeverityHint:
		return 3
	default:
		return 4
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	case SeverityHint:
		return "Hint"
	default:
		return "Unknown"
	}
}

// SpanRoleKind tags the variant of a SpanRole.
type SpanRoleKind int

const (
	RoleTarget SpanRoleKind = iota
	RoleReference
	RoleSuggestion
)

func (k SpanRoleKind) String() string {
	switch k {
	case RoleTarget:
		return "Target"
	case RoleReference:
		return "Reference"
	case RoleSuggestion:
		return "Suggestion"
	default:
		return "Unknown"
	}
}

// SpanRole is the discriminated union {Target, Reference, Suggestion}.
// Suggestion carries an optional replacement literal.
type SpanRole struct {
	Kind        SpanRoleKind
	Replacement string // only meaningful when Kind == RoleSuggestion
}

// LabeledSpan attaches a role and message to a span.
type LabeledSpan struct {
	Role    SpanRole
	Message string
	Span    Span
}

// RichBlockKind tags the variant of a RichBlock.
type RichBlockKind int

const (
	RichMarkdownGfm RichBlockKind = iota
	RichMermaid
)

// RichBlock is one block of a RichPayload: either a Markdown or a
// Mermaid fragment.
type RichBlock struct {
	Kind     RichBlockKind
	Markdown string // set when Kind == RichMarkdownGfm
	Mermaid  string // set when Kind == RichMermaid
}

// RichPayload is an ordered list of auxiliary display blocks. It never
// affects analysis outcomes.
type RichPayload struct {
	Blocks []RichBlock
}

// Diagnostic is one analyzer finding.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	Spans    []LabeledSpan
	Rich     *RichPayload
}

// Target returns the diagnostic's first Target span, which every
// well-formed Diagnostic must have exactly one or more of.
func (d Diagnostic) Target() (Span, bool) {
	for _, s := range d.Spans {
		if s.Role.Kind == RoleTarget {
			return s.Span, true
		}
	}
	return Span{}, false
}

// Diagnostics is the response: an ordered list of messages.
type Diagnostics struct {
	Messages []Diagnostic
}
