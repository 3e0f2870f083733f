// Package wire defines the JSON request/response shapes the analyzer
// exposes to external callers (the editor shell, a transport adaptor,
// or this repository's own demo web server), including the flat
// discriminated-union encoding used for Severity, SpanRole, and
// RichBlock.
package wire

import "ffanalyze/internal/model"

// Request mirrors the external Request shape.
type Request struct {
	Content      string  `json:"content"`
	FilePath     *string `json:"file_path"`
	LineOffset   int     `json:"line_offset"`
	ColumnOffset int     `json:"column_offset"`
}

// Response mirrors the external Response shape.
type Response struct {
	Messages []Message `json:"messages"`
}

// Severity is the flat {"type": "..."} wire encoding of model.Severity.
type Severity struct {
	Type string `json:"type"`
}

// SpanRole is the flat wire encoding of model.SpanRole; Replacement is
// only present for the Suggestion variant.
type SpanRole struct {
	Type        string `json:"type"`
	Replacement string `json:"replacement,omitempty"`
}

// Span is the wire encoding of model.Span.
type Span struct {
	StartLine   int `json:"start_line"`
	StartColumn int `json:"start_column"`
	EndLine     int `json:"end_line"`
	EndColumn   int `json:"end_column"`
}

// LabeledSpan is the wire encoding of model.LabeledSpan.
type LabeledSpan struct {
	Role    SpanRole `json:"role"`
	Message string   `json:"message"`
	Span    Span     `json:"span"`
}

// RichBlock is the flat wire encoding of model.RichBlock: either
// {"type": "MarkdownGfm", "markdown": ...} or {"type": "Mermaid",
// "mermaid": ...}.
type RichBlock struct {
	Type     string `json:"type"`
	Markdown string `json:"markdown,omitempty"`
	Mermaid  string `json:"mermaid,omitempty"`
}

// RichPayload is the wire encoding of model.RichPayload.
type RichPayload struct {
	Blocks []RichBlock `json:"blocks"`
}

// Message is the wire encoding of model.Diagnostic.
type Message struct {
	Code     string        `json:"code"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Spans    []LabeledSpan `json:"spans"`
	Rich     *RichPayload  `json:"rich,omitempty"`
}

// FromDiagnostics converts the internal Diagnostics response into its
// wire form.
func FromDiagnostics(d model.Diagnostics) Response {
	resp := Response{Messages: make([]Message, len(d.Messages))}
	for i, m := range d.Messages {
		resp.Messages[i] = fromDiagnostic(m)
	}
	return resp
}

func fromDiagnostic(m model.Diagnostic) Message {
	out := Message{
		Code:     m.Code,
		Severity: Severity{Type: m.Severity.String()},
		Message:  m.Message,
		Spans:    make([]LabeledSpan, len(m.Spans)),
	}
	for i, s := range m.Spans {
		out.Spans[i] = fromLabeledSpan(s)
	}
	if m.Rich != nil {
		out.Rich = fromRichPayload(m.Rich)
	}
	return out
}

func fromLabeledSpan(s model.LabeledSpan) LabeledSpan {
	return LabeledSpan{
		Role:    fromSpanRole(s.Role),
		Message: s.Message,
		Span:    fromSpan(s.Span),
	}
}

func fromSpanRole(r model.SpanRole) SpanRole {
	return SpanRole{Type: r.Kind.String(), Replacement: r.Replacement}
}

func fromSpan(s model.Span) Span {
	return Span{StartLine: s.StartLine, StartColumn: s.StartColumn, EndLine: s.EndLine, EndColumn: s.EndColumn}
}

func fromRichPayload(p *model.RichPayload) *RichPayload {
	out := &RichPayload{Blocks: make([]RichBlock, len(p.Blocks))}
	for i, b := range p.Blocks {
		switch b.Kind {
		case model.RichMarkdownGfm:
			out.Blocks[i] = RichBlock{Type: "MarkdownGfm", Markdown: b.Markdown}
		case model.RichMermaid:
			out.Blocks[i] = RichBlock{Type: "Mermaid", Mermaid: b.Mermaid}
		}
	}
	return out
}
