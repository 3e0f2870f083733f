// Package diagbuild provides the diagnostic builder API: construct a
// message, attach labeled spans and rich content, then Finish it into
// the accumulator.
package diagbuild

import (
	"ffanalyze/internal/model"
)

// Builder accumulates diagnostics across an analysis run. Not safe for
// concurrent use by multiple goroutines; each Analyze call owns its own
// Builder.
type Builder struct {
	diags []model.Diagnostic
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Message is an in-progress diagnostic. Call Target/Reference/
// Suggestion/Rich to attach content, then Finish to commit it.
type Message struct {
	b    *Builder
	diag model.Diagnostic
}

// New opens a new message with the given code, severity, and headline.
func (b *Builder) New(code string, severity model.Severity, message string) *Message {
	return &Message{b: b, diag: model.Diagnostic{Code: code, Severity: severity, Message: message}}
}

func (m *Message) attach(role model.SpanRole, msg string, span model.Span) *Message {
	clamped, ok := span.Clamp()
	if !ok {
		m.b.diags = append(m.b.diags, clampHint(m.diag.Code, span, clamped))
	}
	m.diag.Spans = append(m.diag.Spans, model.LabeledSpan{Role: role, Message: msg, Span: clamped})
	return m
}

// Target attaches the primary offending span.
func (m *Message) Target(span model.Span, msg string) *Message {
	return m.attach(model.SpanRole{Kind: model.RoleTarget}, msg, span)
}

// Reference attaches a supporting-context span.
func (m *Message) Reference(span model.Span, msg string) *Message {
	return m.attach(model.SpanRole{Kind: model.RoleReference}, msg, span)
}

// Suggestion attaches a proposed-edit span with an optional replacement
// literal.
func (m *Message) Suggestion(span model.Span, msg, replacement string) *Message {
	return m.attach(model.SpanRole{Kind: model.RoleSuggestion, Replacement: replacement}, msg, span)
}

// Rich attaches the message's auxiliary display payload.
func (m *Message) Rich(blocks ...model.RichBlock) *Message {
	if m.diag.Rich == nil {
		m.diag.Rich = &model.RichPayload{}
	}
	m.diag.Rich.Blocks = append(m.diag.Rich.Blocks, blocks...)
	return m
}

// Finish commits the message to the builder's accumulator. A message
// with no Target span is dropped silently, per the builder's invariant
// that every emitted message has ≥1 Target span: there is no span left
// to attach an explanatory Hint to, so emitting one would itself
// violate the invariant it exists to guard.
func (m *Message) Finish() {
	if _, ok := m.diag.Target(); !ok {
		return
	}
	m.b.diags = append(m.b.diags, m.diag)
}

func clampHint(code string, original, clamped model.Span) model.Diagnostic {
	return model.Diagnostic{
		Code:     "H002",
		Severity: model.SeverityHint,
		Message:  "clamped ill-formed span while building " + code,
		Spans: []model.LabeledSpan{{
			Role: model.SpanRole{Kind: model.RoleTarget}, Message: "clamped span", Span: clamped,
		}},
	}
}

// Diagnostics returns the accumulated messages in the order they were
// added. It does not sort them; ffanalyze.Analyze applies the
// Diagnostics-ordering invariant after offset mapping.
func (b *Builder) Diagnostics() []model.Diagnostic {
	return b.diags
}

// Append adds pre-built diagnostics (e.g. from the parser or stream
// inference) directly into the accumulator.
func (b *Builder) Append(diags ...model.Diagnostic) {
	b.diags = append(b.diags, diags...)
}
