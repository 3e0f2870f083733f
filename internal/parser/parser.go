// Package parser builds a Command AST from a tokenized FFmpeg command
// line, recovering from unknown flags rather than aborting.
package parser

import (
	"ffanalyze/internal/lexer"
	"ffanalyze/internal/model"
)

// Parse tokenizes and parses content into a Command. On structural
// failure (no leading "ffmpeg", or no input/output sections at all) it
// returns a single structural diagnostic alongside whatever partial AST
// could be recovered; it never panics.
func Parse(content string) (*model.Command, []model.Diagnostic) {
	toks := lexer.All(content)
	if len(toks) == 0 {
		return nil, nil
	}

	p := &parser{toks: toks}

	if toks[0].Text != "ffmpeg" {
		return nil, []model.Diagnostic{structuralError(toks[0].Span, "command does not begin with \"ffmpeg\"")}
	}
	p.pos = 1

	cmd := &model.Command{}
	cmd.GlobalOpts = p.parseLeadingOptions()
	cmd.Inputs = p.parseInputs()
	cmd.Outputs = p.parseOutputs()

	hasStructural := func() bool {
		for _, d := range p.diags {
			if d.Code == "E000" {
				return true
			}
		}
		return false
	}
	if len(cmd.Inputs) == 0 && !hasStructural() {
		p.diags = append(p.diags, structuralError(toks[0].Span, "command has no \"-i\" input"))
	}
	if len(cmd.Outputs) == 0 && !hasStructural() {
		p.diags = append(p.diags, structuralError(toks[len(toks)-1].Span, "command has no output path"))
	}

	cmd.Span = model.Span{
		StartLine: toks[0].Span.StartLine, StartColumn: toks[0].Span.StartColumn,
		EndLine: toks[len(toks)-1].Span.EndLine, EndColumn: toks[len(toks)-1].Span.EndColumn,
	}

	return cmd, p.diags
}

func structuralError(span model.Span, msg string) model.Diagnostic {
	return model.Diagnostic{
		Code:     "E000",
		Severity: model.SeverityError,
		Message:  msg,
		Spans: []model.LabeledSpan{{
			Role: model.SpanRole{Kind: model.RoleTarget}, Message: msg, Span: span,
		}},
	}
}

type parser struct {
	toks  []lexer.Token
	pos   int
	diags []model.Diagnostic
}

func (p *parser) cur() (lexer.Token, bool) {
	if p.pos >= len(p.toks) {
		return lexer.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) isFlag(t lexer.Token) bool {
	return len(t.Text) > 1 && t.Text[0] == '-' && !t.Quoted
}

// parseLeadingOptions consumes global options up to (not including) the
// first "-i".
func (p *parser) parseLeadingOptions() []model.Option {
	var opts []model.Option
	for {
		t, ok := p.cur()
		if !ok || !p.isFlag(t) || t.Text == "-i" {
			return opts
		}
		opts = append(opts, p.consumeOption())
	}
}

// parseInputs consumes one or more `input_opt* "-i" path` blocks. It
// stops (without consuming) as soon as a run of leading options is not
// followed by "-i" — that run belongs to the first output instead.
func (p *parser) parseInputs() []model.InputSpec {
	var inputs []model.InputSpec
	for {
		start := p.pos
		startDiags := len(p.diags)
		var opts []model.Option
		for {
			t, ok := p.cur()
			if !ok || !p.isFlag(t) || t.Text == "-i" {
				break
			}
			opts = append(opts, p.consumeOption())
		}
		t, ok := p.cur()
		if !ok || t.Text != "-i" {
			p.pos = start
			p.diags = p.diags[:startDiags]
			return inputs
		}
		iTok := t
		p.pos++ // consume "-i"

		pathTok, ok := p.cur()
		if !ok {
			p.diags = append(p.diags, structuralError(iTok.Span, "\"-i\" has no path"))
			return inputs
		}
		p.pos++

		inputs = append(inputs, model.InputSpec{
			Options:  opts,
			Path:     pathTok.Text,
			PathSpan: pathTok.Span,
			Span: model.Span{
				StartLine: iTok.Span.StartLine, StartColumn: iTok.Span.StartColumn,
				EndLine: pathTok.Span.EndLine, EndColumn: pathTok.Span.EndColumn,
			},
		})
	}
}

// parseOutputs consumes one or more `output_opt* path` blocks until
// tokens are exhausted.
func (p *parser) parseOutputs() []model.OutputSpec {
	var outs []model.OutputSpec
	for {
		t, ok := p.cur()
		if !ok {
			return outs
		}
		var opts []model.Option
		for p.isFlag(t) {
			opts = append(opts, p.consumeOption())
			t, ok = p.cur()
			if !ok {
				if len(opts) > 0 {
					p.diags = append(p.diags, structuralError(opts[len(opts)-1].FlagSpan, "trailing options with no output path"))
				}
				return outs
			}
		}
		pathTok := t
		p.pos++
		outs = append(outs, model.OutputSpec{
			Options:  opts,
			Path:     pathTok.Text,
			PathSpan: pathTok.Span,
			Span:     pathTok.Span,
		})
	}
}

// consumeOption consumes the flag token at the current position plus
// its value (if the flag takes one and a value token is available).
func (p *parser) consumeOption() model.Option {
	flagTok := p.toks[p.pos]
	p.pos++

	base, sel := splitSelector(flagTok.Text)
	info, known := flagTable[base]

	opt := model.Option{
		Raw:      flagTok.Text,
		FlagSpan: flagTok.Span,
		Selector: sel,
	}

	if !known {
		opt.Kind = model.OptGeneric
		p.diags = append(p.diags, model.Diagnostic{
			Code:     "E501",
			Severity: model.SeverityWarning,
			Message:  "unrecognized option \"" + flagTok.Text + "\"",
			Spans: []model.LabeledSpan{{
				Role: model.SpanRole{Kind: model.RoleTarget}, Message: "unrecognized option", Span: flagTok.Span,
			}},
		})
		return opt
	}

	opt.Kind = resolveSelectorKind(base, info.kind, sel)

	if info.takesValue {
		valTok, ok := p.cur()
		if ok && !p.isFlag(valTok) {
			opt.HasValue = true
			opt.Value = valTok.Text
			opt.ValueSpan = valTok.Span
			p.pos++
		}
	}
	return opt
}
