// Package semantic runs the multi-pass analysis described for the
// command AST: parameter validation, stream-type requirements,
// codec/container compatibility, and cross-option sanity. Each pass
// appends diagnostics to a shared accumulator; a failure in one pass
// never prevents the others from running.
package semantic

import (
	"path/filepath"
	"strings"

	"ffanalyze/internal/diagbuild"
	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/model"
)

type analysis struct {
	cmd *model.Command
	env model.StreamEnvironment
	db  *knowledge.DB
	b   *diagbuild.Builder
}

// Analyze runs Pass A through Pass D over cmd and returns every
// diagnostic they produce, unsorted (the caller sorts per the
// Diagnostics-ordering invariant).
func Analyze(cmd *model.Command, env model.StreamEnvironment, db *knowledge.DB) []model.Diagnostic {
	a := &analysis{cmd: cmd, env: env, db: db, b: diagbuild.New()}
	a.passA()
	a.passB()
	a.passC()
	a.passD()
	return a.b.Diagnostics()
}

// allOptions visits every option in the command: global, then each
// input's, then each output's, alongside the output index the option
// belongs to (-1 for global/input options).
func (a *analysis) allOptions(visit func(opt model.Option, outputIdx int)) {
	for _, o := range a.cmd.GlobalOpts {
		visit(o, -1)
	}
	for _, in := range a.cmd.Inputs {
		for _, o := range in.Options {
			visit(o, -1)
		}
	}
	for oi, out := range a.cmd.Outputs {
		for _, o := range out.Options {
			visit(o, oi)
		}
	}
}

// containerFor determines the output container for out, from an
// explicit "-f" option if present, else from the output path's
// extension.
func (a *analysis) containerFor(out model.OutputSpec) (*knowledge.Container, bool) {
	for _, o := range out.Options {
		if o.Kind == model.OptFormat && o.HasValue {
			return a.db.GetContainerByName(o.Value)
		}
	}
	ext := strings.TrimPrefix(filepath.Ext(out.Path), ".")
	if ext == "" {
		return nil, false
	}
	return a.db.GetContainerByExtension(ext)
}

// filterComplexLabels collects every "[label]" token declared across
// out's "-filter_complex" option values.
func filterComplexLabels(out model.OutputSpec) map[string]bool {
	labels := make(map[string]bool)
	for _, o := range out.Options {
		if o.Kind != model.OptFilterComplex || !o.HasValue {
			continue
		}
		v := o.Value
		for {
			start := strings.IndexByte(v, '[')
			if start < 0 {
				break
			}
			end := strings.IndexByte(v[start+1:], ']')
			if end < 0 {
				break
			}
			labels[v[start+1:start+1+end]] = true
			v = v[start+1+end+1:]
		}
	}
	return labels
}
