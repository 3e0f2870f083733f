// Package ffanalyze is a real-time static analyzer for FFmpeg
// command-line invocations. Analyze performs no I/O and its result
// depends only on its arguments. Besides the read-only knowledge base
// initialized once at first use, the only process-wide state it touches
// is the Prometheus collectors in internal/metrics, which every call
// updates. It is safe to call concurrently from independent callers.
package ffanalyze

import (
	"sort"
	"time"

	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/metrics"
	"ffanalyze/internal/model"
	"ffanalyze/internal/offsetmap"
	"ffanalyze/internal/parser"
	"ffanalyze/internal/semantic"
	"ffanalyze/internal/streams"
)

// Analyze parses and analyzes content as a single FFmpeg command line,
// returning every diagnostic found. line_offset is the 1-based absolute
// line that content's internal line 1 corresponds to; column_offset is
// added to columns on content's internal line 1 only. filePath is
// informational and does not affect analysis (the analyzer never opens
// or reads it). A blank or comment-only input yields an empty
// Diagnostics.
func Analyze(content string, filePath *string, lineOffset, columnOffset int) model.Diagnostics {
	_ = filePath // not consulted: stream inference uses each -i path's own extension, never the host file
	start := time.Now()

	cmd, diags := parser.Parse(content)
	if cmd != nil {
		db := knowledge.Default()
		env, streamDiags := streams.Infer(cmd, db)
		diags = append(diags, streamDiags...)
		diags = append(diags, semantic.Analyze(cmd, env, db)...)
	}

	diags = offsetmap.Map(diags, lineOffset, columnOffset)
	sortDiagnostics(diags)
	metrics.Observe(time.Since(start), cmd != nil, diags)
	return model.Diagnostics{Messages: diags}
}

// sortDiagnostics applies the Diagnostics-ordering invariant: source
// order (by each message's first Target span), ties broken by severity
// weight, remaining ties broken by the stable original order.
func sortDiagnostics(diags []model.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		si, _ := diags[i].Target()
		sj, _ := diags[j].Target()
		if si.StartLine != sj.StartLine {
			return si.StartLine < sj.StartLine
		}
		if si.StartColumn != sj.StartColumn {
			return si.StartColumn < sj.StartColumn
		}
		return diags[i].Severity.Weight() < diags[j].Severity.Weight()
	})
}
