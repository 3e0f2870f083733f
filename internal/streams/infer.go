// Package streams infers a StreamEnvironment for a command's inputs
// from filename extensions alone, per the no-file-introspection
// constraint: no input is ever opened or probed.
package streams

import (
	"path/filepath"
	"strings"

	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/model"
)

// Infer derives the StreamEnvironment for cmd's inputs against db.
// Inputs whose extension is unrecognized default to {video, audio} and
// produce an Info diagnostic on the input path's span.
func Infer(cmd *model.Command, db *knowledge.DB) (model.StreamEnvironment, []model.Diagnostic) {
	var env model.StreamEnvironment
	var diags []model.Diagnostic

	for _, in := range cmd.Inputs {
		kinds := kindsForPath(in.Path, db)
		if kinds == nil {
			kinds = []model.StreamKind{model.KindVideo, model.KindAudio}
			diags = append(diags, unknownExtensionInfo(in))
		}
		streams := streamsFromKinds(len(env.ByInput), kinds)
		env.ByInput = append(env.ByInput, streams)
	}

	return env, diags
}

func kindsForPath(path string, db *knowledge.DB) []model.StreamKind {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil
	}
	return db.KindsForExtension(ext)
}

// streamsFromKinds assigns one symbolic Stream per kind present for the
// given input index. Each kind gets a single stream (index 0 within
// kind): the analyzer does not attempt to infer multiplicity (e.g. two
// audio tracks) from a filename alone.
func streamsFromKinds(inputIndex int, kinds []model.StreamKind) []model.Stream {
	out := make([]model.Stream, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, model.Stream{Kind: k, InputIndex: inputIndex, IndexWithinKind: 0})
	}
	return out
}

func unknownExtensionInfo(in model.InputSpec) model.Diagnostic {
	msg := "could not infer stream types for \"" + in.Path + "\"; defaulting to video+audio"
	return model.Diagnostic{
		Code:     "I001",
		Severity: model.SeverityInfo,
		Message:  msg,
		Spans: []model.LabeledSpan{{
			Role: model.SpanRole{Kind: model.RoleTarget}, Message: msg, Span: in.PathSpan,
		}},
	}
}
