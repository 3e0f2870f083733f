package semantic

import (
	"fmt"
	"strconv"
	"strings"

	"ffanalyze/internal/model"
	"ffanalyze/internal/richtemplate"
)

// passB checks that every output option's implied stream-kind
// requirement is satisfiable against the streams actually available to
// that output (via -map targets, or all inputs when unmapped).
func (a *analysis) passB() {
	for _, out := range a.cmd.Outputs {
		available := a.availableKindsFor(out)
		refInput := a.bestReferenceInput(out)

		for _, o := range out.Options {
			wantKind, isFilter, relevant := requirementOf(o)
			if !relevant || available[wantKind] {
				continue
			}

			code, msg := missingStreamCode(wantKind, isFilter, o)
			m := a.b.New(code, model.SeverityError, msg).Target(o.FlagSpan, msg)
			if refInput >= 0 {
				m = m.Reference(a.cmd.Inputs[refInput].PathSpan, "this input")
			}
			if isFilter && refInput >= 0 {
				m = m.Rich(richtemplate.StreamKindMismatch(a.env, refInput, wantKind).Blocks...)
			}
			m.Finish()
		}
	}
}

func requirementOf(o model.Option) (kind model.StreamKind, isFilter bool, relevant bool) {
	switch o.Kind {
	case model.OptVideoFilter:
		return model.KindVideo, true, true
	case model.OptAudioFilter:
		return model.KindAudio, true, true
	case model.OptVideoCodec, model.OptVideoBitrate, model.OptResolution, model.OptFrameRate:
		return model.KindVideo, false, true
	case model.OptAudioCodec, model.OptAudioBitrate, model.OptSampleRate, model.OptAudioChannels:
		return model.KindAudio, false, true
	default:
		return model.KindUnknown, false, false
	}
}

func missingStreamCode(kind model.StreamKind, isFilter bool, o model.Option) (code, msg string) {
	if isFilter {
		if kind == model.KindAudio {
			return "E102", fmt.Sprintf("audio filter %q used but the selected input has no audio stream", o.Raw)
		}
		return "E101", fmt.Sprintf("video filter %q used but the selected input has no video stream", o.Raw)
	}
	if kind == model.KindAudio {
		return "E105", "audio operation requested but no audio stream is available"
	}
	return "E104", "video operation requested but no video stream is available"
}

// availableKindsFor computes the stream kinds an output can draw on:
// the union across its -map targets if any are present, else the union
// across every declared input (ffmpeg's implicit "map everything"
// behavior).
func (a *analysis) availableKindsFor(out model.OutputSpec) map[model.StreamKind]bool {
	var maps []model.Option
	for _, o := range out.Options {
		if o.Kind == model.OptMap && o.HasValue {
			maps = append(maps, o)
		}
	}
	if len(maps) == 0 {
		return a.env.AllKinds()
	}

	available := make(map[model.StreamKind]bool)
	for _, o := range maps {
		if strings.HasPrefix(o.Value, "[") {
			continue // filter-complex label output; kind unknown, don't constrain
		}
		parts := strings.SplitN(o.Value, ":", 3)
		inputIdx, err := strconv.Atoi(parts[0])
		if err != nil || inputIdx < 0 || inputIdx >= a.env.NumInputs() {
			continue
		}
		if len(parts) >= 2 {
			if k := mapKind(parts[1]); k != model.KindUnknown {
				available[k] = true
				continue
			}
		}
		for k := range a.env.KindsOf(inputIdx) {
			available[k] = true
		}
	}
	return available
}

// bestReferenceInput picks the input to cite as Reference context: the
// sole input when there is exactly one, else the first -map target,
// else -1 (no single input is clearly "the" offending one).
func (a *analysis) bestReferenceInput(out model.OutputSpec) int {
	if len(a.cmd.Inputs) == 1 {
		return 0
	}
	for _, o := range out.Options {
		if o.Kind != model.OptMap || !o.HasValue || strings.HasPrefix(o.Value, "[") {
			continue
		}
		parts := strings.SplitN(o.Value, ":", 2)
		if idx, err := strconv.Atoi(parts[0]); err == nil && idx >= 0 && idx < a.env.NumInputs() {
			return idx
		}
	}
	return -1
}
