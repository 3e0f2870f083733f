package semantic

import (
	"fmt"
	"strconv"
	"strings"

	"ffanalyze/internal/model"
	"ffanalyze/internal/richtemplate"
)

const (
	videoBitrateWarnBPS = 50_000_000
	audioBitrateWarnBPS = 2_000_000
	maxDimension        = 16384
	minSampleRate       = 8000
	maxSampleRate       = 192000
	minChannels         = 1
	maxChannels         = 8
)

// passA validates each option's value against its parameter grammar.
func (a *analysis) passA() {
	a.allOptions(func(o model.Option, outputIdx int) {
		switch o.Kind {
		case model.OptResolution:
			a.checkResolution(o)
		case model.OptVideoBitrate:
			a.checkBitrate(o, model.KindVideo)
		case model.OptAudioBitrate:
			a.checkBitrate(o, model.KindAudio)
		case model.OptFrameRate:
			a.checkFrameRate(o)
		case model.OptSampleRate:
			a.checkSampleRate(o)
		case model.OptAudioChannels:
			a.checkChannels(o)
		case model.OptVideoCodec:
			a.checkCodec(o, model.KindVideo)
		case model.OptAudioCodec:
			a.checkCodec(o, model.KindAudio)
		case model.OptVideoFilter:
			a.checkFilterChain(o, model.KindVideo)
		case model.OptAudioFilter:
			a.checkFilterChain(o, model.KindAudio)
		case model.OptMap:
			a.checkMap(o, outputIdx)
		}
	})
}

func (a *analysis) checkResolution(o model.Option) {
	if !o.HasValue {
		return
	}
	w, h, ok := parseResolution(o.Value)
	if !ok || w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		msg := fmt.Sprintf("malformed resolution %q: expected WIDTHxHEIGHT with each dimension in 1..%d", o.Value, maxDimension)
		a.b.New("E401", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkBitrate(o model.Option, kind model.StreamKind) {
	if !o.HasValue {
		return
	}
	bps, ok := parseBitrate(o.Value)
	if !ok {
		msg := fmt.Sprintf("malformed bitrate %q: expected digits optionally suffixed by k|K|M|m", o.Value)
		a.b.New("E402", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
		return
	}
	threshold := videoBitrateWarnBPS
	if kind == model.KindAudio {
		threshold = audioBitrateWarnBPS
	}
	if bps > float64(threshold) {
		msg := fmt.Sprintf("bitrate %q exceeds the soft %s threshold", o.Value, kind)
		a.b.New("W101", model.SeverityWarning, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkFrameRate(o model.Option) {
	if !o.HasValue {
		return
	}
	fps, ok := parseFrameRate(o.Value)
	if !ok || fps <= 0 {
		msg := fmt.Sprintf("malformed frame rate %q: expected a positive integer, decimal, or A/B rational", o.Value)
		a.b.New("E403", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkSampleRate(o model.Option) {
	if !o.HasValue {
		return
	}
	n, ok := parsePositiveInt(o.Value)
	if !ok || n <= 0 {
		msg := fmt.Sprintf("malformed sample rate %q: expected a positive integer", o.Value)
		a.b.New("E401", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
		return
	}
	if n < minSampleRate || n > maxSampleRate {
		msg := fmt.Sprintf("sample rate %d outside the typical [%d, %d] Hz range", n, minSampleRate, maxSampleRate)
		a.b.New("W102", model.SeverityWarning, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkChannels(o model.Option) {
	if !o.HasValue {
		return
	}
	n, ok := parsePositiveInt(o.Value)
	if !ok || n < minChannels || n > maxChannels {
		msg := fmt.Sprintf("malformed channel count %q: expected an integer in %d..%d", o.Value, minChannels, maxChannels)
		a.b.New("E404", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkCodec(o model.Option, slot model.StreamKind) {
	if !o.HasValue || strings.EqualFold(o.Value, "copy") {
		return
	}
	codec, ok := a.db.GetCodec(o.Value)
	if !ok {
		msg := fmt.Sprintf("unknown codec %q", o.Value)
		a.b.New("W201", model.SeverityWarning, msg).
			Target(o.ValueSpan, msg).
			Finish()
		return
	}
	if codec.Kind != model.KindUnknown && codec.Kind != slot {
		msg := fmt.Sprintf("%s codec %q used in a %s slot", codec.Kind, o.Value, slot)
		a.b.New("E205", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
	}
}

func (a *analysis) checkFilterChain(o model.Option, flagKind model.StreamKind) {
	if !o.HasValue {
		return
	}
	for _, f := range parseFilterChain(o.Value, o.ValueSpan) {
		entry, ok := a.db.GetFilter(f.Name)
		if !ok {
			msg := fmt.Sprintf("unknown filter %q", f.Name)
			known := knownFilterNames(a, flagKind)
			a.b.New("E502", model.SeverityWarning, msg).
				Target(f.Span, msg).
				Rich(richtemplate.UnknownFilter(a.db, f.Name, flagKind, known).Blocks...).
				Finish()
			continue
		}
		if entry.Kind != model.KindUnknown && entry.Kind != flagKind {
			code := "E101"
			if flagKind == model.KindAudio {
				code = "E102"
			}
			msg := fmt.Sprintf("%s filter %q used in a %s filter chain", entry.Kind, f.Name, flagKind)
			a.b.New(code, model.SeverityError, msg).
				Target(f.Span, msg).
				Finish()
		}
	}
}

func knownFilterNames(a *analysis, kind model.StreamKind) []string {
	// internal/knowledge doesn't expose enumeration beyond lookup by
	// name; the catalog is small and fixed, so list it directly here
	// for the rich-content hint rather than adding an iteration API
	// that nothing else needs.
	candidates := []string{"scale", "crop", "rotate", "pad", "overlay", "transpose", "fps", "hflip", "vflip",
		"volume", "atempo", "highpass", "lowpass", "aresample", "pan"}
	var out []string
	for _, name := range candidates {
		if f, ok := a.db.GetFilter(name); ok && f.Kind == kind {
			out = append(out, name)
		}
	}
	return out
}

func (a *analysis) checkMap(o model.Option, outputIdx int) {
	if !o.HasValue {
		return
	}
	value := o.Value
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		label := value[1 : len(value)-1]
		if outputIdx < 0 {
			return
		}
		labels := filterComplexLabels(a.cmd.Outputs[outputIdx])
		if !labels[label] {
			msg := fmt.Sprintf("filter output label %q is not declared by any -filter_complex graph", label)
			a.b.New("E303", model.SeverityError, msg).
				Target(o.ValueSpan, msg).
				Finish()
		}
		return
	}

	parts := strings.SplitN(value, ":", 3)
	inputIdx, ok := parsePositiveIntAllowZero(parts[0])
	if !ok || inputIdx >= len(a.cmd.Inputs) {
		msg := fmt.Sprintf("-map references input #%s but only %d input(s) were declared", parts[0], len(a.cmd.Inputs))
		a.b.New("E301", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Finish()
		return
	}
	if len(parts) < 2 {
		return
	}
	kind := mapKind(parts[1])
	if kind == model.KindUnknown {
		return
	}
	if !a.env.HasKind(inputIdx, kind) {
		msg := fmt.Sprintf("-map references a %s stream on input #%d, which has none", kind, inputIdx)
		a.b.New("E301", model.SeverityError, msg).
			Target(o.ValueSpan, msg).
			Reference(a.cmd.Inputs[inputIdx].PathSpan, "this input").
			Finish()
		return
	}
	if len(parts) == 3 {
		idx, ok := parsePositiveIntAllowZero(parts[2])
		if !ok || idx != 0 {
			msg := fmt.Sprintf("-map references stream index %s of kind %s on input #%d, which only has index 0", parts[2], kind, inputIdx)
			a.b.New("E301", model.SeverityError, msg).
				Target(o.ValueSpan, msg).
				Finish()
		}
	}
}

func mapKind(s string) model.StreamKind {
	switch s {
	case "v":
		return model.KindVideo
	case "a":
		return model.KindAudio
	case "s":
		return model.KindSubtitle
	default:
		return model.KindUnknown
	}
}

func parsePositiveIntAllowZero(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseFilterChain splits a "-vf"/"-af" value on ',' into Filters, each
// further split on '=' for the name and on ':' for its parameters.
func parseFilterChain(value string, valueSpan model.Span) []model.Filter {
	var filters []model.Filter
	col := valueSpan.StartColumn
	for _, piece := range strings.Split(value, ",") {
		span := model.Span{
			StartLine: valueSpan.StartLine, StartColumn: col,
			EndLine: valueSpan.StartLine, EndColumn: col + len(piece),
		}
		name := piece
		var params []model.FilterParam
		if eq := strings.IndexByte(piece, '='); eq >= 0 {
			name = piece[:eq]
			rest := piece[eq+1:]
			for _, p := range strings.Split(rest, ":") {
				fp := model.FilterParam{Value: p}
				if kv := strings.IndexByte(p, '='); kv >= 0 {
					fp.Key = p[:kv]
					fp.Value = p[kv+1:]
				}
				params = append(params, fp)
			}
		}
		filters = append(filters, model.Filter{Name: name, Params: params, Span: span})
		col += len(piece) + 1
	}
	return filters
}
