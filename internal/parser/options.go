package parser

import "ffanalyze/internal/model"

type optionInfo struct {
	kind       model.OptionKind
	takesValue bool
}

// flagTable maps a flag's base text (selector suffix stripped) to its
// recognized kind. "-c" and "-b" are selector-dependent and resolved in
// resolveSelectorKind.
var flagTable = map[string]optionInfo{
	"-y":              {model.OptOverwriteYes, false},
	"-n":              {model.OptOverwriteNo, false},
	"-v":              {model.OptLogLevel, true},
	"-hide_banner":    {model.OptHideBanner, false},
	"-stats":          {model.OptStats, false},
	"-f":              {model.OptFormat, true},
	"-ss":             {model.OptSeekStart, true},
	"-t":              {model.OptDuration, true},
	"-stream_loop":    {model.OptStreamLoop, true},
	"-c":              {model.OptCodec, true},
	"-vcodec":         {model.OptVideoCodec, true},
	"-acodec":         {model.OptAudioCodec, true},
	"-b":              {model.OptGeneric, true},
	"-vb":             {model.OptVideoBitrate, true},
	"-ab":             {model.OptAudioBitrate, true},
	"-s":              {model.OptResolution, true},
	"-r":              {model.OptFrameRate, true},
	"-vf":             {model.OptVideoFilter, true},
	"-af":             {model.OptAudioFilter, true},
	"-vn":             {model.OptVideoDisable, false},
	"-an":             {model.OptAudioDisable, false},
	"-ar":             {model.OptSampleRate, true},
	"-ac":             {model.OptAudioChannels, true},
	"-map":            {model.OptMap, true},
	"-filter_complex": {model.OptFilterComplex, true},
}

// splitSelector splits a flag's raw text into its base ("-c:v" -> "-c")
// and a parsed StreamSelector.
func splitSelector(raw string) (string, model.StreamSelector) {
	for i, r := range raw {
		if r == ':' {
			base := raw[:i]
			suffix := raw[i+1:]
			return base, parseSelector(suffix)
		}
	}
	return raw, model.StreamSelector{}
}

func parseSelector(suffix string) model.StreamSelector {
	if suffix == "" {
		return model.StreamSelector{}
	}
	sel := model.StreamSelector{Present: true}
	switch suffix {
	case "v":
		sel.Kind = model.KindVideo
		return sel
	case "a":
		sel.Kind = model.KindAudio
		return sel
	case "s":
		sel.Kind = model.KindSubtitle
		return sel
	}
	n, ok := parseUint(suffix)
	if ok {
		sel.HasIdx = true
		sel.Index = n
		sel.Kind = model.KindUnknown
		return sel
	}
	// Unrecognized selector suffix: keep it marked present but unknown.
	sel.Kind = model.KindUnknown
	return sel
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// resolveSelectorKind disambiguates "-c"/"-b" using the parsed selector.
func resolveSelectorKind(base string, generic model.OptionKind, sel model.StreamSelector) model.OptionKind {
	switch base {
	case "-c":
		switch sel.Kind {
		case model.KindVideo:
			return model.OptVideoCodec
		case model.KindAudio:
			return model.OptAudioCodec
		default:
			return model.OptCodec
		}
	case "-b":
		switch sel.Kind {
		case model.KindVideo:
			return model.OptVideoBitrate
		case model.KindAudio:
			return model.OptAudioBitrate
		default:
			return model.OptGeneric
		}
	default:
		return generic
	}
}
