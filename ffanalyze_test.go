package ffanalyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/model"
)

func span(t *testing.T, content, substr string) (start, end int) {
	t.Helper()
	idx := strings.Index(content, substr)
	require.GreaterOrEqual(t, idx, 0, "substring %q not found in %q", substr, content)
	return idx, idx + len(substr)
}

func findByCode(d model.Diagnostics, code string) *model.Diagnostic {
	for i := range d.Messages {
		if d.Messages[i].Code == code {
			return &d.Messages[i]
		}
	}
	return nil
}

func TestAnalyze_KnownGoodCommand(t *testing.T) {
	content := "ffmpeg -i input.mp4 output.mp4"
	diags := Analyze(content, nil, 1, 0)
	assert.Empty(t, diags.Messages)
}

func TestAnalyze_VideoFilterOnAudioOnlyInput(t *testing.T) {
	content := "ffmpeg -i audio.mp3 -vf scale=640:480 output.mp4"
	diags := Analyze(content, nil, 1, 0)

	msg := findByCode(diags, "E101")
	require.NotNil(t, msg, "expected E101, got %+v", diags.Messages)
	require.Equal(t, model.SeverityError, msg.Severity)

	target, ok := msg.Target()
	require.True(t, ok)
	wantStart, wantEnd := span(t, content, "-vf")
	assert.Equal(t, wantStart, target.StartColumn)
	assert.Equal(t, wantEnd, target.EndColumn)

	var ref *model.LabeledSpan
	for i := range msg.Spans {
		if msg.Spans[i].Role.Kind == model.RoleReference {
			ref = &msg.Spans[i]
		}
	}
	require.NotNil(t, ref)
	refStart, refEnd := span(t, content, "audio.mp3")
	assert.Equal(t, refStart, ref.Span.StartColumn)
	assert.Equal(t, refEnd, ref.Span.EndColumn)
}

func TestAnalyze_CodecNotAllowedInContainer(t *testing.T) {
	content := "ffmpeg -i input.mp4 -c:v vp9 output.mp4"
	diags := Analyze(content, nil, 1, 0)

	msg := findByCode(diags, "E201")
	require.NotNil(t, msg, "expected E201, got %+v", diags.Messages)

	target, ok := msg.Target()
	require.True(t, ok)
	wantStart, wantEnd := span(t, content, "vp9")
	assert.Equal(t, wantStart, target.StartColumn)
	assert.Equal(t, wantEnd, target.EndColumn)
}

func TestAnalyze_MalformedResolution(t *testing.T) {
	content := "ffmpeg -i input.mp4 -s 1920 output.mp4"
	diags := Analyze(content, nil, 1, 0)

	msg := findByCode(diags, "E401")
	require.NotNil(t, msg, "expected E401, got %+v", diags.Messages)

	target, ok := msg.Target()
	require.True(t, ok)
	wantStart, wantEnd := span(t, content, "1920")
	assert.Equal(t, wantStart, target.StartColumn)
	assert.Equal(t, wantEnd, target.EndColumn)
}

func TestAnalyze_HighBitrateWarning(t *testing.T) {
	content := "ffmpeg -i input.mp4 -b:v 100M output.mp4"
	diags := Analyze(content, nil, 1, 0)

	msg := findByCode(diags, "W101")
	require.NotNil(t, msg, "expected W101, got %+v", diags.Messages)
	assert.Equal(t, model.SeverityWarning, msg.Severity)
}

func TestAnalyze_MapTargetMissing(t *testing.T) {
	content := "ffmpeg -i input.mp4 -map 2:0 output.mp4"
	diags := Analyze(content, nil, 1, 0)

	msg := findByCode(diags, "E301")
	require.NotNil(t, msg, "expected E301, got %+v", diags.Messages)

	target, ok := msg.Target()
	require.True(t, ok)
	wantStart, wantEnd := span(t, content, "2:0")
	assert.Equal(t, wantStart, target.StartColumn)
	assert.Equal(t, wantEnd, target.EndColumn)
}

func TestAnalyze_BlankInputYieldsNoMessages(t *testing.T) {
	assert.Empty(t, Analyze("", nil, 1, 0).Messages)
	assert.Empty(t, Analyze("   \n  ", nil, 1, 0).Messages)
	assert.Empty(t, Analyze("# just a comment", nil, 1, 0).Messages)
}

func TestAnalyze_EveryMessageHasWellFormedTargetSpan(t *testing.T) {
	commands := []string{
		"ffmpeg -i input.mp4 output.mp4",
		"ffmpeg -i audio.mp3 -vf scale=640:480 output.mp4",
		"ffmpeg -i input.mp4 -c:v vp9 output.mp4",
		"ffmpeg -i input.mp4 -s 1920 output.mp4",
		"ffmpeg -i input.mp4 -b:v 100M output.mp4",
		"ffmpeg -i input.mp4 -map 2:0 output.mp4",
		"ffmpeg -i input.mp4 -y -n output.mp4",
		"not-ffmpeg at all",
	}
	for _, c := range commands {
		diags := Analyze(c, nil, 1, 0)
		for _, m := range diags.Messages {
			target, ok := m.Target()
			require.True(t, ok, "diagnostic %s has no Target span", m.Code)
			assert.GreaterOrEqual(t, target.StartLine, 1)
			assert.GreaterOrEqual(t, target.StartColumn, 0)
			assert.True(t, target.WellFormed(), "span not well-formed: %+v", target)
		}
	}
}

func TestAnalyze_OffsetMapping(t *testing.T) {
	content := "ffmpeg -i input.mp4 -s 1920 output.mp4"
	lineOffset, columnOffset := 10, 5
	diags := Analyze(content, nil, lineOffset, columnOffset)

	msg := findByCode(diags, "E401")
	require.NotNil(t, msg)
	target, _ := msg.Target()
	assert.Equal(t, lineOffset, target.StartLine)

	internalStart, _ := span(t, content, "1920")
	assert.Equal(t, internalStart+columnOffset, target.StartColumn)
}

func TestAnalyze_Deterministic(t *testing.T) {
	content := "ffmpeg -i input.mp4 -vf scale=640:480,unknownfilter -map 2:0 output.webm"
	a := Analyze(content, nil, 1, 0)
	b := Analyze(content, nil, 1, 0)
	assert.Equal(t, a, b)
}

func TestAnalyze_MutuallyExclusiveOverwriteFlags(t *testing.T) {
	content := "ffmpeg -y -n -i input.mp4 output.mp4"
	diags := Analyze(content, nil, 1, 0)
	msg := findByCode(diags, "W301")
	require.NotNil(t, msg, "expected W301, got %+v", diags.Messages)
}

func TestAnalyze_UnknownExtensionDefaultsAndWarns(t *testing.T) {
	content := "ffmpeg -i input.weirdext output.mp4"
	diags := Analyze(content, nil, 1, 0)
	msg := findByCode(diags, "I001")
	require.NotNil(t, msg, "expected I001, got %+v", diags.Messages)
	assert.Equal(t, model.SeverityInfo, msg.Severity)
}
