package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_SplitsWordsAndTracksSpans(t *testing.T) {
	toks := All("ffmpeg -i in.mp4 out.mp4")
	require := []string{"ffmpeg", "-i", "in.mp4", "out.mp4"}
	assert.Len(t, toks, len(require))
	for i, want := range require {
		assert.Equal(t, want, toks[i].Text)
	}
	assert.Equal(t, 0, toks[0].Span.StartColumn)
	assert.Equal(t, 6, toks[0].Span.EndColumn)
	assert.Equal(t, 7, toks[1].Span.StartColumn)
}

func TestAll_StripsQuotesButKeepsSpanOverOriginal(t *testing.T) {
	toks := All(`-vf "scale=640:480"`)
	assert.Len(t, toks, 2)
	assert.Equal(t, "scale=640:480", toks[1].Text)
	assert.True(t, toks[1].Quoted)
	// span covers the quotes themselves: 2 chars wider than the bare text
	width := toks[1].Span.EndColumn - toks[1].Span.StartColumn
	assert.Equal(t, len(`"scale=640:480"`), width)
}

func TestAll_SkipsCommentLines(t *testing.T) {
	toks := All("# just a comment\n")
	assert.Empty(t, toks)
}

func TestAll_EmptyInput(t *testing.T) {
	assert.Empty(t, All(""))
	assert.Empty(t, All("   \n\t "))
}

func TestAll_MultiLineTracksLineNumbers(t *testing.T) {
	toks := All("ffmpeg -i a.mp4 \\\nout.mp4")
	assert.Equal(t, 1, toks[0].Span.StartLine)
	last := toks[len(toks)-1]
	assert.Equal(t, "out.mp4", last.Text)
	assert.Equal(t, 2, last.Span.StartLine)
}
