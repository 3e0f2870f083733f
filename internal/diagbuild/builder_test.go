package diagbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/model"
)

func TestBuilder_FinishWithoutTargetIsDropped(t *testing.T) {
	b := New()
	b.New("E999", model.SeverityError, "no target").
		Reference(model.Span{StartLine: 1, StartColumn: 0, EndLine: 1, EndColumn: 1}, "ref only").
		Finish()

	diags := b.Diagnostics()
	assert.Empty(t, diags)
}

func TestBuilder_ClampsIllFormedSpanAndLogsHint(t *testing.T) {
	b := New()
	b.New("E401", model.SeverityError, "bad span").
		Target(model.Span{StartLine: 1, StartColumn: 10, EndLine: 1, EndColumn: 3}, "inverted").
		Finish()

	diags := b.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, "H002", diags[0].Code)
	assert.Equal(t, "E401", diags[1].Code)
	target, ok := diags[1].Target()
	require.True(t, ok)
	assert.True(t, target.WellFormed())
}

func TestBuilder_FinishedMessageCarriesRich(t *testing.T) {
	b := New()
	b.New("E201", model.SeverityError, "incompatible").
		Target(model.Span{StartLine: 1, StartColumn: 0, EndLine: 1, EndColumn: 3}, "here").
		Rich(model.RichBlock{Kind: model.RichMarkdownGfm, Markdown: "details"}).
		Finish()

	diags := b.Diagnostics()
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Rich)
	assert.Equal(t, "details", diags[0].Rich.Blocks[0].Markdown)
}
