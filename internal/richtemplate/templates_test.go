package richtemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/model"
)

func TestStreamKindMismatch_HighlightsOffendingInput(t *testing.T) {
	env := model.StreamEnvironment{ByInput: [][]model.Stream{
		{{Kind: model.KindAudio, InputIndex: 0, IndexWithinKind: 0}},
	}}

	p := StreamKindMismatch(env, 0, model.KindVideo)
	require.Len(t, p.Blocks, 2)
	assert.Equal(t, model.RichMarkdownGfm, p.Blocks[0].Kind)
	assert.Contains(t, p.Blocks[0].Markdown, "Input #0")
	assert.Contains(t, p.Blocks[0].Markdown, "audio")
	assert.Equal(t, model.RichMermaid, p.Blocks[1].Kind)
	assert.Contains(t, p.Blocks[1].Mermaid, "classDef highlight")
	assert.Contains(t, p.Blocks[1].Mermaid, "in0")
}

func TestCodecContainerIncompat_TableListsOffendingCodec(t *testing.T) {
	db := knowledge.Default()
	container, ok := db.GetContainerByName("webm")
	require.True(t, ok)

	p := CodecContainerIncompat(db, "h264", container)
	require.Len(t, p.Blocks, 1)
	assert.Contains(t, p.Blocks[0].Markdown, "`h264`")
	assert.Contains(t, p.Blocks[0].Markdown, "not in the allowed codec set")
	assert.Contains(t, p.Blocks[0].Markdown, "| `vp9` | yes |")
	assert.Contains(t, p.Blocks[0].Markdown, "| `h264` | no |")
}

func TestUnknownFilter_ListsKnownNamesOfSameKind(t *testing.T) {
	db := knowledge.Default()
	p := UnknownFilter(db, "nonexistent_filter", model.KindVideo, []string{"scale", "crop"})
	require.Len(t, p.Blocks, 1)
	assert.Contains(t, p.Blocks[0].Markdown, "nonexistent_filter")
	assert.Contains(t, p.Blocks[0].Markdown, "`crop`, `scale`")
}
