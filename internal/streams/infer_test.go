package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/model"
)

func TestInfer_KnownExtensions(t *testing.T) {
	db := knowledge.Default()
	cmd := &model.Command{Inputs: []model.InputSpec{
		{Path: "video.mp4"},
		{Path: "audio.mp3"},
		{Path: "subs.srt"},
	}}

	env, diags := Infer(cmd, db)
	assert.Empty(t, diags)
	require.Equal(t, 3, env.NumInputs())

	assert.True(t, env.HasKind(0, model.KindVideo))
	assert.True(t, env.HasKind(0, model.KindAudio))
	assert.True(t, env.HasKind(1, model.KindAudio))
	assert.False(t, env.HasKind(1, model.KindVideo))
	assert.True(t, env.HasKind(2, model.KindSubtitle))
}

func TestInfer_UnknownExtensionDefaultsAndWarns(t *testing.T) {
	db := knowledge.Default()
	cmd := &model.Command{Inputs: []model.InputSpec{{Path: "mystery.xyz"}}}

	env, diags := Infer(cmd, db)
	require.Len(t, diags, 1)
	assert.Equal(t, "I001", diags[0].Code)
	assert.Equal(t, model.SeverityInfo, diags[0].Severity)
	assert.True(t, env.HasKind(0, model.KindVideo))
	assert.True(t, env.HasKind(0, model.KindAudio))
}
