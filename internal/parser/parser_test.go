package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/model"
)

func TestParse_SimpleCommand(t *testing.T) {
	cmd, diags := Parse("ffmpeg -i input.mp4 output.mp4")
	require.Empty(t, diags)
	require.NotNil(t, cmd)
	require.Len(t, cmd.Inputs, 1)
	require.Len(t, cmd.Outputs, 1)
	assert.Equal(t, "input.mp4", cmd.Inputs[0].Path)
	assert.Equal(t, "output.mp4", cmd.Outputs[0].Path)
}

func TestParse_MultipleInputsAndOptions(t *testing.T) {
	cmd, diags := Parse("ffmpeg -y -i a.mp4 -i b.mp3 -c:v h264 -map 0:v out.mp4")
	require.Empty(t, diags)
	require.Len(t, cmd.GlobalOpts, 1)
	assert.Equal(t, model.OptOverwriteYes, cmd.GlobalOpts[0].Kind)
	require.Len(t, cmd.Inputs, 2)
	assert.Equal(t, "a.mp4", cmd.Inputs[0].Path)
	assert.Equal(t, "b.mp3", cmd.Inputs[1].Path)
	require.Len(t, cmd.Outputs, 1)
	require.Len(t, cmd.Outputs[0].Options, 2)
	assert.Equal(t, model.OptVideoCodec, cmd.Outputs[0].Options[0].Kind)
	assert.Equal(t, "h264", cmd.Outputs[0].Options[0].Value)
	assert.Equal(t, model.OptMap, cmd.Outputs[0].Options[1].Kind)
}

func TestParse_UnrecognizedOptionRecovers(t *testing.T) {
	cmd, diags := Parse("ffmpeg -i in.mp4 -totally-unknown out.mp4")
	require.NotNil(t, cmd)
	require.Len(t, cmd.Outputs, 1)
	var found bool
	for _, d := range diags {
		if d.Code == "E501" {
			found = true
		}
	}
	assert.True(t, found, "expected an E501 for the unknown option")
}

func TestParse_MissingFfmpegPrefix(t *testing.T) {
	cmd, diags := Parse("notffmpeg -i in.mp4 out.mp4")
	assert.Nil(t, cmd)
	require.Len(t, diags, 1)
	assert.Equal(t, "E000", diags[0].Code)
}

func TestParse_SelectorSuffixResolvesCodecKind(t *testing.T) {
	cmd, _ := Parse("ffmpeg -i in.mp4 -c:a aac out.mp4")
	require.Len(t, cmd.Outputs[0].Options, 1)
	opt := cmd.Outputs[0].Options[0]
	assert.Equal(t, model.OptAudioCodec, opt.Kind)
	assert.True(t, opt.Selector.Present)
	assert.Equal(t, model.KindAudio, opt.Selector.Kind)
}

func TestParse_BlankInput(t *testing.T) {
	cmd, diags := Parse("")
	assert.Nil(t, cmd)
	assert.Empty(t, diags)
}
