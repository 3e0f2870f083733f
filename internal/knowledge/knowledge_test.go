package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/model"
)

func TestDefault_LoadsSeedCatalogs(t *testing.T) {
	db := Default()
	require.NotNil(t, db)

	codec, ok := db.GetCodec("h264")
	require.True(t, ok)
	assert.Equal(t, model.KindVideo, codec.Kind)

	alias, ok := db.GetCodec("libx264")
	require.True(t, ok)
	assert.Equal(t, codec.Name, alias.Name)

	_, ok = db.GetCodec("not-a-real-codec")
	assert.False(t, ok)
}

func TestDefault_ContainerLookupByExtensionAndName(t *testing.T) {
	db := Default()
	byExt, ok := db.GetContainerByExtension("mp4")
	require.True(t, ok)
	assert.Equal(t, "mp4", byExt.Name)

	byName, ok := db.GetContainerByName("webm")
	require.True(t, ok)
	assert.True(t, byName.Codecs["vp9"])
	assert.False(t, byName.Codecs["h264"])
}

func TestDefault_CopyCodecAlwaysAllowed(t *testing.T) {
	db := Default()
	mp4, _ := db.GetContainerByExtension("mp4")
	assert.True(t, db.IsCodecAllowedInContainer("copy", mp4))
	assert.True(t, db.IsCodecAllowedInContainer("COPY", mp4))
}

func TestDefault_StreamKindsForExtension(t *testing.T) {
	db := Default()
	assert.ElementsMatch(t, []model.StreamKind{model.KindVideo, model.KindAudio}, db.KindsForExtension("mp4"))
	assert.Equal(t, []model.StreamKind{model.KindAudio}, db.KindsForExtension("mp3"))
	assert.Nil(t, db.KindsForExtension("not-a-real-extension"))
}

func TestRegisterCodec_Extends(t *testing.T) {
	db := newEmptyDB()
	db.RegisterCodec(Codec{Name: "prores", Aliases: []string{"prores_ks"}, Kind: model.KindVideo})
	c, ok := db.GetCodec("prores_ks")
	require.True(t, ok)
	assert.Equal(t, "prores", c.Name)
}
