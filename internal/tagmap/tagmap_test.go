package tagmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

func TestBuiltinTablesAreClosed(t *testing.T) {
	for vocab, m := range builtin() {
		for native, k := range m {
			require.NotNil(t, k, "%s %q", vocab, native)
			assert.True(t, schema.IsKnownKey(k.Name()), "%s %q -> %q", vocab, native, k.Name())
			assert.True(t, schema.Registered(k), "%s %q -> %q has the wrong multiplicity", vocab, native, k.Name())
		}
	}
}

func TestEveryVocabularyHasATable(t *testing.T) {
	m := Default()
	assert.Equal(t, types.Vocabularies(), m.Vocabularies())
	for _, v := range types.Vocabularies() {
		assert.NotEmpty(t, m.TagMap(v), v)
	}
}

func TestBuild_RejectsUnknownKey(t *testing.T) {
	_, err := build(map[types.Vocabulary]TagMap{
		types.VocabVorbis: {"TITLE": schema.Title, "TITEL": schema.SingletonKey("titel")},
	})
	require.Error(t, err)

	var uke *types.UnknownKeyError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "titel", uke.Name)
	assert.Contains(t, uke.Suggestions, "title")
	assert.Contains(t, err.Error(), `"TITEL"`)
}

func TestBuild_RejectsWrongMultiplicity(t *testing.T) {
	_, err := build(map[types.Vocabulary]TagMap{
		types.VocabAIFF: {"NAME": schema.ListKey("title")},
	})
	var uke *types.UnknownKeyError
	require.True(t, errors.As(err, &uke))
}

func TestResolve(t *testing.T) {
	m := Default()
	tests := []struct {
		vocab  types.Vocabulary
		native string
		want   schema.Key
	}{
		{types.VocabID3v24, "TIT2", schema.Title},
		{types.VocabID3v24, "TPE1", schema.Artist},
		{types.VocabID3v23, "TYER", schema.Year},
		{types.VocabID3v24, "TYER", schema.Year},
		{types.VocabID3v23, "TDRC", schema.Date},
		{types.VocabID3v24, "TXXX:MusicBrainz Album Id", schema.MusicBrainzAlbumID},
		{types.VocabID3v24, "TXXX:musicbrainz album id", schema.MusicBrainzAlbumID},
		{types.VocabID3v24, "TMCL:guitar", schema.PerformerInstrument},
		{types.VocabID3v23, "IPLS:piano", schema.PerformerInstrument},
		{types.VocabID3v23, "IPLS:producer", schema.Producer},
		{types.VocabID3v22, "TT2", schema.Title},
		{types.VocabID3v1, "genre", schema.Genre},
		{types.VocabVorbis, "title", schema.Title},
		{types.VocabVorbis, "Album Artist", schema.AlbumArtist},
		{types.VocabVorbis, "RATING:user@example.com", schema.Rating},
		{types.VocabAPEv2, "ALBUM", schema.Album},
		{types.VocabAPEv2, "Cover Art (Front)", schema.Picture},
		{types.VocabITunes, "©nam", schema.Title},
		{types.VocabITunes, "----:com.apple.iTunes:MusicBrainz Track Id", schema.MusicBrainzRecordingID},
		{types.VocabASF, "WM/AlbumTitle", schema.Album},
		{types.VocabRIFFInfo, "IART", schema.Artist},
		{types.VocabMatroska, "track:TITLE", schema.Title},
		{types.VocabAIFF, "NAME", schema.Title},
		{types.VocabTagLib, "PERFORMER:VIOLIN", schema.PerformerInstrument},
	}

	for _, tc := range tests {
		t.Run(string(tc.vocab)+"/"+tc.native, func(t *testing.T) {
			got, ok := m.Resolve(tc.vocab, tc.native)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_NotMapped(t *testing.T) {
	m := Default()

	_, ok := m.Resolve(types.VocabID3v24, "XXXX")
	assert.False(t, ok, "unknown frame")

	_, ok = m.Resolve(types.VocabITunes, "rtng")
	assert.False(t, ok, "content advisory is not mapped")

	_, ok = m.Resolve(types.VocabID3v24, "TIPL:catering")
	assert.False(t, ok, "roles without a canonical key are dropped")

	_, ok = m.Resolve(types.Vocabulary("bogus"), "TITLE")
	assert.False(t, ok, "unknown vocabulary is not an error")
}

func TestNew_WithMapping(t *testing.T) {
	m, err := New(
		WithMapping(types.VocabVorbis, "MY_TITLE", "title"),
		WithMapping(types.VocabVorbis, "artist", "albumartist"),
	)
	require.NoError(t, err)

	k, ok := m.Resolve(types.VocabVorbis, "MY_TITLE")
	require.True(t, ok)
	assert.Equal(t, schema.Title, k)

	k, ok = m.Resolve(types.VocabVorbis, "ARTIST")
	require.True(t, ok)
	assert.Equal(t, schema.AlbumArtist, k, "override replaces the case variant")

	k, ok = Default().Resolve(types.VocabVorbis, "ARTIST")
	require.True(t, ok)
	assert.Equal(t, schema.Artist, k, "default mapper is unaffected")
}

func TestNew_WithMappingUnknownKey(t *testing.T) {
	_, err := New(WithMapping(types.VocabVorbis, "X", "albumartits"))
	var uke *types.UnknownKeyError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "albumartits", uke.Name)
}

func TestNew_UnknownVocabulary(t *testing.T) {
	_, err := New(WithMapping("id3v9", "X", "title"))
	var uve *types.UnknownVocabularyError
	require.True(t, errors.As(err, &uve))

	_, err = New(WithoutMapping("id3v9", "X"))
	require.True(t, errors.As(err, &uve))
}

func TestNew_WithoutMapping(t *testing.T) {
	m, err := New(WithoutMapping(types.VocabVorbis, "comment"))
	require.NoError(t, err)

	_, ok := m.Resolve(types.VocabVorbis, "COMMENT")
	assert.False(t, ok)
}

func TestTagMap_ReturnsCopy(t *testing.T) {
	m := Default()
	tm := m.TagMap(types.VocabAIFF)
	tm["NAME"] = schema.Album

	k, _ := m.Resolve(types.VocabAIFF, "NAME")
	assert.Equal(t, schema.Title, k)
	assert.Nil(t, m.TagMap("bogus"))
}
