package tagmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

func TestParseID3Genre(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Rock", []string{"Rock"}},
		{"17", []string{"Rock"}},
		{"(17)", []string{"Rock"}},
		{"(17)(RX)", []string{"Rock", "Remix"}},
		{"(4)(CR)", []string{"Disco", "Cover"}},
		{"(9)Heavy", []string{"Heavy"}},
		{"((Parenthesized)", []string{"(Parenthesized)"}},
		{"(191)", []string{"Psybient"}},
		{"(999)", nil},
		{"", nil},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseID3Genre(tc.in))
		})
	}
}

func TestGenreName(t *testing.T) {
	g, ok := GenreName(0)
	require.True(t, ok)
	assert.Equal(t, "Blues", g)

	g, ok = GenreName(141)
	require.True(t, ok)
	assert.Equal(t, "Christian Rock", g)

	_, ok = GenreName(192)
	assert.False(t, ok)
	_, ok = GenreName(-1)
	assert.False(t, ok)
}

func TestPostMap_Genre(t *testing.T) {
	got := PostMap(types.NativeTag{Vocabulary: types.VocabID3v1, Key: "genre", Value: uint8(17)}, schema.Genre)
	assert.Equal(t, "Rock", got)

	got = PostMap(types.NativeTag{Vocabulary: types.VocabID3v1, Key: "genre", Value: uint8(255)}, schema.Genre)
	assert.Nil(t, got, "255 means no genre")

	got = PostMap(types.NativeTag{Vocabulary: types.VocabITunes, Key: "gnre", Value: 18}, schema.Genre)
	assert.Equal(t, "Rock", got, "gnre is one-based")

	got = PostMap(types.NativeTag{Vocabulary: types.VocabID3v23, Key: "TCON", Value: "(17)(RX)"}, schema.Genre)
	assert.Equal(t, []string{"Rock", "Remix"}, got)

	got = PostMap(types.NativeTag{Vocabulary: types.VocabVorbis, Key: "GENRE", Value: "17"}, schema.Genre)
	assert.Equal(t, "17", got, "only ID3 genres are references")
}

func TestPostMap_Rating(t *testing.T) {
	tests := []struct {
		name string
		tag  types.NativeTag
		want types.Rating
	}{
		{
			"popm max",
			types.NativeTag{Vocabulary: types.VocabID3v24, Key: "POPM", Value: types.Popularimeter{Email: "a@b", Rating: 255}},
			types.NewRating("a@b", 1),
		},
		{
			"popm unrated",
			types.NativeTag{Vocabulary: types.VocabID3v23, Key: "POPM", Value: types.Popularimeter{Email: "a@b"}},
			types.Rating{Source: "a@b"},
		},
		{
			"vorbis percent with source",
			types.NativeTag{Vocabulary: types.VocabVorbis, Key: "RATING:me", Value: "80"},
			types.NewRating("me", 0.8),
		},
		{
			"vorbis stars",
			types.NativeTag{Vocabulary: types.VocabVorbis, Key: "RATING", Value: "4"},
			types.NewRating("", 0.8),
		},
		{
			"vorbis one star",
			types.NativeTag{Vocabulary: types.VocabVorbis, Key: "RATING", Value: "1"},
			types.NewRating("", 0.2),
		},
		{
			"ape fraction",
			types.NativeTag{Vocabulary: types.VocabAPEv2, Key: "Rating", Value: "0.5"},
			types.NewRating("", 0.5),
		},
		{
			"vorbis zero",
			types.NativeTag{Vocabulary: types.VocabVorbis, Key: "RATING", Value: "0"},
			types.NewRating("", 0),
		},
		{
			"asf",
			types.NativeTag{Vocabulary: types.VocabASF, Key: "WM/SharedUserRating", Value: uint32(99)},
			types.NewRating("", 1),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PostMap(tc.tag, schema.Rating))
		})
	}
}

func TestPostMap_Performer(t *testing.T) {
	got := PostMap(types.NativeTag{Vocabulary: types.VocabID3v24, Key: "TMCL:Guitar", Value: "Jimi"}, schema.PerformerInstrument)
	assert.Equal(t, "Jimi (guitar)", got)

	got = PostMap(types.NativeTag{Vocabulary: types.VocabTagLib, Key: "PERFORMER:VIOLIN", Value: "Anne"}, schema.PerformerInstrument)
	assert.Equal(t, "Anne (violin)", got)

	got = PostMap(types.NativeTag{Vocabulary: types.VocabVorbis, Key: "PERFORMER", Value: "Anne (violin)"}, schema.PerformerInstrument)
	assert.Equal(t, "Anne (violin)", got)
}

func TestPostMap_PassThrough(t *testing.T) {
	tag := types.NativeTag{Vocabulary: types.VocabVorbis, Key: "TITLE", Value: "Song"}
	assert.Equal(t, "Song", PostMap(tag, schema.Title))
}
