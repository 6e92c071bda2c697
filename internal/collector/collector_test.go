package collector

import (
	"errors"
	"os"
	"testing"

	"github.com/juho05/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

func TestMain(m *testing.M) {
	log.SetSeverity(log.NONE)
	os.Exit(m.Run())
}

func vorbis(key string, value any) types.NativeTag {
	return types.NativeTag{Vocabulary: types.VocabVorbis, Key: key, Value: value}
}

func TestIngest_SingletonOverwrites(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Ingest(vorbis("TITLE", "First")))
	require.NoError(t, c.Ingest(vorbis("TITLE", "Second")))

	md := c.Finalize()
	v, ok := md.Singleton(schema.Title)
	require.True(t, ok)
	assert.Equal(t, "Second", v)
}

func TestIngest_SingletonAcrossContainers(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		{Vocabulary: types.VocabID3v24, Key: "TIT2", Value: "From ID3v2"},
		{Vocabulary: types.VocabID3v1, Key: "title", Value: "From ID3v1"},
	}))
	assert.Equal(t, "From ID3v1", c.Finalize().Text(schema.Title), "last write wins")
}

func TestIngest_ListAppendsInOrder(t *testing.T) {
	c := New(nil)
	for _, g := range []string{"Rock", "Jazz", "Rock"} {
		require.NoError(t, c.Ingest(vorbis("GENRE", g)))
	}
	assert.Equal(t, []string{"Rock", "Jazz", "Rock"}, c.Finalize().Strings(schema.Genre),
		"duplicates are kept in ingestion order")
}

func TestIngest_NotMappedIsDropped(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Ingest(vorbis("X-VENDOR-PRIVATE", "junk")))
	require.NoError(t, c.Ingest(types.NativeTag{Vocabulary: "nonsense", Key: "TITLE", Value: "x"}))

	md := c.Finalize()
	assert.Empty(t, md.Keys())
	assert.Empty(t, md.Warnings())
}

func TestIngest_ShapeMismatchIsLocal(t *testing.T) {
	c := New(nil)
	err := c.IngestAll([]types.NativeTag{
		vorbis("TITLE", "Song"),
		vorbis("TRACKNUMBER", "three"),
		vorbis("ALBUM", "Record"),
	})

	var mismatch *types.ValueShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "track", mismatch.Key)
	assert.Equal(t, "TRACKNUMBER", mismatch.NativeKey)
	assert.Equal(t, types.VocabVorbis, mismatch.Vocabulary)

	md := c.Finalize()
	assert.Equal(t, "Song", md.Text(schema.Title))
	assert.Equal(t, "Record", md.Text(schema.Album))
	_, ok := md.Singleton(schema.Track)
	assert.False(t, ok)

	require.Len(t, md.Warnings(), 1)
	assert.Equal(t, "mapping", md.Warnings()[0].Stage)
}

func TestIngest_EmptyValuesAreAbsent(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Ingest(vorbis("TITLE", "  ")))
	require.NoError(t, c.Ingest(vorbis("ARTIST", "\x00")))
	assert.Empty(t, c.Finalize().Keys())
}

func TestWithoutWarnings(t *testing.T) {
	c := New(nil, WithoutWarnings())
	err := c.Ingest(vorbis("BPM", "fast"))
	var mismatch *types.ValueShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	c.Warn(types.Warning{Stage: "metadata", Message: "ignored"})
	assert.Empty(t, c.Finalize().Warnings())
}

func TestIngest_ExpandsMultipleGenres(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Ingest(types.NativeTag{Vocabulary: types.VocabID3v23, Key: "TCON", Value: "(17)(RX)"}))
	assert.Equal(t, []string{"Rock", "Remix"}, c.Finalize().Strings(schema.Genre))
}

func TestIngest_Pictures(t *testing.T) {
	pic := types.Picture{Format: "image/jpeg", Type: types.FrontCover, Data: []byte{1, 2, 3, 4}}

	c := New(nil, WithSkipPictures())
	require.NoError(t, c.Ingest(vorbis("METADATA_BLOCK_PICTURE", pic)))
	assert.Nil(t, c.Finalize().Cover())

	c = New(nil, WithMaxPictureSize(2))
	require.NoError(t, c.Ingest(vorbis("METADATA_BLOCK_PICTURE", pic)))
	md := c.Finalize()
	assert.Nil(t, md.Cover())
	require.Len(t, md.Warnings(), 1)
	assert.Equal(t, "picture", md.Warnings()[0].Stage)

	c = New(nil)
	require.NoError(t, c.Ingest(vorbis("METADATA_BLOCK_PICTURE", pic)))
	require.NotNil(t, c.Finalize().Cover())
	assert.Equal(t, pic.Data, c.Finalize().Cover().Data)
}

func TestFinalize_OneShot(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Ingest(vorbis("TITLE", "Song")))
	first := c.Finalize()
	assert.Same(t, first, c.Finalize())
	assert.ErrorIs(t, c.Ingest(vorbis("TITLE", "Other")), ErrFinalized)
	assert.Equal(t, "Song", c.Finalize().Text(schema.Title))
}

func TestFinalize_ArtistFromArtists(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("ARTISTS", "David Bowie"),
		vorbis("ARTISTS", "Queen"),
		vorbis("ARTISTS", "Mick Ronson"),
	}))
	assert.Equal(t, "David Bowie, Queen & Mick Ronson", c.Finalize().Artist())
}

func TestFinalize_ExplicitArtistWins(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("ARTISTS", "David Bowie"),
		vorbis("ARTISTS", "Queen"),
		vorbis("ARTIST", "Queen & David Bowie"),
	}))
	assert.Equal(t, "Queen & David Bowie", c.Finalize().Artist())
}

// AIFF files tagged with both text chunks and an ID3 chunk list artists
// in the ID3 block only.
func TestFinalize_ArtistsJoinedAcrossContainers(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		{Vocabulary: types.VocabAIFF, Key: "NAME", Value: "Under Pressure"},
		{Vocabulary: types.VocabID3v24, Key: "TXXX:Artists", Value: "David Bowie"},
		{Vocabulary: types.VocabID3v24, Key: "TXXX:Artists", Value: "Queen"},
	}))
	md := c.Finalize()
	assert.Equal(t, "Under Pressure", md.Text(schema.Title))
	assert.Equal(t, "David Bowie & Queen", md.Artist())
	assert.Equal(t, []string{"David Bowie", "Queen"}, md.Strings(schema.Artists))
}

func TestFinalize_MultiValuedArtist(t *testing.T) {
	tests := []struct {
		name string
		tags []types.NativeTag
	}{
		{"id3v2.4 TPE1", []types.NativeTag{
			{Vocabulary: types.VocabID3v24, Key: "TPE1", Value: "David Bowie"},
			{Vocabulary: types.VocabID3v24, Key: "TPE1", Value: "Queen"},
		}},
		{"repeated vorbis ARTIST", []types.NativeTag{
			vorbis("ARTIST", "David Bowie"),
			vorbis("ARTIST", "Queen"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			require.NoError(t, c.IngestAll(tt.tags))
			md := c.Finalize()
			assert.Equal(t, "David Bowie & Queen", md.Artist())
			assert.Equal(t, []string{"David Bowie", "Queen"}, md.Strings(schema.Artists))
		})
	}
}

func TestFinalize_ArtistCreditsFromLastContainer(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		{Vocabulary: types.VocabID3v1, Key: "artist", Value: "David Bowie"},
		{Vocabulary: types.VocabID3v23, Key: "TPE1", Value: "David Bowie"},
	}))
	md := c.Finalize()
	assert.Equal(t, "David Bowie", md.Artist())
	assert.Equal(t, []string{"David Bowie"}, md.Strings(schema.Artists))
}

func TestFinalize_ExplicitArtistsKept(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("ARTIST", "Bowie"),
		vorbis("ARTIST", "Queen"),
		vorbis("ARTISTS", "David Bowie"),
		vorbis("ARTISTS", "Queen"),
	}))
	md := c.Finalize()
	assert.Equal(t, "Bowie & Queen", md.Artist())
	assert.Equal(t, []string{"David Bowie", "Queen"}, md.Strings(schema.Artists))
}

func TestFinalize_DerivedYearAndTotals(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("DATE", "2004-05-03"),
		vorbis("TRACKNUMBER", "3"),
		vorbis("TRACKTOTAL", "12"),
		vorbis("DISCTOTAL", "2"),
	}))
	md := c.Finalize()

	y, ok := md.Int(schema.Year)
	require.True(t, ok)
	assert.Equal(t, 2004, y)
	assert.Equal(t, types.NewPartOfSet(3, 12), md.PartOfSet(schema.Track))
	assert.Equal(t, types.NewPartOfSet(0, 2), md.PartOfSet(schema.Disk))
}

func TestFinalize_ExplicitYearWins(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("DATE", "2004-05-03"),
		vorbis("YEAR", "1999"),
		vorbis("TRACKNUMBER", "3/10"),
		vorbis("TRACKTOTAL", "12"),
	}))
	md := c.Finalize()
	y, _ := md.Int(schema.Year)
	assert.Equal(t, 1999, y)
	assert.Equal(t, types.NewPartOfSet(3, 10), md.PartOfSet(schema.Track))
}

func TestStars(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		{Vocabulary: types.VocabID3v24, Key: "POPM", Value: types.Popularimeter{Email: "unrated@player"}},
		{Vocabulary: types.VocabID3v24, Key: "POPM", Value: types.Popularimeter{Email: "a@b", Rating: 255}},
	}))
	md := c.Finalize()
	assert.Len(t, md.Ratings(), 2)
	assert.Equal(t, 5, md.Stars(), "first rating with a value")

	assert.Equal(t, 0, New(nil).Finalize().Stars())
}

func TestKeys_FirstSeenOrder(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("ALBUM", "A"),
		vorbis("GENRE", "Rock"),
		vorbis("TITLE", "T"),
		vorbis("ALBUM", "B"),
		vorbis("GENRE", "Pop"),
	}))
	assert.Equal(t, []schema.Key{schema.Album, schema.Genre, schema.Title}, c.Finalize().Keys())
}

func TestGetAndMap(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.IngestAll([]types.NativeTag{
		vorbis("TITLE", "T"),
		vorbis("GENRE", "Rock"),
	}))
	md := c.Finalize()

	v, ok := md.Get("title")
	require.True(t, ok)
	assert.Equal(t, "T", v)

	v, ok = md.Get("genre")
	require.True(t, ok)
	assert.Equal(t, []any{"Rock"}, v)

	_, ok = md.Get("nope")
	assert.False(t, ok)

	assert.Equal(t, map[string]any{"title": "T", "genre": []any{"Rock"}}, md.Map())

	data, err := md.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","genre":["Rock"]}`, string(data))
}
