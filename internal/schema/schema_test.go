package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags/internal/types"
)

func TestIsSingleton(t *testing.T) {
	single, err := IsSingleton("title")
	require.NoError(t, err)
	assert.True(t, single, "title is a singleton")

	single, err = IsSingleton("artist")
	require.NoError(t, err)
	assert.True(t, single, "artist is a singleton")

	single, err = IsSingleton("artists")
	require.NoError(t, err)
	assert.False(t, single, "artists is a list")
}

func TestIsSingleton_Stable(t *testing.T) {
	for _, k := range AllKeys() {
		first, err := IsSingleton(k.Name())
		require.NoError(t, err)
		for range 3 {
			again, err := IsSingleton(k.Name())
			require.NoError(t, err)
			assert.Equal(t, first, again, k.Name())
		}
	}
}

func TestIsSingleton_MatchesVariant(t *testing.T) {
	for _, k := range AllKeys() {
		single, err := IsSingleton(k.Name())
		require.NoError(t, err)
		switch k.(type) {
		case SingletonKey:
			assert.True(t, single, k.Name())
		case ListKey:
			assert.False(t, single, k.Name())
		default:
			t.Fatalf("unexpected key variant %T", k)
		}
	}
}

func TestIsSingleton_UnknownKey(t *testing.T) {
	_, err := IsSingleton("titel")
	var uke *types.UnknownKeyError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "titel", uke.Name)
	assert.Contains(t, uke.Suggestions, "title")
}

func TestIsKnownKey(t *testing.T) {
	assert.True(t, IsKnownKey("picture"))
	assert.True(t, IsKnownKey("performer:instrument"))
	assert.False(t, IsKnownKey("Title"), "keys are case-sensitive")
	assert.False(t, IsKnownKey(""))
}

func TestRegistered(t *testing.T) {
	assert.True(t, Registered(Title))
	assert.True(t, Registered(Artists))
	assert.False(t, Registered(SingletonKey("bogus")))
	assert.False(t, Registered(ListKey("title")), "wrong multiplicity for a known name")
	assert.False(t, Registered(nil))
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("genre")
	require.True(t, ok)
	assert.Equal(t, Genre, k)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestAllKeys_Sorted(t *testing.T) {
	keys := AllKeys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1].Name(), keys[i].Name())
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		value any
		want  any
	}{
		{"text trims nul", Title, "Hello\x00", "Hello"},
		{"text from int", Album, 42, "42"},
		{"text from comment", Comment, types.Comment{Text: "nice"}, "nice"},
		{"int from string", TVSeason, "3", 3},
		{"year from date", Year, "2004-05-03", 2004},
		{"year from iso timestamp", Year, "2019-01-01T00:00:00Z", 2019},
		{"float with dB", ReplayGainTrackGain, "-6.48 dB", -6.48},
		{"float from int", BPM, 128, 128.0},
		{"bool from string", Compilation, "1", true},
		{"bool from int", Gapless, 0, false},
		{"part of set", Track, "3/12", types.NewPartOfSet(3, 12)},
		{"part of set from int", Disk, 2, types.NewPartOfSet(2, 0)},
		{"rating fraction", Rating, 0.5, types.NewRating("", 0.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Coerce(tc.key, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoerce_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		value any
	}{
		{"int from words", TVEpisode, "episode one"},
		{"bool from words", Compilation, "maybe"},
		{"picture from string", Picture, "cover.jpg"},
		{"rating out of range", Rating, 1.5},
		{"position from words", Track, "third"},
		{"text from bytes", Title, []byte{0x01}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Coerce(tc.key, tc.value)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrEmptyValue))
		})
	}
}

func TestCoerce_Empty(t *testing.T) {
	for _, v := range []any{"", "  ", "\x00\x00", nil, types.Picture{}} {
		_, err := Coerce(Title, v)
		if _, ok := v.(types.Picture); ok {
			_, err = Coerce(Picture, v)
		}
		assert.ErrorIs(t, err, ErrEmptyValue, "%#v", v)
	}
}

func TestLeadingYear(t *testing.T) {
	y, ok := LeadingYear("1999")
	assert.True(t, ok)
	assert.Equal(t, 1999, y)

	_, ok = LeadingYear("19990101")
	assert.False(t, ok, "eight digits is not a year prefix")

	_, ok = LeadingYear("99")
	assert.False(t, ok)
}
