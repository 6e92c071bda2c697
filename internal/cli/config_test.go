package cli

import (
	"testing"

	"github.com/juho05/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/types"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want log.Severity
	}{
		{"none", log.NONE},
		{"error", log.ERROR},
		{"WARNING", log.WARNING},
		{"trace", log.TRACE},
		{"4", log.INFO},
		{"0", log.NONE},
	}
	for _, tc := range tests {
		got, err := parseSeverity(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"loud", "6", "-1"} {
		_, err := parseSeverity(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "warning", c.LogLevel)
	assert.Equal(t, "json", c.Output)
	assert.True(t, c.TagLib)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "localhost:8080", c.Listen)
	assert.Equal(t, 120, c.RateLimit)
	assert.EqualValues(t, 256<<20, c.MaxUploadSize)
	assert.Empty(t, c.Mappings)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("output", "xml")
	_, err := loadConfig(v)
	assert.Error(t, err)

	v = viper.New()
	setDefaults(v)
	v.Set("workers", 0)
	_, err = loadConfig(v)
	assert.Error(t, err)
}

func TestLoadConfig_Mappings(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("mappings", []map[string]any{
		{"vocabulary": "vorbis", "native": "MOOD_TAG", "key": "mood"},
		{"vocabulary": "vorbis", "native": "GENRE"},
	})

	c, err := loadConfig(v)
	require.NoError(t, err)
	require.Len(t, c.Mappings, 2)
	assert.Equal(t, MappingConfig{Vocabulary: "vorbis", Native: "MOOD_TAG", Key: "mood"}, c.Mappings[0])

	m, err := c.mapper()
	require.NoError(t, err)
	require.NotNil(t, m)

	k, ok := m.Resolve(types.VocabVorbis, "MOOD_TAG")
	require.True(t, ok)
	assert.Equal(t, "mood", k.Name())

	_, ok = m.Resolve(types.VocabVorbis, "GENRE")
	assert.False(t, ok, "an empty key removes the mapping")
}

func TestConfigMapper_Errors(t *testing.T) {
	c := &Config{Mappings: []MappingConfig{{Vocabulary: "klingon", Native: "X", Key: "title"}}}
	_, err := c.mapper()
	var uve *commontags.UnknownVocabularyError
	assert.ErrorAs(t, err, &uve)

	c = &Config{Mappings: []MappingConfig{{Vocabulary: "vorbis", Native: "X", Key: "titel"}}}
	_, err = c.parseOptions()
	var uke *commontags.UnknownKeyError
	assert.ErrorAs(t, err, &uke)
}

func TestConfigMapper_Default(t *testing.T) {
	m, err := (&Config{}).mapper()
	require.NoError(t, err)
	assert.Nil(t, m)

	opts, err := (&Config{TagLib: true, SkipPictures: true, MaxPictureSize: 10}).parseOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}
