package commontags

import (
	"github.com/simonhull/commontags/internal/tagmap"
	"github.com/simonhull/commontags/internal/types"
)

// Vocabulary identifies a native tagging scheme such as "ID3v2.4".
type Vocabulary = types.Vocabulary

const (
	VocabID3v1    = types.VocabID3v1
	VocabID3v22   = types.VocabID3v22
	VocabID3v23   = types.VocabID3v23
	VocabID3v24   = types.VocabID3v24
	VocabAPEv2    = types.VocabAPEv2
	VocabASF      = types.VocabASF
	VocabITunes   = types.VocabITunes
	VocabVorbis   = types.VocabVorbis
	VocabRIFFInfo = types.VocabRIFFInfo
	VocabMatroska = types.VocabMatroska
	VocabAIFF     = types.VocabAIFF
	VocabTagLib   = types.VocabTagLib
)

// NativeTag is one tag as read from a container, before mapping.
type NativeTag = types.NativeTag

// Mapper resolves native keys to canonical keys.
type Mapper = tagmap.Mapper

// MapperOption customizes a Mapper built with NewMapper.
type MapperOption = tagmap.Option

// NewMapper builds a Mapper from the built-in tag maps plus opts.
func NewMapper(opts ...MapperOption) (*Mapper, error) {
	return tagmap.New(opts...)
}

// DefaultMapper returns the shared Mapper over the built-in tag maps.
func DefaultMapper() *Mapper {
	return tagmap.Default()
}

// MapKey maps a native key of vocab to the canonical key named canonical,
// replacing any built-in mapping.
func MapKey(vocab Vocabulary, native, canonical string) MapperOption {
	return tagmap.WithMapping(vocab, native, canonical)
}

// UnmapKey removes the built-in mapping of a native key.
func UnmapKey(vocab Vocabulary, native string) MapperOption {
	return tagmap.WithoutMapping(vocab, native)
}
