// Package tagmap maps native tag keys onto canonical keys.
//
// Each native vocabulary has one TagMap. A Mapper combines them and
// answers which canonical key, if any, a native entry feeds. Every table
// is checked against the schema when a Mapper is built, so a Mapper never
// resolves to a key the schema does not know.
package tagmap

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/juho05/log"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

// TagMap maps the native keys of one vocabulary to canonical keys.
type TagMap map[string]schema.Key

func builtin() map[types.Vocabulary]TagMap {
	return map[types.Vocabulary]TagMap{
		types.VocabID3v1:    id3v1Tags,
		types.VocabID3v22:   id3v22Tags,
		types.VocabID3v23:   id3v23Tags,
		types.VocabID3v24:   id3v24Tags,
		types.VocabAPEv2:    apeTags,
		types.VocabASF:      asfTags,
		types.VocabITunes:   mp4Tags,
		types.VocabVorbis:   vorbisTags,
		types.VocabRIFFInfo: riffInfoTags,
		types.VocabMatroska: matroskaTags,
		types.VocabAIFF:     aiffTags,
		types.VocabTagLib:   taglibTags,
	}
}

type table struct {
	exact  TagMap
	folded TagMap
}

func newTable(m TagMap) *table {
	t := &table{exact: m, folded: make(TagMap, len(m))}
	for _, native := range slices.Sorted(maps.Keys(m)) {
		up := strings.ToUpper(native)
		if _, ok := t.folded[up]; !ok {
			t.folded[up] = m[native]
		}
	}
	return t
}

func (t *table) lookup(native string) (schema.Key, bool) {
	if k, ok := t.exact[native]; ok {
		return k, true
	}
	k, ok := t.folded[strings.ToUpper(native)]
	return k, ok
}

// Mapper resolves native keys of any supported vocabulary. It is read-only
// once built and safe for concurrent use.
type Mapper struct {
	tables map[types.Vocabulary]*table
}

// Option configures a Mapper.
type Option func(*config)

type mapping struct {
	vocab     types.Vocabulary
	native    string
	canonical string
}

type config struct {
	extra   []mapping
	removed []mapping
}

// WithMapping adds or overrides a single mapping. The canonical name is
// validated when the Mapper is built.
func WithMapping(vocab types.Vocabulary, nativeKey, canonicalName string) Option {
	return func(c *config) {
		c.extra = append(c.extra, mapping{vocab: vocab, native: nativeKey, canonical: canonicalName})
	}
}

// WithoutMapping removes a built-in mapping, so entries with that native
// key are dropped.
func WithoutMapping(vocab types.Vocabulary, nativeKey string) Option {
	return func(c *config) {
		c.removed = append(c.removed, mapping{vocab: vocab, native: nativeKey})
	}
}

// New builds a Mapper from the built-in tables and the given options.
//
// Construction fails with an error wrapping *types.UnknownKeyError if any
// table maps to a key the schema does not register, and with
// *types.UnknownVocabularyError if an option names an unknown vocabulary.
func New(opts ...Option) (*Mapper, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	tables := builtin()
	for vocab, m := range tables {
		tables[vocab] = maps.Clone(m)
	}

	for _, rm := range cfg.removed {
		m, ok := tables[rm.vocab]
		if !ok {
			return nil, &types.UnknownVocabularyError{Vocabulary: rm.vocab}
		}
		delete(m, rm.native)
		delete(m, lookupKey(m, rm.native))
	}

	for _, add := range cfg.extra {
		m, ok := tables[add.vocab]
		if !ok {
			return nil, &types.UnknownVocabularyError{Vocabulary: add.vocab}
		}
		k, ok := schema.Lookup(add.canonical)
		if !ok {
			return nil, fmt.Errorf("mapping %s %q: %w", add.vocab, add.native,
				&types.UnknownKeyError{Name: add.canonical, Suggestions: schema.Suggest(add.canonical)})
		}
		// Replace any case variant so the override is what lookups find.
		delete(m, lookupKey(m, add.native))
		m[add.native] = k
	}

	return build(tables)
}

// build checks that every table is closed over the schema and indexes it.
func build(tables map[types.Vocabulary]TagMap) (*Mapper, error) {
	mp := &Mapper{tables: make(map[types.Vocabulary]*table, len(tables))}
	for _, vocab := range slices.Sorted(maps.Keys(tables)) {
		m := tables[vocab]
		for _, native := range slices.Sorted(maps.Keys(m)) {
			if err := checkKey(m[native]); err != nil {
				return nil, fmt.Errorf("tag map %s: native key %q: %w", vocab, native, err)
			}
		}
		mp.tables[vocab] = newTable(m)
	}
	return mp, nil
}

func checkKey(k schema.Key) error {
	if k == nil {
		return &types.UnknownKeyError{}
	}
	if !schema.Registered(k) {
		return &types.UnknownKeyError{Name: k.Name(), Suggestions: schema.Suggest(k.Name())}
	}
	return nil
}

// lookupKey returns the key of m that native case-folds to, or native
// itself when there is none.
func lookupKey(m TagMap, native string) string {
	if _, ok := m[native]; ok {
		return native
	}
	for k := range m {
		if strings.EqualFold(k, native) {
			return k
		}
	}
	return native
}

var (
	defaultOnce   sync.Once
	defaultMapper *Mapper
)

// Default returns the process-wide Mapper over the built-in tables. It
// panics if the built-in tables reference an unknown key.
func Default() *Mapper {
	defaultOnce.Do(func() {
		m, err := New()
		if err != nil {
			panic(fmt.Sprintf("tagmap: built-in tables are invalid: %v", err))
		}
		log.Tracef("tag mapper ready: %d vocabularies, schema v%d", len(m.tables), schema.SchemaVersion)
		defaultMapper = m
	})
	return defaultMapper
}

// Resolve returns the canonical key nativeKey feeds in vocab. The second
// result is false when the entry is not mapped; that is not an error.
// Lookup tries the key as given, then case-insensitively, then the
// vocabulary's role forms such as ID3 "TMCL:<instrument>".
func (m *Mapper) Resolve(vocab types.Vocabulary, nativeKey string) (schema.Key, bool) {
	t, ok := m.tables[vocab]
	if !ok {
		return nil, false
	}
	if k, ok := t.lookup(nativeKey); ok {
		return k, true
	}
	if norm, ok := normalizeKey(vocab, nativeKey); ok {
		return t.lookup(norm)
	}
	return nil, false
}

// TagMap returns a copy of the table for vocab, or nil if the vocabulary
// is unknown.
func (m *Mapper) TagMap(vocab types.Vocabulary) TagMap {
	t, ok := m.tables[vocab]
	if !ok {
		return nil
	}
	return maps.Clone(t.exact)
}

// Vocabularies returns the vocabularies the Mapper knows, in the stable
// order of types.Vocabularies.
func (m *Mapper) Vocabularies() []types.Vocabulary {
	var out []types.Vocabulary
	for _, v := range types.Vocabularies() {
		if _, ok := m.tables[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// id3Roles are the involved-people roles with their own canonical key.
var id3Roles = map[string]bool{
	"arranger": true, "engineer": true, "producer": true, "dj-mix": true, "mix": true,
}

// normalizeKey rewrites keys that carry a free-form qualifier into the
// table form. The qualifier is recovered from the original key by PostMap.
func normalizeKey(vocab types.Vocabulary, key string) (string, bool) {
	frame, qualifier, ok := strings.Cut(key, ":")
	if !ok {
		return "", false
	}
	switch vocab {
	case types.VocabID3v23, types.VocabID3v24:
		switch strings.ToUpper(frame) {
		case "TMCL":
			return "TMCL:instrument", true
		case "IPLS":
			// ID3v2.3 has one list for both roles and musicians.
			if !id3Roles[strings.ToLower(qualifier)] {
				return "IPLS:instrument", true
			}
		}
	case types.VocabTagLib:
		if strings.EqualFold(frame, "PERFORMER") {
			return "PERFORMER", true
		}
	case types.VocabVorbis, types.VocabAPEv2:
		if strings.EqualFold(frame, "RATING") {
			return "RATING", true
		}
	}
	return "", false
}
