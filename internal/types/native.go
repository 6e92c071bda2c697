// Package types provides the data structures shared by the tag sources,
// the mapping layer and the collector.
package types

// Vocabulary identifies a native tagging scheme. Each vocabulary has
// exactly one tag map.
type Vocabulary string

const (
	VocabID3v1    Vocabulary = "ID3v1"
	VocabID3v22   Vocabulary = "ID3v2.2"
	VocabID3v23   Vocabulary = "ID3v2.3"
	VocabID3v24   Vocabulary = "ID3v2.4"
	VocabAPEv2    Vocabulary = "APEv2"
	VocabASF      Vocabulary = "asf"
	VocabITunes   Vocabulary = "iTunes"
	VocabVorbis   Vocabulary = "vorbis"
	VocabRIFFInfo Vocabulary = "exif"
	VocabMatroska Vocabulary = "matroska"
	VocabAIFF     Vocabulary = "AIFF"
	VocabTagLib   Vocabulary = "taglib"
)

// Vocabularies lists every supported vocabulary in a stable order.
func Vocabularies() []Vocabulary {
	return []Vocabulary{
		VocabID3v1, VocabID3v22, VocabID3v23, VocabID3v24,
		VocabAPEv2, VocabASF, VocabITunes, VocabVorbis,
		VocabRIFFInfo, VocabMatroska, VocabAIFF, VocabTagLib,
	}
}

// ParseVocabulary returns the vocabulary named s.
func ParseVocabulary(s string) (Vocabulary, error) {
	for _, v := range Vocabularies() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &UnknownVocabularyError{Vocabulary: Vocabulary(s)}
}

// NativeTag is one tag as found in a file, before mapping.
//
// Value holds whatever the source decoded: usually a string, but also
// numbers, PartOfSet, Picture, Rating, or source-specific structures such
// as Comment and Popularimeter that the mapping layer reduces to
// canonical shapes.
type NativeTag struct {
	Vocabulary Vocabulary
	Key        string
	Value      any
}

// Comment is a described text frame (ID3 COMM, USLT and TXXX).
type Comment struct {
	Language    string
	Description string
	Text        string
}

// Popularimeter is an ID3 POPM frame.
type Popularimeter struct {
	Email   string
	Rating  uint8
	Counter uint64
}

// Native is what a tag source produces for one file: the ordered native
// tag stream of every container it found, plus technical facts.
type Native struct {
	Path     string
	Tags     []NativeTag
	Warnings []Warning
	Audio    AudioInfo
	Format   Format
	Size     int64
}

// Add appends a tag to the stream.
func (n *Native) Add(vocab Vocabulary, key string, value any) {
	n.Tags = append(n.Tags, NativeTag{Vocabulary: vocab, Key: key, Value: value})
}

// Warn records a non-fatal problem.
func (n *Native) Warn(stage, message string, offset int64) {
	n.Warnings = append(n.Warnings, Warning{Stage: stage, Message: message, Offset: offset})
}

// Containers returns the distinct vocabularies present in the tag stream,
// in first-seen order.
func (n *Native) Containers() []Vocabulary {
	var out []Vocabulary
	seen := make(map[Vocabulary]bool)
	for _, t := range n.Tags {
		if !seen[t.Vocabulary] {
			seen[t.Vocabulary] = true
			out = append(out, t.Vocabulary)
		}
	}
	return out
}
