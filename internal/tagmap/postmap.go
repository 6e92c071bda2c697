package tagmap

import (
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

// PostMap rewrites the value of a native entry into the form its canonical
// key expects: genre references become names, vocabulary-specific rating
// scales become fractions, and qualified role keys fold their qualifier
// into the value. A []string result stands for several values. Values that
// need no rewrite are returned unchanged.
func PostMap(tag types.NativeTag, key schema.Key) any {
	switch key {
	case schema.Genre:
		return genreValue(tag)
	case schema.Rating:
		return ratingValue(tag)
	case schema.PerformerInstrument:
		return performerValue(tag)
	}
	return tag.Value
}

func genreValue(tag types.NativeTag) any {
	switch tag.Vocabulary {
	case types.VocabID3v1:
		if n, ok := asInt(tag.Value); ok {
			if g, ok := GenreName(n); ok {
				return g
			}
			return nil
		}
	case types.VocabID3v22, types.VocabID3v23, types.VocabID3v24:
		if s, ok := tag.Value.(string); ok {
			if genres := parseID3Genre(s); len(genres) > 0 {
				return genres
			}
			return nil
		}
	case types.VocabITunes:
		// gnre holds a one-based index.
		if n, ok := asInt(tag.Value); ok {
			if g, ok := GenreName(n - 1); ok {
				return g
			}
			return nil
		}
	}
	return tag.Value
}

func ratingValue(tag types.NativeTag) any {
	switch v := tag.Value.(type) {
	case types.Popularimeter:
		return popmRating(v)
	case *types.Popularimeter:
		if v == nil {
			return nil
		}
		return popmRating(*v)
	case types.Rating, *types.Rating:
		return v
	}

	_, source, _ := strings.Cut(tag.Key, ":")
	f, ok := asFloat(tag.Value)
	if !ok {
		return tag.Value
	}
	var scale float64
	switch tag.Vocabulary {
	case types.VocabASF:
		scale = 99
	case types.VocabITunes:
		scale = 100
	default:
		scale = guessScale(f)
	}
	if f < 0 || f > scale {
		return tag.Value
	}
	return types.NewRating(source, f/scale)
}

// popmRating maps a POPM byte onto [0,1]. Zero means unrated.
func popmRating(p types.Popularimeter) types.Rating {
	if p.Rating == 0 {
		return types.Rating{Source: p.Email}
	}
	return types.NewRating(p.Email, float64(p.Rating-1)/254)
}

// guessScale picks the scale of a free-form rating. Whole numbers up to 5
// are stars, other values below 1 are fractions, and anything above 5 is a
// percentage.
func guessScale(f float64) float64 {
	switch {
	case f <= 5 && f == math.Trunc(f):
		return 5
	case f < 1:
		return 1
	case f <= 5:
		return 5
	default:
		return 100
	}
}

func performerValue(tag types.NativeTag) any {
	_, instrument, ok := strings.Cut(tag.Key, ":")
	if !ok || instrument == "" || strings.EqualFold(instrument, "instrument") {
		return tag.Value
	}
	name, isText := tag.Value.(string)
	if !isText {
		return tag.Value
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return name + " (" + strings.ToLower(instrument) + ")"
}

func asInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	if n, ok := asInt(v); ok {
		return float64(n), true
	}
	return 0, false
}
