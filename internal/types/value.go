package types

import (
	"strconv"
	"strings"
)

// PartOfSet is a position within a set, such as track 3 of 12.
// Either field may be absent.
type PartOfSet struct {
	No *int `json:"no" yaml:"no"`
	Of *int `json:"of" yaml:"of"`
}

// ParsePartOfSet parses "3", "3/12", "/12" and " 03 / 12 ".
func ParsePartOfSet(s string) (PartOfSet, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartOfSet{}, false
	}
	noStr, ofStr, hasOf := strings.Cut(s, "/")

	var pos PartOfSet
	if v := strings.TrimSpace(noStr); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return PartOfSet{}, false
		}
		pos.No = &n
	}
	if hasOf {
		if v := strings.TrimSpace(ofStr); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return PartOfSet{}, false
			}
			pos.Of = &n
		}
	}
	if pos.No == nil && pos.Of == nil {
		return PartOfSet{}, false
	}
	return pos, true
}

// NewPartOfSet builds a PartOfSet; zero values are treated as absent.
func NewPartOfSet(no, of int) PartOfSet {
	var pos PartOfSet
	if no > 0 {
		pos.No = &no
	}
	if of > 0 {
		pos.Of = &of
	}
	return pos
}

func (p PartOfSet) String() string {
	var b strings.Builder
	if p.No != nil {
		b.WriteString(strconv.Itoa(*p.No))
	}
	if p.Of != nil {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(*p.Of))
	}
	return b.String()
}

// Rating is a normalized rating in [0,1], attributed to a source such as
// a POPM e-mail address or a player name.
type Rating struct {
	Source string   `json:"source,omitempty" yaml:"source,omitempty"`
	Rating *float64 `json:"rating" yaml:"rating"`
}

// NewRating builds a Rating from a fraction, clamped to [0,1].
func NewRating(source string, fraction float64) Rating {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	return Rating{Source: source, Rating: &fraction}
}
