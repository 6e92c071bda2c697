package types

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePartOfSet(t *testing.T) {
	tests := []struct {
		in     string
		no, of int // 0 means absent
		ok     bool
	}{
		{"3", 3, 0, true},
		{"3/12", 3, 12, true},
		{" 03 / 12 ", 3, 12, true},
		{"/12", 0, 12, true},
		{"3/", 3, 0, true},
		{"", 0, 0, false},
		{"/", 0, 0, false},
		{"A/B", 0, 0, false},
		{"3/x", 0, 0, false},
	}

	for _, tc := range tests {
		pos, ok := ParsePartOfSet(tc.in)
		if ok != tc.ok {
			t.Errorf("ParsePartOfSet(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := intOrZero(pos.No); got != tc.no {
			t.Errorf("ParsePartOfSet(%q).No = %d, want %d", tc.in, got, tc.no)
		}
		if got := intOrZero(pos.Of); got != tc.of {
			t.Errorf("ParsePartOfSet(%q).Of = %d, want %d", tc.in, got, tc.of)
		}
	}
}

func TestPartOfSet_String(t *testing.T) {
	if got := NewPartOfSet(3, 12).String(); got != "3/12" {
		t.Errorf("String() = %q, want 3/12", got)
	}
	if got := NewPartOfSet(7, 0).String(); got != "7" {
		t.Errorf("String() = %q, want 7", got)
	}
}

func TestNewRating_Clamps(t *testing.T) {
	if r := NewRating("x", 1.7); *r.Rating != 1 {
		t.Errorf("rating = %v, want 1", *r.Rating)
	}
	if r := NewRating("x", -0.5); *r.Rating != 0 {
		t.Errorf("rating = %v, want 0", *r.Rating)
	}
}

func TestPictureType_String(t *testing.T) {
	if PictureFrontCover.String() != FrontCover {
		t.Errorf("PictureFrontCover = %q, want %q", PictureFrontCover.String(), FrontCover)
	}
	if PictureBackCover.String() != "Cover (back)" {
		t.Errorf("PictureBackCover = %q", PictureBackCover.String())
	}
	if PictureType(200).String() != "Other" {
		t.Errorf("out of range type = %q, want Other", PictureType(200).String())
	}
}

func TestPicture_String(t *testing.T) {
	p := Picture{Format: "image/png", Type: FrontCover, Data: make([]byte, 2048), Width: 500, Height: 500}
	want := "Cover (front) (500x500 PNG, 2KB)"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnsupportedFormatError_NoParser(t *testing.T) {
	err := &UnsupportedFormatError{Path: "x.bin", Reason: "no parser for audio/foo", NoParser: true}
	if !errors.Is(err, ErrNoParser) {
		t.Error("dispatch failure should match ErrNoParser")
	}

	rejected := &UnsupportedFormatError{Path: "x.mp4", Reason: "not an audio file"}
	if errors.Is(rejected, ErrNoParser) {
		t.Error("parser rejection should not match ErrNoParser")
	}
}

func TestUnknownKeyError_Suggestions(t *testing.T) {
	err := &UnknownKeyError{Name: "titel", Suggestions: []string{"title"}}
	if !strings.Contains(err.Error(), `did you mean title`) {
		t.Errorf("error = %q, want suggestion", err.Error())
	}
}

func TestParseVocabulary(t *testing.T) {
	v, err := ParseVocabulary("ID3v2.3")
	if err != nil || v != VocabID3v23 {
		t.Fatalf("ParseVocabulary() = %q, %v", v, err)
	}

	_, err = ParseVocabulary("id3v9")
	var uve *UnknownVocabularyError
	if !errors.As(err, &uve) {
		t.Fatalf("expected UnknownVocabularyError, got %v", err)
	}
}

func TestNative_Containers(t *testing.T) {
	var n Native
	n.Add(VocabID3v24, "TIT2", "a")
	n.Add(VocabID3v1, "title", "b")
	n.Add(VocabID3v24, "TPE1", "c")

	got := n.Containers()
	if len(got) != 2 || got[0] != VocabID3v24 || got[1] != VocabID3v1 {
		t.Errorf("Containers() = %v", got)
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
