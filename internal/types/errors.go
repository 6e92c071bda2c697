package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoParser is wrapped by UnsupportedFormatError when dispatch finds no
// parser for a content type, extension or file signature.
var ErrNoParser = errors.New("no parser available")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when no parser can handle the input.
type UnsupportedFormatError struct {
	Path   string
	Reason string
	// NoParser marks dispatch failures, as opposed to a parser rejecting
	// the input it was handed.
	NoParser bool
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return "unsupported format: " + e.Reason
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Unwrap lets errors.Is(err, ErrNoParser) detect dispatch failures.
func (e *UnsupportedFormatError) Unwrap() error {
	if e.NoParser {
		return ErrNoParser
	}
	return nil
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// UnknownKeyError reports a reference to a canonical key that does not
// exist. It indicates a defect in a tag map or in mapping configuration.
type UnknownKeyError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownKeyError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown canonical key %q (did you mean %s?)",
			e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("unknown canonical key %q", e.Name)
}

// UnknownVocabularyError reports a reference to a native vocabulary that
// has no tag map.
type UnknownVocabularyError struct {
	Vocabulary Vocabulary
}

func (e *UnknownVocabularyError) Error() string {
	return fmt.Sprintf("unknown tag vocabulary %q", string(e.Vocabulary))
}

// ValueShapeMismatchError is returned when a mapped tag's value cannot be
// stored under its canonical key. The entry is skipped; the rest of the
// file is unaffected.
type ValueShapeMismatchError struct {
	Key        string
	Vocabulary Vocabulary
	NativeKey  string
	Value      any
	Reason     string
}

func (e *ValueShapeMismatchError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %s (value %s)",
		e.Vocabulary, e.NativeKey, e.Key, e.Reason, describeValue(e.Value))
}

// MalformedContentTypeError is returned for a content type without a
// type/subtype head.
type MalformedContentTypeError struct {
	Raw string
}

func (e *MalformedContentTypeError) Error() string {
	return fmt.Sprintf("malformed content type %q: missing '/'", e.Raw)
}

// Warning represents a non-fatal issue encountered during parsing or
// normalization.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - Invalid encoding in a tag
//   - Corrupted picture data
//   - A tag value that does not fit its canonical key
type Warning struct {
	// Stage where the warning occurred
	Stage string // "metadata", "technical", "picture", "mapping"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

func describeValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(v))
	case string:
		if len(v) > 40 {
			v = v[:40] + "..."
		}
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%T(%v)", v, v)
	}
}
