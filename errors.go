package commontags

import (
	"errors"

	"github.com/simonhull/commontags/internal/types"
)

// ErrNoParser is wrapped by UnsupportedFormatError when no parser is
// registered for an input.
var ErrNoParser = types.ErrNoParser

// ErrInputTooLarge is returned by ParseStream for streams longer than the
// configured maximum size.
var ErrInputTooLarge = errors.New("input too large")

// OutOfBoundsError is returned when a read falls outside the input.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is returned for inputs no parser accepts.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is returned for containers that cannot be walked.
type CorruptedFileError = types.CorruptedFileError

// UnknownKeyError is returned for references to a canonical key that does
// not exist.
type UnknownKeyError = types.UnknownKeyError

// UnknownVocabularyError is returned for a vocabulary without a tag map.
type UnknownVocabularyError = types.UnknownVocabularyError

// ValueShapeMismatchError reports a tag value that does not fit its
// canonical key.
type ValueShapeMismatchError = types.ValueShapeMismatchError

// MalformedContentTypeError is returned by ParseContentType.
type MalformedContentTypeError = types.MalformedContentTypeError

// Warning is a non-fatal issue found while reading or mapping a file.
type Warning = types.Warning
