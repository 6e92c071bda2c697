// Package registry dispatches an input to the parsers that can read it,
// by content type, file extension or file signature.
package registry

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/simonhull/commontags/internal/types"
)

// Parser reads one container format into its native tag stream.
type Parser interface {
	// Name identifies the parser in logs and options ("flac", "taglib").
	Name() string

	// Parse reads the native tags and audio properties of r. Format, Path
	// and Size are filled in by the caller.
	Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error)
}

var (
	mu        sync.RWMutex
	parsers   = make(map[types.Format]Parser)
	fallbacks = make(map[types.Format][]Parser)
)

// Register sets the primary parser for a format, replacing any previous
// one. Format packages call it from init.
func Register(format types.Format, parser Parser) {
	mu.Lock()
	defer mu.Unlock()
	parsers[format] = parser
}

// RegisterFallback adds a parser tried after the primary one fails, or
// used alone when a format has no primary parser.
func RegisterFallback(format types.Format, parser Parser) {
	mu.Lock()
	defer mu.Unlock()
	fallbacks[format] = append(fallbacks[format], parser)
}

// Get returns the primary parser for a format, or nil.
func Get(format types.Format) Parser {
	mu.RLock()
	defer mu.RUnlock()
	return parsers[format]
}

// Parsers returns every parser for a format in the order they should be
// tried: the primary first, then fallbacks in registration order.
func Parsers(format types.Format) []Parser {
	mu.RLock()
	defer mu.RUnlock()
	var out []Parser
	if p, ok := parsers[format]; ok {
		out = append(out, p)
	}
	return append(out, slices.Clone(fallbacks[format])...)
}

// Formats returns the formats with at least one parser.
func Formats() []types.Format {
	mu.RLock()
	defer mu.RUnlock()
	var out []types.Format
	for f := types.FormatUnknown + 1; f <= types.FormatDSDIFF; f++ {
		if parsers[f] != nil || len(fallbacks[f]) > 0 {
			out = append(out, f)
		}
	}
	return out
}
