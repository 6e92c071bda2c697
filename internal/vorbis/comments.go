// Package vorbis reads Vorbis comment blocks.
//
// Vorbis comments are used by FLAC, Ogg Vorbis and Opus. The format is
// identical everywhere: a vendor string followed by UTF-8 "KEY=VALUE"
// fields, all lengths 32-bit little-endian. Field names are
// case-insensitive and may repeat.
package vorbis

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// Split splits a "KEY=VALUE" comment at the first '='.
func Split(comment string) (key, value string, err error) {
	key, value, ok := strings.Cut(comment, "=")
	if !ok {
		return "", "", fmt.Errorf("missing '=' in comment: %.40q", comment)
	}
	if key == "" {
		return "", "", fmt.Errorf("empty field name in comment: %.40q", comment)
	}
	return key, value, nil
}

// ReadComments reads the comment block at offset and appends each field to
// n in file order. Pictures stored as METADATA_BLOCK_PICTURE or legacy
// COVERART fields are decoded; everything else is passed on as text.
// Malformed fields become warnings. It returns the vendor string and the
// offset just past the last field.
func ReadComments(sr *binary.SafeReader, offset int64, n *types.Native) (string, int64, error) {
	r := binary.NewReader(sr, offset)

	vendorLength, err := binary.ReadValueLE[uint32](r, "vendor string length")
	if err != nil {
		return "", offset, err
	}
	vendor, err := r.ReadString(int(vendorLength), "vendor string")
	if err != nil {
		return "", offset, err
	}

	count, err := binary.ReadValueLE[uint32](r, "number of comments")
	if err != nil {
		return vendor, r.Offset(), err
	}
	// Each field needs at least its 4-byte length.
	if int64(count) > r.Remaining()/4 {
		return vendor, r.Offset(), fmt.Errorf("comment count %d exceeds block", count)
	}

	for i := range count {
		length, err := binary.ReadValueLE[uint32](r, "comment length")
		if err != nil {
			return vendor, r.Offset(), fmt.Errorf("read comment %d length: %w", i, err)
		}
		at := r.Offset()
		comment, err := r.ReadString(int(length), fmt.Sprintf("comment %d", i))
		if err != nil {
			return vendor, r.Offset(), fmt.Errorf("read comment %d: %w", i, err)
		}
		addComment(n, comment, at)
	}
	return vendor, r.Offset(), nil
}

// AddComment appends a single "KEY=VALUE" field to n.
func AddComment(n *types.Native, comment string) {
	addComment(n, comment, 0)
}

func addComment(n *types.Native, comment string, at int64) {
	key, value, err := Split(comment)
	if err != nil {
		n.Warn("metadata", fmt.Sprintf("invalid Vorbis comment: %v", err), at)
		return
	}

	switch strings.ToUpper(key) {
	case "METADATA_BLOCK_PICTURE":
		pic, err := DecodeBlockPicture(value)
		if err != nil {
			n.Warn("picture", fmt.Sprintf("invalid METADATA_BLOCK_PICTURE: %v", err), at)
			return
		}
		n.Add(types.VocabVorbis, key, pic)
	case "COVERART":
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
		if err != nil {
			n.Warn("picture", fmt.Sprintf("invalid COVERART: %v", err), at)
			return
		}
		pic := types.Picture{Data: data}
		artwork.Complete(&pic)
		n.Add(types.VocabVorbis, key, pic)
	case "COVERARTMIME":
		// Describes COVERART, which is typed by sniffing instead.
	default:
		n.Add(types.VocabVorbis, key, value)
	}
}
