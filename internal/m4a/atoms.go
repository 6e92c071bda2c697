// Package m4a reads ISO base media files (M4A, M4B, MP4, 3GP): the iTunes
// ilst item list for tags, and the movie and sample description boxes for
// audio properties.
package m4a

import (
	"fmt"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// Atom represents an MP4 atom (box).
type Atom struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position in file
	Extended bool   // Whether this uses 64-bit extended size
}

// DataSize returns the size of the atom's data (excluding header)
func (a *Atom) DataSize() uint64 {
	headerSize := uint64(8)
	if a.Extended {
		headerSize = 16
	}
	if a.Size < headerSize {
		return 0
	}
	return a.Size - headerSize
}

// DataOffset returns the file offset where the atom's data starts
func (a *Atom) DataOffset() int64 {
	headerSize := int64(8)
	if a.Extended {
		headerSize = 16
	}
	return a.Offset + headerSize
}

// End returns the offset just past the atom.
func (a *Atom) End() int64 {
	return a.Offset + int64(a.Size)
}

// readAtomHeader reads an atom header at the given offset. A size of zero
// means the atom runs to end, the last atom of the file or its parent.
func readAtomHeader(sr *binary.SafeReader, offset, end int64) (*Atom, error) {
	size32, err := binary.Read[uint32](sr, offset, "atom size")
	if err != nil {
		return nil, err
	}

	typeBytes := make([]byte, 4)
	if err := sr.ReadAt(typeBytes, offset+4, "atom type"); err != nil {
		return nil, err
	}

	atom := &Atom{
		Type:   string(typeBytes),
		Offset: offset,
	}

	switch size32 {
	case 0:
		atom.Size = uint64(end - offset)
	case 1:
		size64, err := binary.Read[uint64](sr, offset+8, "extended atom size")
		if err != nil {
			return nil, err
		}
		atom.Size = size64
		atom.Extended = true
	default:
		atom.Size = uint64(size32)
	}

	if atom.Size < 8 {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("invalid atom size %d (minimum is 8)", atom.Size),
		}
	}
	if atom.End() > end {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("atom %q overruns its parent (%d > %d)", atom.Type, atom.End(), end),
		}
	}

	return atom, nil
}

// children calls fn for each atom in [start, end). fn returns false to
// stop the walk.
func children(sr *binary.SafeReader, start, end int64, fn func(*Atom) bool) error {
	for offset := start; offset+8 <= end; {
		atom, err := readAtomHeader(sr, offset, end)
		if err != nil {
			return err
		}
		if !fn(atom) {
			return nil
		}
		offset = atom.End()
	}
	return nil
}

// findAtom searches for an atom of the given type within a range.
func findAtom(sr *binary.SafeReader, start, end int64, atomType string) (*Atom, error) {
	var found *Atom
	err := children(sr, start, end, func(a *Atom) bool {
		if a.Type == atomType {
			found = a
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("atom '%s' not found", atomType)
	}
	return found, nil
}

// findPath descends through nested atoms, e.g. "moov", "udta", "meta".
func findPath(sr *binary.SafeReader, parent *Atom, path ...string) (*Atom, error) {
	cur := parent
	for _, typ := range path {
		next, err := findAtom(sr, childStart(sr, cur), cur.End(), typ)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// childStart returns where the children of a start. The ISO meta atom is a
// full box with version and flags first; the QuickTime one is not.
func childStart(sr *binary.SafeReader, a *Atom) int64 {
	if a.Type != "meta" {
		return a.DataOffset()
	}
	typ := make([]byte, 4)
	if err := sr.ReadAt(typ, a.DataOffset()+4, "meta child type"); err == nil && string(typ) == "hdlr" {
		return a.DataOffset()
	}
	return a.DataOffset() + 4
}
