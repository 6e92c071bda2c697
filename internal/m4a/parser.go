package m4a

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

type parser struct{}

func (p *parser) Name() string { return "mp4" }

// Parse walks the top-level atoms for ftyp, moov and mdat. Tags live at
// moov/udta/meta/ilst, with moov/meta/ilst as a fallback some writers use.
func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binary.NewSafeReader(r, size, path)
	n := &types.Native{}

	var ftyp, moov, mdat *Atom
	err := children(sr, 0, size, func(a *Atom) bool {
		switch a.Type {
		case "ftyp":
			ftyp = a
		case "moov":
			moov = a
		case "mdat":
			if mdat == nil {
				mdat = a
			}
		}
		return ctx.Err() == nil
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err != nil {
		if moov == nil {
			return nil, fmt.Errorf("walk top-level atoms: %w", err)
		}
		n.Warn("metadata", fmt.Sprintf("stopped at damaged top-level atom: %v", err), 0)
	}
	if ftyp == nil {
		return nil, &types.CorruptedFileError{Path: path, Reason: "missing ftyp atom"}
	}

	n.Audio.Container = containerName(sr, ftyp)
	if moov == nil {
		n.Warn("metadata", "missing moov atom", 0)
		return n, nil
	}

	ilst, err := findPath(sr, moov, "udta", "meta", "ilst")
	if err != nil {
		ilst, err = findPath(sr, moov, "meta", "ilst")
	}
	if err == nil {
		if err := readIlst(sr, ilst, n); err != nil {
			n.Warn("metadata", err.Error(), ilst.Offset)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := parseTechnicalInfo(sr, moov, n); err != nil {
		n.Warn("technical", err.Error(), moov.Offset)
	}
	if n.Audio.Bitrate == 0 && mdat != nil && n.Audio.Duration > 0 {
		n.Audio.Bitrate = int(float64(mdat.DataSize()) * 8 / n.Audio.Duration.Seconds())
	}

	return n, nil
}

// containerName reports the major brand, e.g. "M4A" or "mp42".
func containerName(sr *binary.SafeReader, ftyp *Atom) string {
	brand, err := sr.Bytes(ftyp.DataOffset(), 4, "major brand")
	if err != nil {
		return "MP4"
	}
	return strings.TrimSpace(string(brand))
}

func init() {
	registry.Register(types.FormatMP4, &parser{})
}
