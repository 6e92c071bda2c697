// Package mp3 reads MPEG audio and ADTS AAC streams. Tags come from a
// leading ID3v2 tag and the trailing APEv2 and ID3v1 tags; audio
// properties from the first frame header and any Xing, Info or VBRI
// header.
package mp3

import (
	"context"
	"fmt"
	"io"

	"github.com/simonhull/commontags/internal/ape"
	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/id3"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

type parser struct {
	adts bool
}

func (p *parser) Name() string {
	if p.adts {
		return "adts"
	}
	return "mpeg"
}

func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binutil.NewSafeReader(r, size, path)
	n := &types.Native{}

	// Some files carry several ID3v2 tags back to back.
	audioStart := int64(0)
	for id3.HasV2(sr, audioStart) {
		end, err := id3.ReadV2(sr, audioStart, n)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse ID3v2 tag: %v", err), audioStart)
		}
		if end <= audioStart {
			break
		}
		audioStart = end
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	audioEnd := ape.ReadTail(sr, n)

	var err error
	if p.adts {
		err = parseADTS(ctx, sr, audioStart, audioEnd, n)
	} else {
		err = parseTechnicalInfo(sr, audioStart, audioEnd, n)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		n.Warn("technical", fmt.Sprintf("failed to parse audio frames: %v", err), audioStart)
	}

	return n, nil
}

func init() {
	registry.Register(types.FormatMPEG, &parser{})
	registry.Register(types.FormatADTS, &parser{adts: true})
}
