package vorbis

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/types"
)

// DecodeBlockPicture decodes a METADATA_BLOCK_PICTURE value: a base64
// encoded FLAC picture block.
func DecodeBlockPicture(value string) (types.Picture, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return types.Picture{}, fmt.Errorf("invalid base64: %w", err)
	}
	return ParsePictureBlock(data)
}

// ParsePictureBlock decodes a FLAC picture block:
//   - 4 bytes: picture type (uint32 BE)
//   - 4 bytes: MIME type length, then the MIME type
//   - 4 bytes: description length, then the UTF-8 description
//   - 4 bytes each: width, height, color depth, colors used
//   - 4 bytes: image data length, then the image data
func ParsePictureBlock(data []byte) (types.Picture, error) {
	// Minimum size: 8 fixed fields of 4 bytes with empty strings and data.
	if len(data) < 32 {
		return types.Picture{}, fmt.Errorf("picture block too small: %d bytes", len(data))
	}
	p := &blockReader{data: data}

	pictureType := p.uint32()
	mime := p.bytes(p.uint32())
	desc := p.bytes(p.uint32())
	width := p.uint32()
	height := p.uint32()
	p.uint32() // color depth
	p.uint32() // colors used
	img := p.bytes(p.uint32())
	if p.err != nil {
		return types.Picture{}, p.err
	}

	pic := types.Picture{
		Format:      string(mime),
		Type:        artwork.PictureType(int(pictureType)),
		Description: string(desc),
		Data:        img,
		Width:       int(width),
		Height:      int(height),
	}
	artwork.Complete(&pic)
	return pic, nil
}

// blockReader reads big-endian fields from a byte slice, remembering the
// first overrun.
type blockReader struct {
	data []byte
	off  int
	err  error
}

func (b *blockReader) uint32() uint32 {
	if b.err != nil {
		return 0
	}
	if b.off+4 > len(b.data) {
		b.err = fmt.Errorf("unexpected end of picture block at %d", b.off)
		return 0
	}
	v := binary.BigEndian.Uint32(b.data[b.off:])
	b.off += 4
	return v
}

func (b *blockReader) bytes(n uint32) []byte {
	if b.err != nil {
		return nil
	}
	if uint64(b.off)+uint64(n) > uint64(len(b.data)) {
		b.err = fmt.Errorf("field length %d exceeds picture block", n)
		return nil
	}
	out := b.data[b.off : b.off+int(n)]
	b.off += int(n)
	return out
}
