// Package id3 reads ID3v2 (2.2, 2.3, 2.4) and ID3v1 tags into native tag
// entries.
//
// Frames are emitted under the vocabulary of the tag version. Frames that
// carry a qualifier are keyed "FRAME:qualifier": TXXX and WXXX by their
// description, COMM by a non-empty description, UFID and PRIV by their
// owner, and involved-people lists (TIPL, TMCL, IPLS) by role.
package id3

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// HeaderSize is the size of the ID3v2 header and footer.
const HeaderSize = 10

// Header represents an ID3v2 tag header
type Header struct {
	Version  byte // Major version (2, 3 or 4)
	Revision byte
	Flags    byte
	Size     uint32 // Tag size excluding header and footer
}

// Header flags
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
	flagFooter            = 0x10
)

// Vocabulary returns the native vocabulary of frames in this tag.
func (h Header) Vocabulary() types.Vocabulary {
	switch h.Version {
	case 2:
		return types.VocabID3v22
	case 3:
		return types.VocabID3v23
	default:
		return types.VocabID3v24
	}
}

// TotalSize is the number of bytes the tag occupies in the file.
func (h Header) TotalSize() int64 {
	total := int64(HeaderSize) + int64(h.Size)
	if h.Version == 4 && h.Flags&flagFooter != 0 {
		total += HeaderSize
	}
	return total
}

// HasV2 reports whether an ID3v2 header starts at off.
func HasV2(sr *binutil.SafeReader, off int64) bool {
	_, err := ReadHeader(sr, off)
	return err == nil
}

// ReadHeader reads and validates the ID3v2 header at off.
func ReadHeader(sr *binutil.SafeReader, off int64) (Header, error) {
	buf := make([]byte, HeaderSize)
	if err := sr.ReadAt(buf, off, "ID3v2 header"); err != nil {
		return Header{}, err
	}
	if string(buf[0:3]) != "ID3" {
		return Header{}, fmt.Errorf("not an ID3v2 tag (missing ID3 header)")
	}
	h := Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     decodeSynchsafe(buf[6:10]),
	}
	if h.Version < 2 || h.Version > 4 {
		return Header{}, fmt.Errorf("unsupported ID3v2 version: 2.%d", h.Version)
	}
	return h, nil
}

// ReadV2 reads the ID3v2 tag at off and appends its frames to n. It
// returns the offset just past the tag, which is valid whenever the header
// could be read even if the frames could not.
func ReadV2(sr *binutil.SafeReader, off int64, n *types.Native) (int64, error) {
	h, err := ReadHeader(sr, off)
	if err != nil {
		return off, err
	}
	end := off + h.TotalSize()

	if h.Version == 2 && h.Flags&0x40 != 0 {
		// ID3v2.2 compression was never defined.
		n.Warn("metadata", "skipping compressed ID3v2.2 tag", off)
		return end, nil
	}

	// A tag claiming more than the file holds is read up to the end.
	size := min(int64(h.Size), sr.Size()-off-HeaderSize)
	body, err := sr.Bytes(off+HeaderSize, int(size), "ID3v2 tag body")
	if err != nil {
		return end, err
	}
	if size < int64(h.Size) {
		n.Warn("metadata", fmt.Sprintf("ID3v2 tag truncated: %d of %d bytes", size, h.Size), off)
	}

	// Before 2.4, unsynchronisation applies to the whole tag.
	if h.Version < 4 && h.Flags&flagUnsynchronisation != 0 {
		body = removeUnsync(body)
	}

	start, err := skipExtendedHeader(h, body)
	if err != nil {
		return end, err
	}

	readFrames(h, body[start:], off+HeaderSize+int64(start), n)
	return end, nil
}

func skipExtendedHeader(h Header, body []byte) (int, error) {
	if h.Version < 3 || h.Flags&flagExtendedHeader == 0 {
		return 0, nil
	}
	if len(body) < 4 {
		return 0, fmt.Errorf("extended header truncated")
	}
	var skip int
	if h.Version == 4 {
		// Synchsafe, including the size field itself.
		skip = int(decodeSynchsafe(body[0:4]))
	} else {
		skip = int(binary.BigEndian.Uint32(body[0:4])) + 4
	}
	if skip > len(body) {
		return 0, fmt.Errorf("extended header size %d exceeds tag", skip)
	}
	return skip, nil
}

// frameHeader describes one frame within the tag body.
type frameHeader struct {
	id    string
	size  int
	flags uint16
}

func (h Header) frameHeaderSize() int {
	if h.Version == 2 {
		return 6
	}
	return 10
}

func readFrames(h Header, body []byte, base int64, n *types.Native) {
	hs := h.frameHeaderSize()
	vocab := h.Vocabulary()

	for pos := 0; pos+hs <= len(body); {
		// Padding.
		if body[pos] == 0 {
			return
		}

		fh, ok := parseFrameHeader(h, body, pos)
		if !ok {
			n.Warn("metadata", fmt.Sprintf("invalid ID3v2 frame header at offset %d", base+int64(pos)), base+int64(pos))
			return
		}
		start := pos + hs
		if start+fh.size > len(body) {
			n.Warn("metadata", fmt.Sprintf("frame %s: size %d exceeds tag", fh.id, fh.size), base+int64(pos))
			return
		}

		data, err := frameData(h, fh, body[start:start+fh.size])
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("frame %s: %v", fh.id, err), base+int64(pos))
		} else {
			decodeFrame(n, vocab, fh.id, data, base+int64(pos))
		}
		pos = start + fh.size
	}
}

func parseFrameHeader(h Header, body []byte, pos int) (frameHeader, bool) {
	if h.Version == 2 {
		id := string(body[pos : pos+3])
		if !validID(id) {
			return frameHeader{}, false
		}
		size := int(body[pos+3])<<16 | int(body[pos+4])<<8 | int(body[pos+5])
		return frameHeader{id: id, size: size}, true
	}

	id := string(body[pos : pos+4])
	if !validID(id) {
		return frameHeader{}, false
	}
	raw := body[pos+4 : pos+8]
	flags := binary.BigEndian.Uint16(body[pos+8 : pos+10])
	plain := int(binary.BigEndian.Uint32(raw))
	if h.Version == 3 {
		return frameHeader{id: id, size: plain, flags: flags}, true
	}

	// ID3v2.4 sizes are synchsafe, but some writers (older iTunes) store
	// plain integers. Prefer whichever lands on a plausible next frame.
	size := int(decodeSynchsafe(raw))
	if raw[0]|raw[1]|raw[2]|raw[3] >= 0x80 || (size != plain && !plausibleNext(body, pos+10+size) && plausibleNext(body, pos+10+plain)) {
		size = plain
	}
	return frameHeader{id: id, size: size, flags: flags}, true
}

func plausibleNext(body []byte, pos int) bool {
	switch {
	case pos == len(body):
		return true
	case pos > len(body):
		return false
	case body[pos] == 0:
		return true
	case pos+4 <= len(body):
		return validID(string(body[pos : pos+4]))
	}
	return false
}

// Frame format flags
const (
	v23Compression = 0x0080
	v23Encryption  = 0x0040
	v23Grouping    = 0x0020

	v24Grouping          = 0x0040
	v24Compression       = 0x0008
	v24Encryption        = 0x0004
	v24Unsynchronisation = 0x0002
	v24DataLength        = 0x0001
)

// frameData undoes the per-frame encodings announced by the frame flags.
func frameData(h Header, fh frameHeader, data []byte) ([]byte, error) {
	switch h.Version {
	case 3:
		if fh.flags&v23Encryption != 0 {
			return nil, fmt.Errorf("encrypted frame")
		}
		compressed := fh.flags&v23Compression != 0
		if compressed {
			if len(data) < 4 {
				return nil, fmt.Errorf("compressed frame truncated")
			}
			data = data[4:] // decompressed size
		}
		if fh.flags&v23Grouping != 0 {
			if len(data) < 1 {
				return nil, fmt.Errorf("grouped frame truncated")
			}
			data = data[1:]
		}
		if compressed {
			return inflate(data)
		}
	case 4:
		if fh.flags&v24Encryption != 0 {
			return nil, fmt.Errorf("encrypted frame")
		}
		if fh.flags&v24Grouping != 0 {
			if len(data) < 1 {
				return nil, fmt.Errorf("grouped frame truncated")
			}
			data = data[1:]
		}
		if fh.flags&v24DataLength != 0 {
			if len(data) < 4 {
				return nil, fmt.Errorf("data length indicator truncated")
			}
			data = data[4:]
		}
		if fh.flags&v24Unsynchronisation != 0 || h.Flags&flagUnsynchronisation != 0 {
			data = removeUnsync(data)
		}
		if fh.flags&v24Compression != 0 {
			return inflate(data)
		}
	}
	return data, nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

// removeUnsync reverses unsynchronisation: every 0xFF 0x00 becomes 0xFF.
func removeUnsync(data []byte) []byte {
	if !bytes.Contains(data, []byte{0xFF, 0x00}) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i++
		}
	}
	return out
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte)
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

func validID(id string) bool {
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return id != ""
}
