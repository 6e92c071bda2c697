// Package aiff reads AIFF and AIFF-C files: the COMM chunk for audio
// properties, the text chunks, and an embedded ID3v2 tag.
package aiff

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/id3"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// Text chunks that are plain strings.
var textChunks = map[string]bool{
	"NAME": true,
	"AUTH": true,
	"(c) ": true,
	"ANNO": true,
}

// Chunks larger than this are not loaded.
const maxTextChunk = 1 << 20

type parser struct{}

func (p *parser) Name() string { return "aiff" }

// Parse walks the chunks of the FORM. Chunk bodies are padded to an even
// length.
func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binary.NewSafeReader(r, size, path)

	header, err := sr.Bytes(0, 12, "FORM header")
	if err != nil {
		return nil, fmt.Errorf("read FORM header: %w", err)
	}
	form := string(header[8:12])
	if string(header[0:4]) != "FORM" || (form != "AIFF" && form != "AIFC") {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: "invalid AIFF FORM header",
		}
	}

	n := &types.Native{}
	n.Audio.Container = form

	end := min(size, 8+int64(uint32(header[4])<<24|uint32(header[5])<<16|uint32(header[6])<<8|uint32(header[7])))
	var frames uint32
	for offset := int64(12); offset+8 <= end; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := sr.Bytes(offset, 4, "chunk id")
		if err != nil {
			n.Warn("metadata", err.Error(), offset)
			break
		}
		chunkSize, err := binary.Read[uint32](sr, offset+4, "chunk size")
		if err != nil {
			n.Warn("metadata", err.Error(), offset)
			break
		}
		body := offset + 8
		if body+int64(chunkSize) > size {
			n.Warn("metadata", fmt.Sprintf("chunk %q truncated", id), offset)
		}

		switch chunk := string(id); {
		case chunk == "COMM":
			if frames, err = parseComm(sr, body, form == "AIFC", n); err != nil {
				n.Warn("technical", fmt.Sprintf("failed to parse COMM: %v", err), body)
			}
		case chunk == "ID3 " || chunk == "id3 ":
			if _, err := id3.ReadV2(sr, body, n); err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse ID3 chunk: %v", err), body)
			}
		case chunk == "COMT":
			if err := parseComments(sr, body, int64(chunkSize), n); err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse COMT: %v", err), body)
			}
		case textChunks[chunk]:
			if chunkSize > maxTextChunk {
				n.Warn("metadata", fmt.Sprintf("%q chunk too large: %d bytes", chunk, chunkSize), offset)
				break
			}
			b, err := sr.Bytes(body, int(chunkSize), chunk)
			if err != nil {
				n.Warn("metadata", err.Error(), body)
				break
			}
			n.Add(types.VocabAIFF, chunk, text(b))
		}

		offset = body + int64(chunkSize) + int64(chunkSize&1)
	}

	if n.Audio.SampleRate > 0 && frames > 0 {
		seconds := float64(frames) / float64(n.Audio.SampleRate)
		n.Audio.Duration = time.Duration(seconds * float64(time.Second))
		if n.Audio.Lossless {
			n.Audio.Bitrate = n.Audio.SampleRate * n.Audio.BitDepth * n.Audio.Channels
		}
	}

	return n, nil
}

// parseComm reads the COMM chunk and returns the sample frame count.
func parseComm(sr *binary.SafeReader, off int64, aifc bool, n *types.Native) (uint32, error) {
	r := binary.NewReader(sr, off)
	channels, err := binary.ReadValue[uint16](r, "channels")
	if err != nil {
		return 0, err
	}
	frames, err := binary.ReadValue[uint32](r, "sample frames")
	if err != nil {
		return 0, err
	}
	bits, err := binary.ReadValue[uint16](r, "sample size")
	if err != nil {
		return 0, err
	}
	ext, err := r.ReadBytes(10, "sample rate")
	if err != nil {
		return 0, err
	}

	n.Audio.Channels = int(channels)
	n.Audio.BitDepth = int(bits)
	n.Audio.SampleRate = int(extendedToFloat(ext))
	n.Audio.Codec = "PCM"
	n.Audio.Lossless = true

	if aifc {
		compression, err := r.ReadString(4, "compression type")
		if err != nil {
			return frames, err
		}
		if codec, lossless, ok := compressionName(compression); ok {
			n.Audio.Codec = codec
			n.Audio.Lossless = lossless
		} else {
			n.Audio.Codec = strings.TrimSpace(compression)
			n.Audio.Lossless = false
		}
	}
	return frames, nil
}

// compressionName names the common AIFF-C compression types.
func compressionName(c string) (name string, lossless, ok bool) {
	switch c {
	case "NONE", "twos", "sowt", "raw ", "in24", "in32":
		return "PCM", true, true
	case "fl32", "FL32", "fl64", "FL64":
		return "PCM float", true, true
	case "alaw", "ALAW":
		return "A-law", false, true
	case "ulaw", "ULAW":
		return "µ-law", false, true
	case "ima4":
		return "IMA ADPCM", false, true
	}
	return "", false, false
}

// extendedToFloat converts an 80-bit IEEE 754 extended precision number.
func extendedToFloat(b []byte) float64 {
	sign := 1.0
	if b[0]&0x80 != 0 {
		sign = -1
	}
	exponent := int(b[0]&0x7F)<<8 | int(b[1])
	var mantissa uint64
	for _, c := range b[2:10] {
		mantissa = mantissa<<8 | uint64(c)
	}
	if exponent == 0 && mantissa == 0 {
		return 0
	}
	return sign * math.Ldexp(float64(mantissa), exponent-16383-63)
}

// parseComments reads the COMT chunk: a count, then timestamped comments.
func parseComments(sr *binary.SafeReader, off, size int64, n *types.Native) error {
	r := binary.NewReader(sr, off)
	count, err := binary.ReadValue[uint16](r, "comment count")
	if err != nil {
		return err
	}
	for range count {
		if r.Offset()+8 > off+size {
			return fmt.Errorf("comment runs past the chunk")
		}
		r.Skip(6) // timestamp, marker id
		length, err := binary.ReadValue[uint16](r, "comment length")
		if err != nil {
			return err
		}
		b, err := r.ReadBytes(int(length), "comment text")
		if err != nil {
			return err
		}
		r.Skip(int64(length & 1))
		n.Add(types.VocabAIFF, "COMT", text(b))
	}
	return nil
}

func text(b []byte) string {
	return strings.TrimRight(string(b), "\x00 ")
}

func init() {
	registry.Register(types.FormatAIFF, &parser{})
}
