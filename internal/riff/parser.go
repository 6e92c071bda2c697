// Package riff reads RIFF WAVE files. The fmt chunk and the LIST/INFO
// tags are decoded by go-audio/wav; an embedded "id3 " chunk is read with
// the ID3v2 reader.
package riff

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/wav"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/id3"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// WAVE format tags
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatALaw       = 6
	formatMuLaw      = 7
	formatExtensible = 0xFFFE
)

type parser struct{}

func (p *parser) Name() string { return "riff" }

// Parse reads the audio format and INFO tags, then looks for an ID3 chunk.
func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	d := wav.NewDecoder(io.NewSectionReader(r, 0, size))
	if !d.IsValidFile() {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: "invalid RIFF WAVE header",
		}
	}

	n := &types.Native{}
	n.Audio.Container = "WAVE"
	n.Audio.SampleRate = int(d.SampleRate)
	n.Audio.Channels = int(d.NumChans)
	n.Audio.BitDepth = int(d.BitDepth)
	n.Audio.Bitrate = int(d.AvgBytesPerSec) * 8
	n.Audio.Codec, n.Audio.Lossless = codecName(d.WavAudioFormat)

	sr := binary.NewSafeReader(r, size, path)
	if _, dataSize, ok := findChunk(sr, "data"); ok && d.AvgBytesPerSec > 0 {
		seconds := float64(dataSize) / float64(d.AvgBytesPerSec)
		n.Audio.Duration = time.Duration(seconds * float64(time.Second))
	} else if duration, err := d.Duration(); err == nil {
		n.Audio.Duration = duration
	} else {
		n.Warn("technical", fmt.Sprintf("failed to calculate duration: %v", err), 0)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.ReadMetadata()
	if err := d.Err(); err != nil && err != io.EOF {
		n.Warn("metadata", fmt.Sprintf("failed to read INFO chunk: %v", err), 0)
	}
	if d.Metadata != nil {
		addInfo(n, d.Metadata)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if off, _, ok := findChunk(sr, "id3 ", "ID3 "); ok {
		if _, err := id3.ReadV2(sr, off, n); err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse ID3 chunk: %v", err), off)
		}
	}

	return n, nil
}

// addInfo emits the INFO fields go-audio/wav decodes, keyed by their
// chunk ids.
func addInfo(n *types.Native, m *wav.Metadata) {
	fields := []struct {
		id    string
		value string
	}{
		{"INAM", m.Title},
		{"IART", m.Artist},
		{"IPRD", m.Product},
		{"ITRK", m.TrackNbr},
		{"ICRD", m.CreationDate},
		{"IGNR", m.Genre},
		{"ICMT", m.Comments},
		{"ICOP", m.Copyright},
		{"IENG", m.Engineer},
		{"ITCH", m.Technician},
		{"IKEY", m.Keywords},
		{"IMED", m.Medium},
		{"ISBJ", m.Subject},
		{"ISFT", m.Software},
		{"ISRC", m.Source},
		{"IARL", m.Location},
	}
	for _, f := range fields {
		if f.value != "" {
			n.Add(types.VocabRIFFInfo, f.id, f.value)
		}
	}
}

func codecName(format uint16) (string, bool) {
	switch format {
	case formatPCM, formatExtensible:
		return "PCM", true
	case formatIEEEFloat:
		return "PCM float", true
	case formatALaw:
		return "A-law", false
	case formatMuLaw:
		return "µ-law", false
	default:
		return fmt.Sprintf("0x%04X", format), false
	}
}

// findChunk returns the body offset and size of the first top-level chunk
// with one of the given ids.
func findChunk(sr *binary.SafeReader, ids ...string) (int64, uint32, bool) {
	for offset := int64(12); offset+8 <= sr.Size(); {
		id, err := sr.Bytes(offset, 4, "chunk id")
		if err != nil {
			return 0, 0, false
		}
		size, err := binary.ReadLE[uint32](sr, offset+4, "chunk size")
		if err != nil {
			return 0, 0, false
		}
		for _, want := range ids {
			if string(id) == want {
				return offset + 8, size, true
			}
		}
		offset += 8 + int64(size) + int64(size&1)
	}
	return 0, 0, false
}

func init() {
	registry.Register(types.FormatRIFF, &parser{})
}
