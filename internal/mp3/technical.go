package mp3

import (
	"encoding/binary"
	"fmt"
	"time"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// maxSyncSearch bounds how far past the tags the first frame is searched.
const maxSyncSearch = 1 << 20

// MPEG version ids (header bits 19-20).
const (
	mpeg25 = 0
	mpeg2  = 2
	mpeg1  = 3
)

// Bitrates in kbps, indexed by [v1 layer I, II, III, v2 layer I, II/III].
var bitrateTable = [5][15]int{
	{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
}

var sampleRateTable = map[uint32][3]int{
	mpeg1:  {44100, 48000, 32000},
	mpeg2:  {22050, 24000, 16000},
	mpeg25: {11025, 12000, 8000},
}

// frameHeader is a decoded MPEG audio frame header.
type frameHeader struct {
	version    uint32
	layer      int // 1, 2 or 3
	bitrate    int // bps
	sampleRate int
	padding    bool
	mono       bool
}

func decodeHeader(h uint32) (frameHeader, error) {
	if h&0xFFE00000 != 0xFFE00000 {
		return frameHeader{}, fmt.Errorf("invalid frame sync")
	}
	version := (h >> 19) & 0x3
	if version == 1 {
		return frameHeader{}, fmt.Errorf("reserved MPEG version")
	}
	layerBits := (h >> 17) & 0x3
	if layerBits == 0 {
		return frameHeader{}, fmt.Errorf("reserved layer")
	}
	layer := 4 - int(layerBits)

	brIdx := (h >> 12) & 0xF
	srIdx := (h >> 10) & 0x3
	if brIdx == 0 || brIdx == 0xF || srIdx == 3 {
		return frameHeader{}, fmt.Errorf("unsupported bitrate or sample rate index")
	}

	table := layer - 1
	if version != mpeg1 {
		table = 3
		if layer > 1 {
			table = 4
		}
	}

	return frameHeader{
		version:    version,
		layer:      layer,
		bitrate:    bitrateTable[table][brIdx] * 1000,
		sampleRate: sampleRateTable[version][srIdx],
		padding:    (h>>9)&0x1 == 1,
		mono:       (h>>6)&0x3 == 3,
	}, nil
}

func (f frameHeader) samplesPerFrame() int {
	switch {
	case f.layer == 1:
		return 384
	case f.layer == 3 && f.version != mpeg1:
		return 576
	default:
		return 1152
	}
}

func (f frameHeader) frameLength() int {
	pad := 0
	if f.padding {
		pad = 1
	}
	if f.layer == 1 {
		return (12*f.bitrate/f.sampleRate + pad) * 4
	}
	return f.samplesPerFrame()/8*f.bitrate/f.sampleRate + pad
}

// sideInfoSize is the size of the Layer III side information that
// precedes a Xing header.
func (f frameHeader) sideInfoSize() int64 {
	switch {
	case f.version == mpeg1 && !f.mono:
		return 32
	case f.version == mpeg1, !f.mono:
		return 17
	default:
		return 9
	}
}

func (f frameHeader) codec() string {
	return fmt.Sprintf("MP%d", f.layer)
}

// findFrame finds the first frame header at or after off whose successor
// frame is also valid, which rejects most false syncs inside tag data.
func findFrame(sr *binutil.SafeReader, off, end int64) (frameHeader, int64, error) {
	limit := min(end-4, off+maxSyncSearch)
	for ; off < limit; off++ {
		h, err := binutil.Read[uint32](sr, off, "MPEG frame header")
		if err != nil {
			return frameHeader{}, 0, err
		}
		fh, err := decodeHeader(h)
		if err != nil {
			continue
		}
		next := off + int64(fh.frameLength())
		if next+4 <= end {
			nh, err := binutil.Read[uint32](sr, next, "MPEG frame header")
			if err != nil {
				continue
			}
			if _, err := decodeHeader(nh); err != nil {
				continue
			}
		}
		return fh, off, nil
	}
	return frameHeader{}, 0, fmt.Errorf("no valid MPEG frame found")
}

// parseTechnicalInfo extracts bitrate, sample rate, codec and duration
// from the audio between start and end.
func parseTechnicalInfo(sr *binutil.SafeReader, start, end int64, n *types.Native) error {
	fh, off, err := findFrame(sr, start, end)
	if err != nil {
		return err
	}

	n.Audio.Codec = fh.codec()
	n.Audio.Container = "MPEG"
	n.Audio.SampleRate = fh.sampleRate
	n.Audio.Channels = 2
	if fh.mono {
		n.Audio.Channels = 1
	}
	n.Audio.Bitrate = fh.bitrate

	if frames, vbr, ok := parseVBRHeader(sr, off, fh); ok {
		n.Audio.Duration = framesDuration(frames, fh)
		n.Audio.VBR = vbr
		if secs := n.Audio.Duration.Seconds(); secs > 0 {
			n.Audio.Bitrate = int(float64(end-off) * 8 / secs)
		}
		return nil
	}

	// CBR - estimate from bitrate and audio size
	n.Audio.Duration = time.Duration(float64(end-off) * 8 / float64(fh.bitrate) * float64(time.Second))
	return nil
}

// parseVBRHeader looks for a Xing/Info header after the side information
// or a VBRI header 32 bytes into the frame. It returns the frame count and
// whether the stream is VBR ("Info" marks a CBR stream).
func parseVBRHeader(sr *binutil.SafeReader, frameOffset int64, fh frameHeader) (uint32, bool, bool) {
	buf := make([]byte, 12)
	if err := sr.ReadAt(buf, frameOffset+4+fh.sideInfoSize(), "Xing header"); err == nil {
		tag := string(buf[0:4])
		if tag == "Xing" || tag == "Info" {
			flags := binary.BigEndian.Uint32(buf[4:8])
			if flags&0x0001 == 0 {
				return 0, false, false
			}
			return binary.BigEndian.Uint32(buf[8:12]), tag == "Xing", true
		}
	}

	vbri := make([]byte, 18)
	if err := sr.ReadAt(vbri, frameOffset+36, "VBRI header"); err == nil && string(vbri[0:4]) == "VBRI" {
		return binary.BigEndian.Uint32(vbri[14:18]), true, true
	}
	return 0, false, false
}

func framesDuration(frames uint32, fh frameHeader) time.Duration {
	samples := uint64(frames) * uint64(fh.samplesPerFrame())
	return time.Duration(float64(samples) / float64(fh.sampleRate) * float64(time.Second))
}
