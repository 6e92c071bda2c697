package ape

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/id3"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// parser reads files whose native tags are APEv2 items at the end of the
// stream: Monkey's Audio, WavPack and Musepack, plus bare APEv2-tagged
// files. Audio properties come from the stream header when it is one of
// the known ones.
type parser struct{}

func (p *parser) Name() string { return "apev2" }

func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binutil.NewSafeReader(r, size, path)
	n := &types.Native{}

	start := int64(0)
	if id3.HasV2(sr, 0) {
		end, err := id3.ReadV2(sr, 0, n)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse leading ID3v2 tag: %v", err), 0)
		}
		start = end
	}

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, start, "stream magic"); err != nil {
		return nil, fmt.Errorf("read stream magic: %w", err)
	}

	var err error
	switch {
	case string(magic) == "MAC ":
		err = monkeysAudio(sr, start, n)
	case string(magic) == "wvpk":
		err = wavPack(sr, start, n)
	case string(magic[:3]) == "MP+":
		err = musepack7(sr, start, n)
	case string(magic) == "MPCK":
		n.Audio.Codec = "Musepack SV8"
		n.Audio.Container = "Musepack"
	}
	if err != nil {
		n.Warn("technical", err.Error(), start)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ReadTail(sr, n)
	return n, nil
}

// ReadTail reads the trailing tags of a stream: an APEv2 tag, which may be
// followed by an ID3v1 trailer. It returns the offset where the tags
// start. ID3v1 tags are placed ahead of every tag already in n.
func ReadTail(sr *binutil.SafeReader, n *types.Native) int64 {
	end := sr.Size()
	var v1 types.Native
	if id3.HasV1(sr) {
		end, _ = id3.ReadV1(sr, &v1)
	}
	if Has(sr, end) {
		start, err := Read(sr, end, n)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse APEv2 tag: %v", err), end)
		}
		end = start
	}
	// ID3v1 is the least specific source, so richer tags read earlier
	// must overwrite it.
	n.Tags = append(v1.Tags, n.Tags...)
	return end
}

// monkeysAudio reads the Monkey's Audio descriptor and header.
func monkeysAudio(sr *binutil.SafeReader, off int64, n *types.Native) error {
	n.Audio.Codec = "Monkey's Audio"
	n.Audio.Container = "APE"
	n.Audio.Lossless = true

	buf, err := sr.Bytes(off, 32, "Monkey's Audio header")
	if err != nil {
		return err
	}
	le := binary.LittleEndian
	version := le.Uint16(buf[4:])

	var (
		blocksPerFrame, finalFrameBlocks, totalFrames uint32
		bitsPerSample, channels                       uint16
		sampleRate                                    uint32
	)
	if version >= 3980 {
		descriptor := int64(le.Uint32(buf[8:]))
		h, err := sr.Bytes(off+descriptor, 24, "Monkey's Audio header")
		if err != nil {
			return err
		}
		blocksPerFrame = le.Uint32(h[4:])
		finalFrameBlocks = le.Uint32(h[8:])
		totalFrames = le.Uint32(h[12:])
		bitsPerSample = le.Uint16(h[16:])
		channels = le.Uint16(h[18:])
		sampleRate = le.Uint32(h[20:])
	} else {
		compression := le.Uint16(buf[6:])
		flags := le.Uint16(buf[8:])
		channels = le.Uint16(buf[10:])
		sampleRate = le.Uint32(buf[12:])
		totalFrames = le.Uint32(buf[24:])
		finalFrameBlocks = le.Uint32(buf[28:])
		switch {
		case version >= 3950:
			blocksPerFrame = 73728 * 4
		case version >= 3900, version >= 3800 && compression == 4000:
			blocksPerFrame = 73728
		default:
			blocksPerFrame = 9216
		}
		switch {
		case flags&0x1 != 0:
			bitsPerSample = 8
		case flags&0x8 != 0:
			bitsPerSample = 24
		default:
			bitsPerSample = 16
		}
	}

	n.Audio.SampleRate = int(sampleRate)
	n.Audio.Channels = int(channels)
	n.Audio.BitDepth = int(bitsPerSample)
	if sampleRate > 0 && totalFrames > 0 {
		samples := uint64(totalFrames-1)*uint64(blocksPerFrame) + uint64(finalFrameBlocks)
		n.Audio.Duration = samplesDuration(samples, sampleRate)
	}
	return nil
}

var wavPackRates = []uint32{
	6000, 8000, 9600, 11025, 12000, 16000, 22050, 24000,
	32000, 44100, 48000, 64000, 88200, 96000, 192000,
}

// wavPack reads the first WavPack block header.
func wavPack(sr *binutil.SafeReader, off int64, n *types.Native) error {
	n.Audio.Codec = "WavPack"
	n.Audio.Container = "WavPack"

	h, err := sr.Bytes(off, 32, "WavPack block header")
	if err != nil {
		return err
	}
	le := binary.LittleEndian
	totalSamples := le.Uint32(h[12:])
	flags := le.Uint32(h[24:])

	n.Audio.BitDepth = int(flags&0x3+1) * 8
	n.Audio.Channels = 2
	if flags&0x4 != 0 {
		n.Audio.Channels = 1
	}
	// Hybrid mode without a correction file is lossy.
	n.Audio.Lossless = flags&0x8 == 0
	if idx := (flags >> 23) & 0xF; int(idx) < len(wavPackRates) {
		n.Audio.SampleRate = int(wavPackRates[idx])
	}
	if n.Audio.SampleRate > 0 && totalSamples != 0xFFFFFFFF {
		n.Audio.Duration = samplesDuration(uint64(totalSamples), uint32(n.Audio.SampleRate))
	}
	return nil
}

var musepackRates = []uint32{44100, 48000, 37800, 32000}

// musepack7 reads a Musepack SV7 stream header.
func musepack7(sr *binutil.SafeReader, off int64, n *types.Native) error {
	n.Audio.Codec = "Musepack SV7"
	n.Audio.Container = "Musepack"
	n.Audio.Channels = 2

	h, err := sr.Bytes(off, 12, "Musepack header")
	if err != nil {
		return err
	}
	if h[3]&0x0F != 7 {
		return fmt.Errorf("unsupported Musepack stream version %d", h[3]&0x0F)
	}
	frames := binary.LittleEndian.Uint32(h[4:])
	rate := musepackRates[(binary.LittleEndian.Uint32(h[8:])>>16)&0x3]
	n.Audio.SampleRate = int(rate)
	n.Audio.Duration = samplesDuration(uint64(frames)*1152, rate)
	return nil
}

func samplesDuration(samples uint64, rate uint32) time.Duration {
	return time.Duration(float64(samples) / float64(rate) * float64(time.Second))
}

func init() {
	p := &parser{}
	registry.Register(types.FormatAPEv2, p)
	registry.Register(types.FormatWavPack, p)
	registry.Register(types.FormatMusepack, p)
}
