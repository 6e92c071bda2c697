package m4a

import (
	"fmt"
	"time"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// parseTechnicalInfo extracts duration, sample rate, channels and codec
// from the movie header and the first audio track.
func parseTechnicalInfo(sr *binary.SafeReader, moov *Atom, n *types.Native) error {
	if mvhd, err := findAtom(sr, moov.DataOffset(), moov.End(), "mvhd"); err == nil {
		if err := parseMvhd(sr, mvhd, n); err != nil {
			return fmt.Errorf("mvhd: %w", err)
		}
	}

	trak, err := audioTrack(sr, moov)
	if err != nil {
		return err
	}

	if n.Audio.Duration == 0 {
		if mdhd, err := findPath(sr, trak, "mdia", "mdhd"); err == nil {
			if err := parseMvhd(sr, mdhd, n); err != nil {
				return fmt.Errorf("mdhd: %w", err)
			}
		}
	}

	stsd, err := findPath(sr, trak, "mdia", "minf", "stbl", "stsd")
	if err != nil {
		return err
	}
	return parseStsd(sr, stsd, n)
}

// audioTrack returns the first trak whose handler is "soun", or the first
// trak when none declares one.
func audioTrack(sr *binary.SafeReader, moov *Atom) (*Atom, error) {
	var first, sound *Atom
	err := children(sr, moov.DataOffset(), moov.End(), func(a *Atom) bool {
		if a.Type != "trak" {
			return true
		}
		if first == nil {
			first = a
		}
		hdlr, err := findPath(sr, a, "mdia", "hdlr")
		if err != nil {
			return true
		}
		// version/flags(4) pre_defined(4) handler_type(4)
		handler, err := sr.Bytes(hdlr.DataOffset()+8, 4, "handler type")
		if err == nil && string(handler) == "soun" {
			sound = a
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if sound != nil {
		return sound, nil
	}
	if first != nil {
		return first, nil
	}
	return nil, fmt.Errorf("no trak atom")
}

// parseMvhd reads timescale and duration from an mvhd or mdhd atom, which
// share their leading layout.
func parseMvhd(sr *binary.SafeReader, atom *Atom, n *types.Native) error {
	r := binary.NewReader(sr, atom.DataOffset())
	version, err := binary.ReadValue[uint8](r, "version")
	if err != nil {
		return err
	}
	r.Skip(3) // flags

	var timescale uint32
	var duration uint64
	if version == 1 {
		r.Skip(16) // creation and modification times
		if timescale, err = binary.ReadValue[uint32](r, "timescale"); err != nil {
			return err
		}
		if duration, err = binary.ReadValue[uint64](r, "duration"); err != nil {
			return err
		}
	} else {
		r.Skip(8)
		if timescale, err = binary.ReadValue[uint32](r, "timescale"); err != nil {
			return err
		}
		d, err := binary.ReadValue[uint32](r, "duration")
		if err != nil {
			return err
		}
		// All ones marks an unknown duration.
		if d != 0xFFFFFFFF {
			duration = uint64(d)
		}
	}

	if timescale > 0 {
		seconds := float64(duration) / float64(timescale)
		n.Audio.Duration = time.Duration(seconds * float64(time.Second))
	}
	return nil
}

// parseStsd reads the first sample entry of the sample description atom.
func parseStsd(sr *binary.SafeReader, stsd *Atom, n *types.Native) error {
	r := binary.NewReader(sr, stsd.DataOffset()+4) // version and flags
	count, err := binary.ReadValue[uint32](r, "stsd entry count")
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	entry := r.Offset()
	if _, err := binary.ReadValue[uint32](r, "sample entry size"); err != nil {
		return err
	}
	fourCC, err := r.ReadString(4, "sample entry format")
	if err != nil {
		return err
	}

	// reserved(6) data_reference_index(2) version(2) revision(2) vendor(4)
	r.Skip(16)
	channels, err := binary.ReadValue[uint16](r, "channels")
	if err != nil {
		return err
	}
	sampleSize, err := binary.ReadValue[uint16](r, "sample size")
	if err != nil {
		return err
	}
	r.Skip(4) // compression id, packet size
	rate, err := binary.ReadValue[uint32](r, "sample rate")
	if err != nil {
		return err
	}

	n.Audio.Channels = int(channels)
	n.Audio.SampleRate = int(rate >> 16) // 16.16 fixed point
	parseCodecDetails(sr, entry, fourCC, n)
	if n.Audio.Lossless {
		n.Audio.BitDepth = int(sampleSize)
	}
	return nil
}
