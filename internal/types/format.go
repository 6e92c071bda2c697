package types

import (
	"bytes"
	"io"

	"github.com/simonhull/commontags/internal/binary"
)

// Format identifies a container format, and with it the parser that reads
// it.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMPEG represents MPEG audio (MP1/MP2/MP3).
	FormatMPEG
	// FormatADTS represents raw AAC in ADTS framing.
	FormatADTS
	// FormatOgg represents Ogg streams (Vorbis, Opus, Speex, FLAC).
	FormatOgg
	// FormatFLAC represents native FLAC.
	FormatFLAC
	// FormatRIFF represents RIFF WAVE.
	FormatRIFF
	// FormatAIFF represents AIFF and AIFF-C.
	FormatAIFF
	// FormatMP4 represents ISO base media files (M4A, M4B, MP4, 3GP).
	FormatMP4
	// FormatAPEv2 represents Monkey's Audio and bare APEv2 tagged files.
	FormatAPEv2
	// FormatMatroska represents Matroska and WebM.
	FormatMatroska
	// FormatASF represents Windows Media (WMA, WMV, ASF).
	FormatASF
	// FormatMusepack represents Musepack SV7/SV8.
	FormatMusepack
	// FormatWavPack represents WavPack.
	FormatWavPack
	// FormatDSF represents Sony DSD Stream File.
	FormatDSF
	// FormatDSDIFF represents Philips DSD Interchange File Format.
	FormatDSDIFF
)

var formatNames = [...]string{
	FormatUnknown:  "unknown",
	FormatMPEG:     "mpeg",
	FormatADTS:     "adts",
	FormatOgg:      "ogg",
	FormatFLAC:     "flac",
	FormatRIFF:     "riff",
	FormatAIFF:     "aiff",
	FormatMP4:      "mp4",
	FormatAPEv2:    "apev2",
	FormatMatroska: "matroska",
	FormatASF:      "asf",
	FormatMusepack: "musepack",
	FormatWavPack:  "wavpack",
	FormatDSF:      "dsf",
	FormatDSDIFF:   "dsdiff",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[FormatUnknown]
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given parser name.
func ParseFormat(name string) Format {
	for f, n := range formatNames {
		if n == name {
			return Format(f)
		}
	}
	return FormatUnknown
}

// MarshalText renders the format by name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// DetectFormat determines the container format by examining magic bytes.
//
// Detection is based on file signatures at the beginning of the file.
// A leading ID3v2 tag is skipped so that FLAC, APE and AAC files carrying
// one are not mistaken for MP3. Detection does not validate the rest of
// the file.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:     path,
			Reason:   "file too small",
			NoParser: true,
		}
	}
	sr := binary.NewSafeReader(r, size, path)
	return detectAt(sr, 0, path)
}

func detectAt(sr *binary.SafeReader, off int64, path string) (Format, error) { //nolint:gocyclo // one branch per signature
	size := sr.Size()
	n := min(size-off, 16)
	if n < 4 {
		return FormatUnknown, unsupported(path, "file too small")
	}

	magic := make([]byte, n)
	if err := sr.ReadAt(magic, off, "file magic bytes"); err != nil {
		return FormatUnknown, unsupported(path, "failed to read file header")
	}

	switch {
	case bytes.HasPrefix(magic, []byte("ID3")) && n >= 10:
		// Synchsafe tag size, plus the 10-byte header and optional footer.
		tagSize := int64(magic[6])<<21 | int64(magic[7])<<14 | int64(magic[8])<<7 | int64(magic[9])
		next := off + 10 + tagSize
		if magic[5]&0x10 != 0 {
			next += 10
		}
		if next+4 <= size {
			if f, err := detectAt(sr, next, path); err == nil && f != FormatUnknown {
				return f, nil
			}
		}
		return FormatMPEG, nil

	case bytes.HasPrefix(magic, []byte("fLaC")):
		return FormatFLAC, nil

	case bytes.HasPrefix(magic, []byte("OggS")):
		return FormatOgg, nil

	case bytes.HasPrefix(magic, []byte("MAC ")), bytes.HasPrefix(magic, []byte("APETAGEX")):
		return FormatAPEv2, nil

	case bytes.HasPrefix(magic, []byte("MPCK")), bytes.HasPrefix(magic, []byte("MP+")):
		return FormatMusepack, nil

	case bytes.HasPrefix(magic, []byte("wvpk")):
		return FormatWavPack, nil

	case bytes.HasPrefix(magic, []byte("DSD ")):
		return FormatDSF, nil

	case bytes.HasPrefix(magic, []byte("FRM8")):
		return FormatDSDIFF, nil

	case bytes.HasPrefix(magic, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		return FormatMatroska, nil

	case bytes.HasPrefix(magic, []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11}):
		return FormatASF, nil

	case bytes.HasPrefix(magic, []byte("RIFF")) && n >= 12 && string(magic[8:12]) == "WAVE":
		return FormatRIFF, nil

	case bytes.HasPrefix(magic, []byte("FORM")) && n >= 12 &&
		(string(magic[8:12]) == "AIFF" || string(magic[8:12]) == "AIFC"):
		return FormatAIFF, nil

	case magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		// Frame sync. Layer bits 00 with MPEG-2/4 id is ADTS AAC.
		if magic[1]&0x06 == 0 {
			return FormatADTS, nil
		}
		return FormatMPEG, nil
	}

	// ISO base media: [size]["ftyp"][major brand]
	atomType, err := binary.Read[uint32](sr, off+4, "ftyp atom type")
	if err != nil {
		return FormatUnknown, unsupported(path, "failed to read file header")
	}
	if atomType == 0x66747970 { // "ftyp"
		atomSize, err := binary.Read[uint32](sr, off, "ftyp atom size")
		if err != nil || atomSize < 12 {
			return FormatUnknown, unsupported(path, "ftyp atom too small")
		}
		return FormatMP4, nil
	}

	return FormatUnknown, unsupported(path, "unrecognized file signature")
}

func unsupported(path, reason string) error {
	return &UnsupportedFormatError{Path: path, Reason: reason, NoParser: true}
}
