package m4a

import (
	"bytes"
	"fmt"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// codecNames maps MP4 codec FourCC codes to human-readable names.
var codecNames = map[string]string{
	// AAC Family
	"mp4a": "AAC",
	"mhm1": "xHE-AAC",
	"mhm2": "xHE-AAC v2",

	// Dolby Family
	"ac-3": "AC-3",
	"ec-3": "E-AC-3",
	"ac-4": "AC-4",

	// Lossless
	"alac": "Apple Lossless",
	"flac": "FLAC",

	// Other
	"opus": "Opus",
	"mp3 ": "MP3",
	".mp3": "MP3",
}

// aacProfiles maps AAC Audio Object Types to profile names.
var aacProfiles = map[uint8]string{
	1:  "AAC Main",
	2:  "AAC LC",
	3:  "AAC SSR",
	4:  "AAC LTP",
	5:  "HE-AAC",
	6:  "AAC Scalable",
	29: "HE-AAC v2",
	42: "xHE-AAC",
}

// mapCodecName converts a FourCC codec identifier to a human-readable name.
func mapCodecName(fourCC string) string {
	if name, ok := codecNames[fourCC]; ok {
		return name
	}
	return fourCC
}

// parseCodecDetails names the codec of the sample entry at offset. For
// AAC the profile found in the esds descriptor is more telling than the
// FourCC, and the descriptor also carries the average bitrate.
func parseCodecDetails(sr *binary.SafeReader, sampleEntryOffset int64, fourCC string, n *types.Native) {
	n.Audio.Codec = mapCodecName(fourCC)
	switch fourCC {
	case "mp4a":
		es, err := parseESDS(sr, sampleEntryOffset)
		if err != nil {
			return
		}
		if profile, ok := aacProfiles[es.objectType]; ok {
			n.Audio.Codec = profile
		}
		if es.avgBitrate > 0 {
			n.Audio.Bitrate = int(es.avgBitrate)
		}
	case "alac", "flac":
		n.Audio.Lossless = true
	}
}

type esInfo struct {
	objectType uint8
	avgBitrate uint32
}

// parseESDS finds the esds atom within the sample entry and decodes it.
func parseESDS(sr *binary.SafeReader, sampleEntryOffset int64) (esInfo, error) {
	searchBuf, err := sr.Bytes(sampleEntryOffset, int(min(256, sr.Size()-sampleEntryOffset)), "esds search buffer")
	if err != nil {
		return esInfo{}, err
	}

	i := bytes.Index(searchBuf, []byte("esds"))
	if i < 4 {
		return esInfo{}, fmt.Errorf("no esds atom")
	}
	esdsOffset := sampleEntryOffset + int64(i) - 4

	esdsSize, err := binary.Read[uint32](sr, esdsOffset, "esds size")
	if err != nil {
		return esInfo{}, err
	}
	if esdsSize <= 12 || esdsSize > 1024 {
		return esInfo{}, fmt.Errorf("implausible esds size %d", esdsSize)
	}

	// Skip the atom header and the version and flags.
	data, err := sr.Bytes(esdsOffset+12, int(esdsSize)-12, "esds data")
	if err != nil {
		return esInfo{}, err
	}
	return parseESDescriptors(data), nil
}

// ES descriptor tags.
const (
	tagES            = 0x03
	tagDecoderConfig = 0x04
	tagDecoderInfo   = 0x05
)

// parseESDescriptors walks ES_Descriptor, DecoderConfigDescriptor and
// DecoderSpecificInfo. The audio object type is the first five bits of
// the AudioSpecificConfig, with 31 escaping to 32 plus six more bits.
func parseESDescriptors(data []byte) esInfo {
	var info esInfo
	pos := 0

	readSize := func() int {
		size := 0
		for range 4 {
			if pos >= len(data) {
				return -1
			}
			b := data[pos]
			pos++
			size = size<<7 | int(b&0x7F)
			if b&0x80 == 0 {
				break
			}
		}
		return size
	}
	expect := func(tag byte) bool {
		if pos >= len(data) || data[pos] != tag {
			return false
		}
		pos++
		return readSize() >= 0
	}

	if !expect(tagES) || pos+3 > len(data) {
		return info
	}
	flags := data[pos+2]
	pos += 3 // ES_ID, flags
	if flags&0x80 != 0 {
		pos += 2 // dependsOn_ES_ID
	}
	if flags&0x40 != 0 && pos < len(data) {
		pos += 1 + int(data[pos]) // URL
	}
	if flags&0x20 != 0 {
		pos += 2 // OCR_ES_ID
	}

	if !expect(tagDecoderConfig) || pos+13 > len(data) {
		return info
	}
	// objectTypeIndication(1) streamType(1) bufferSizeDB(3) maxBitrate(4)
	info.avgBitrate = uint32(data[pos+9])<<24 | uint32(data[pos+10])<<16 | uint32(data[pos+11])<<8 | uint32(data[pos+12])
	pos += 13

	if !expect(tagDecoderInfo) || pos >= len(data) {
		return info
	}
	info.objectType = data[pos] >> 3
	if info.objectType == 31 && pos+1 < len(data) {
		info.objectType = 32 + (data[pos]&0x07)<<3 | data[pos+1]>>5
	}
	return info
}
