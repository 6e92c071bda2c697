// Package flac reads native FLAC streams: STREAMINFO for audio properties,
// VORBIS_COMMENT for tags and PICTURE blocks for artwork.
package flac

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/id3"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
	"github.com/simonhull/commontags/internal/vorbis"
)

// Metadata block types
const (
	blockTypeStreamInfo    = 0
	blockTypePadding       = 1
	blockTypeApplication   = 2
	blockTypeSeekTable     = 3
	blockTypeVorbisComment = 4
	blockTypeCueSheet      = 5
	blockTypePicture       = 6
)

// PictureKey is the native key FLAC PICTURE blocks are reported under. It
// is the Vorbis comment name of the same structure, so both map alike.
const PictureKey = "METADATA_BLOCK_PICTURE"

type parser struct{}

func (p *parser) Name() string { return "flac" }

// Parse walks the metadata blocks of a FLAC stream. A leading ID3v2 tag,
// written by some taggers against the format's rules, is read as well.
func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binary.NewSafeReader(r, size, path)
	n := &types.Native{}

	offset := int64(0)
	if id3.HasV2(sr, 0) {
		end, err := id3.ReadV2(sr, 0, n)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse leading ID3v2 tag: %v", err), 0)
		}
		offset = end
	}

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, offset, "FLAC magic bytes"); err != nil {
		return nil, fmt.Errorf("read FLAC magic: %w", err)
	}
	if string(magic) != "fLaC" {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Offset: offset,
			Reason: "invalid FLAC magic bytes",
		}
	}
	offset += 4

	for offset < size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		header, err := binary.Read[uint32](sr, offset, "metadata block header")
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to read metadata block header at offset %d: %v", offset, err), offset)
			break
		}

		isLast := (header >> 31) == 1
		blockType := uint8((header >> 24) & 0x7F)
		blockLength := int64(header & 0x00FFFFFF)

		offset += 4

		switch blockType {
		case blockTypeStreamInfo:
			if err := parseStreamInfo(sr, offset, blockLength, n); err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse STREAMINFO: %v", err), offset)
			}

		case blockTypeVorbisComment:
			// The block length bounds the comment walk.
			block := binary.NewSafeReader(io.NewSectionReader(r, offset, blockLength), blockLength, path)
			if _, _, err := vorbis.ReadComments(block, 0, n); err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse Vorbis comments: %v", err), offset)
			}

		case blockTypePicture:
			if err := parsePicture(sr, offset, blockLength, n); err != nil {
				n.Warn("picture", fmt.Sprintf("failed to parse PICTURE: %v", err), offset)
			}

		case blockTypePadding, blockTypeApplication, blockTypeSeekTable, blockTypeCueSheet:
			// Nothing tag-related.
		}

		offset += blockLength

		if isLast {
			break
		}
	}

	n.Audio.Container = "FLAC"
	n.Audio.Codec = "FLAC"
	n.Audio.Lossless = true

	// Everything after the metadata is audio frames.
	if n.Audio.Duration > 0 && offset < size {
		n.Audio.Bitrate = int(float64(size-offset) * 8 / n.Audio.Duration.Seconds())
	}

	return n, nil
}

// parseStreamInfo extracts audio info from STREAMINFO block
func parseStreamInfo(sr *binary.SafeReader, offset, blockLength int64, n *types.Native) error {
	// STREAMINFO is exactly 34 bytes
	if blockLength != StreamInfoSize {
		return fmt.Errorf("invalid STREAMINFO size: %d (expected %d)", blockLength, StreamInfoSize)
	}
	data, err := sr.Bytes(offset, StreamInfoSize, "STREAMINFO block")
	if err != nil {
		return err
	}
	return DecodeStreamInfo(data, &n.Audio)
}

// StreamInfoSize is the size of a STREAMINFO block body.
const StreamInfoSize = 34

// DecodeStreamInfo fills in sample rate, channels, bit depth and duration
// from a STREAMINFO block body. It is shared with FLAC-in-Ogg streams.
func DecodeStreamInfo(data []byte, audio *types.AudioInfo) error {
	if len(data) < StreamInfoSize {
		return fmt.Errorf("STREAMINFO too short: %d bytes", len(data))
	}

	// Bytes 10-17 pack sample rate (20 bits), channels-1 (3 bits),
	// bits per sample-1 (5 bits) and total samples (36 bits).
	packed := uint64(data[10])<<56 | uint64(data[11])<<48 | uint64(data[12])<<40 | uint64(data[13])<<32 |
		uint64(data[14])<<24 | uint64(data[15])<<16 | uint64(data[16])<<8 | uint64(data[17])

	sampleRate := (packed >> 44) & 0xFFFFF
	channels := ((packed >> 41) & 0x7) + 1
	bitsPerSample := ((packed >> 36) & 0x1F) + 1
	totalSamples := packed & 0xFFFFFFFFF

	if sampleRate > 0 {
		seconds := float64(totalSamples) / float64(sampleRate)
		audio.Duration = time.Duration(seconds * float64(time.Second))
	}

	audio.SampleRate = int(sampleRate)
	audio.Channels = int(channels)
	audio.BitDepth = int(bitsPerSample)
	audio.Lossless = true
	return nil
}

// parsePicture decodes a PICTURE block, which shares its layout with the
// Vorbis METADATA_BLOCK_PICTURE field.
func parsePicture(sr *binary.SafeReader, offset, blockLength int64, n *types.Native) error {
	data, err := sr.Bytes(offset, int(blockLength), "PICTURE block")
	if err != nil {
		return err
	}
	pic, err := vorbis.ParsePictureBlock(data)
	if err != nil {
		return err
	}
	n.Add(types.VocabVorbis, PictureKey, pic)
	return nil
}

func init() {
	registry.Register(types.FormatFLAC, &parser{})
}
