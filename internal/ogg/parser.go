// Package ogg reads Ogg streams carrying Vorbis, Opus, Speex or FLAC. The
// comment header of each codec is a Vorbis comment block.
package ogg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/flac"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
	"github.com/simonhull/commontags/internal/vorbis"
)

const (
	codecVorbis  = "Vorbis"
	codecOpus    = "Opus"
	codecSpeex   = "Speex"
	codecFLAC    = "FLAC"
	containerOgg = "Ogg"

	// Header packets larger than this many pages are treated as damage.
	maxHeaderPages = 512
)

type parser struct{}

func (p *parser) Name() string { return "ogg" }

// Parse reads the header packets of the first logical stream, then takes
// the duration from the granule position of its last page.
func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	sr := binutil.NewSafeReader(r, size, path)

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, 0, "Ogg magic bytes"); err != nil {
		return nil, fmt.Errorf("read Ogg magic: %w", err)
	}
	if string(magic) != "OggS" {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Offset: 0,
			Reason: "invalid Ogg magic bytes",
		}
	}

	s := &stream{sr: sr}
	first, err := s.packet(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read first Ogg packet: %w", err)
	}

	n := &types.Native{}
	n.Audio.Container = containerOgg

	var preSkip int64
	switch {
	case bytes.HasPrefix(first, []byte("\x01vorbis")):
		if err := parseVorbisIdentification(first, n); err != nil {
			return nil, err
		}
		s.comments(ctx, n, []byte("\x03vorbis"))

	case bytes.HasPrefix(first, []byte("OpusHead")):
		if preSkip, err = parseOpusHead(first, n); err != nil {
			return nil, err
		}
		s.comments(ctx, n, []byte("OpusTags"))

	case bytes.HasPrefix(first, []byte("Speex   ")):
		if err := parseSpeexHeader(first, n); err != nil {
			return nil, err
		}
		s.comments(ctx, n, nil)

	case bytes.HasPrefix(first, []byte("\x7FFLAC")):
		if err := parseFLACMapping(ctx, s, first, n); err != nil {
			return nil, err
		}

	default:
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "unknown Ogg codec",
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if n.Audio.SampleRate > 0 {
		if err := s.duration(size, preSkip, n); err != nil {
			n.Warn("technical", fmt.Sprintf("failed to calculate duration: %v", err), 0)
		}
	}
	if n.Audio.Bitrate == 0 && n.Audio.Duration > 0 {
		n.Audio.Bitrate = int(float64(size-s.headerEnd) * 8 / n.Audio.Duration.Seconds())
	}

	return n, nil
}

// stream follows the pages of the first logical bitstream in the file.
type stream struct {
	sr        *binutil.SafeReader
	offset    int64
	serial    uint32
	started   bool
	pages     int
	pr        packetReader
	headerEnd int64
}

// packet returns the i-th packet of the stream, reading pages as needed.
func (s *stream) packet(ctx context.Context, i int) ([]byte, error) {
	for len(s.pr.packets) <= i {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.pages >= maxHeaderPages {
			return nil, fmt.Errorf("header packet %d not found in %d pages", i, s.pages)
		}
		page, next, err := readPage(s.sr, s.offset)
		if err != nil {
			return nil, err
		}
		s.offset = next
		s.pages++
		if !s.started {
			s.serial = page.SerialNumber
			s.started = true
		}
		if page.SerialNumber != s.serial {
			continue
		}
		s.pr.add(page)
		s.headerEnd = next
	}
	return s.pr.packets[i], nil
}

// comments reads the comment packet that follows the identification
// header. A missing or damaged packet is a warning.
func (s *stream) comments(ctx context.Context, n *types.Native, prefix []byte) {
	pkt, err := s.packet(ctx, 1)
	if err != nil {
		n.Warn("metadata", fmt.Sprintf("failed to read comment header: %v", err), s.offset)
		return
	}
	if !bytes.HasPrefix(pkt, prefix) {
		n.Warn("metadata", "comment header has the wrong signature", s.offset)
		return
	}
	readCommentPacket(pkt, len(prefix), n, s.sr.Path())
}

func readCommentPacket(pkt []byte, start int, n *types.Native, path string) {
	sr := binutil.NewSafeReader(bytes.NewReader(pkt), int64(len(pkt)), path)
	if _, _, err := vorbis.ReadComments(sr, int64(start), n); err != nil {
		n.Warn("metadata", fmt.Sprintf("failed to parse Vorbis comments: %v", err), 0)
	}
}

func (s *stream) duration(size, preSkip int64, n *types.Native) error {
	granule, err := findLastGranulePosition(s.sr, size, s.serial)
	if err != nil {
		return err
	}
	granule -= preSkip
	if granule < 0 {
		return fmt.Errorf("granule position not set")
	}
	seconds := float64(granule) / float64(n.Audio.SampleRate)
	n.Audio.Duration = time.Duration(seconds * float64(time.Second))
	return nil
}

// parseVorbisIdentification reads the Vorbis identification header.
func parseVorbisIdentification(pkt []byte, n *types.Native) error {
	if len(pkt) < 30 {
		return fmt.Errorf("vorbis identification header too short: %d bytes", len(pkt))
	}
	if v := binary.LittleEndian.Uint32(pkt[7:11]); v != 0 {
		return fmt.Errorf("unsupported Vorbis version: %d", v)
	}
	n.Audio.Codec = codecVorbis
	n.Audio.Channels = int(pkt[11])
	n.Audio.SampleRate = int(binary.LittleEndian.Uint32(pkt[12:16]))
	if nominal := int32(binary.LittleEndian.Uint32(pkt[20:24])); nominal > 0 {
		n.Audio.Bitrate = int(nominal)
	}
	return nil
}

// parseOpusHead reads the OpusHead packet and returns the pre-skip.
// Opus granule positions always count 48kHz samples, whatever the input
// rate was.
func parseOpusHead(pkt []byte, n *types.Native) (int64, error) {
	if len(pkt) < 19 {
		return 0, fmt.Errorf("OpusHead too short: %d bytes", len(pkt))
	}
	if pkt[8]>>4 != 0 {
		return 0, fmt.Errorf("unsupported Opus version: %d", pkt[8])
	}
	n.Audio.Codec = codecOpus
	n.Audio.Channels = int(pkt[9])
	n.Audio.SampleRate = 48000
	return int64(binary.LittleEndian.Uint16(pkt[10:12])), nil
}

// parseSpeexHeader reads the 80-byte Speex header.
func parseSpeexHeader(pkt []byte, n *types.Native) error {
	if len(pkt) < 80 {
		return fmt.Errorf("speex header too short: %d bytes", len(pkt))
	}
	n.Audio.Codec = codecSpeex
	n.Audio.SampleRate = int(binary.LittleEndian.Uint32(pkt[36:40]))
	n.Audio.Channels = int(binary.LittleEndian.Uint32(pkt[48:52]))
	if br := int32(binary.LittleEndian.Uint32(pkt[52:56])); br > 0 {
		n.Audio.Bitrate = int(br)
	}
	return nil
}

// parseFLACMapping reads an Ogg FLAC stream. The first packet wraps
// STREAMINFO; each following header packet holds one metadata block.
func parseFLACMapping(ctx context.Context, s *stream, first []byte, n *types.Native) error {
	// 0x7F "FLAC" major minor count(2) "fLaC" block-header(4) STREAMINFO
	const streamInfoAt = 17
	if len(first) < streamInfoAt+flac.StreamInfoSize || string(first[9:13]) != "fLaC" {
		return fmt.Errorf("invalid Ogg FLAC header")
	}
	n.Audio.Codec = codecFLAC
	if err := flac.DecodeStreamInfo(first[streamInfoAt:], &n.Audio); err != nil {
		return err
	}

	// A header count of zero means "unknown": read until a block marked last.
	count := int(binary.BigEndian.Uint16(first[7:9]))
	for i := 1; count == 0 || i <= count; i++ {
		pkt, err := s.packet(ctx, i)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to read FLAC metadata packet %d: %v", i, err), s.offset)
			return nil
		}
		if len(pkt) < 4 || pkt[0] == 0xFF {
			break
		}
		body := pkt[4:]
		switch pkt[0] & 0x7F {
		case 4:
			readCommentPacket(body, 0, n, s.sr.Path())
		case 6:
			pic, err := vorbis.ParsePictureBlock(body)
			if err != nil {
				n.Warn("picture", fmt.Sprintf("failed to parse PICTURE: %v", err), s.offset)
				break
			}
			n.Add(types.VocabVorbis, flac.PictureKey, pic)
		}
		if pkt[0]&0x80 != 0 {
			break
		}
	}
	return nil
}

func init() {
	registry.Register(types.FormatOgg, &parser{})
}
