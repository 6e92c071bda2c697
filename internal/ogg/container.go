package ogg

import (
	"bytes"
	"fmt"

	"github.com/simonhull/commontags/internal/binary"
)

// Page header flags
const (
	flagContinued = 0x01
	flagBOS       = 0x02
	flagEOS       = 0x04
)

// Page represents an Ogg page.
//
// An Ogg page is the fundamental unit of the Ogg container format.
// Each page contains a header, a segment table and payload data.
type Page struct {
	HeaderType      byte   // Bit flags: 0x01=continued, 0x02=BOS, 0x04=EOS
	GranulePosition int64  // Position in samples
	SerialNumber    uint32 // Logical bitstream identifier
	SequenceNumber  uint32 // Page sequence number
	Segments        []byte // Lacing values
	Data            []byte // Page payload (one or more packets)
}

// readPage reads an Ogg page at the given offset.
//
// Returns the page, next offset, and any error encountered.
func readPage(sr *binary.SafeReader, offset int64) (*Page, int64, error) {
	header := make([]byte, 27)
	if err := sr.ReadAt(header, offset, "Ogg page header"); err != nil {
		return nil, 0, err
	}
	if string(header[0:4]) != "OggS" {
		return nil, 0, fmt.Errorf("invalid Ogg page at offset %d", offset)
	}
	if header[4] != 0 {
		return nil, 0, fmt.Errorf("unsupported Ogg version: %d", header[4])
	}

	r := binary.NewReader(sr, offset+6)
	granule, err := binary.ReadValueLE[uint64](r, "granule position")
	if err != nil {
		return nil, 0, err
	}
	serial, err := binary.ReadValueLE[uint32](r, "serial number")
	if err != nil {
		return nil, 0, err
	}
	sequence, err := binary.ReadValueLE[uint32](r, "sequence number")
	if err != nil {
		return nil, 0, err
	}

	segmentCount := int(header[26])
	segments, err := sr.Bytes(offset+27, segmentCount, "segment table")
	if err != nil {
		return nil, 0, err
	}

	dataSize := 0
	for _, seg := range segments {
		dataSize += int(seg)
	}

	dataOffset := offset + 27 + int64(segmentCount)
	data, err := sr.Bytes(dataOffset, dataSize, "page data")
	if err != nil {
		return nil, 0, err
	}

	page := &Page{
		HeaderType:      header[5],
		GranulePosition: int64(granule),
		SerialNumber:    serial,
		SequenceNumber:  sequence,
		Segments:        segments,
		Data:            data,
	}
	return page, dataOffset + int64(dataSize), nil
}

// packetReader reassembles packets from the pages of one logical stream.
// A packet ends at the first lacing value below 255 and may span pages.
type packetReader struct {
	partial []byte
	packets [][]byte
}

func (pr *packetReader) add(page *Page) {
	if page.HeaderType&flagContinued == 0 {
		pr.partial = nil
	}
	pos := 0
	for _, seg := range page.Segments {
		pr.partial = append(pr.partial, page.Data[pos:pos+int(seg)]...)
		pos += int(seg)
		if seg < 255 {
			pr.packets = append(pr.packets, pr.partial)
			pr.partial = nil
		}
	}
}

// findLastGranulePosition searches backwards from the end of file for the
// last page of the stream with the given serial number.
//
// This is used to calculate the duration of the audio stream.
func findLastGranulePosition(sr *binary.SafeReader, fileSize int64, serial uint32) (int64, error) {
	// Search last 64KB for final page (typical max page size)
	searchStart := max(fileSize-65536, 0)
	buf, err := sr.Bytes(searchStart, int(fileSize-searchStart), "search region")
	if err != nil {
		return 0, err
	}

	for i := len(buf); i > 0; {
		i = bytes.LastIndex(buf[:i], []byte("OggS"))
		if i < 0 {
			break
		}
		page := buf[i:]
		if len(page) < 27 {
			continue
		}
		pageSerial := uint32(page[14]) | uint32(page[15])<<8 | uint32(page[16])<<16 | uint32(page[17])<<24
		if pageSerial != serial {
			continue
		}
		var granule int64
		for b := 13; b >= 6; b-- {
			granule = granule<<8 | int64(page[b])
		}
		return granule, nil
	}
	return 0, fmt.Errorf("could not find last Ogg page")
}
