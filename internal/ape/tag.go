// Package ape reads APEv2 tags and the containers that carry them as their
// native tagging scheme (Monkey's Audio, WavPack, Musepack).
package ape

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/simonhull/commontags/internal/artwork"
	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

const (
	preamble   = "APETAGEX"
	footerSize = 32

	flagHasHeader = 1 << 31
	flagIsHeader  = 1 << 29

	// maxItems bounds the item count of a damaged footer.
	maxItems = 65536
)

// Item value types, bits 1-2 of the item flags.
const (
	itemText     = 0
	itemBinary   = 1
	itemExternal = 2
)

// footer is the 32-byte APEv2 header or footer.
type footer struct {
	Version uint32
	Size    uint32 // items plus footer, excluding the header
	Items   uint32
	Flags   uint32
}

func readFooter(sr *binutil.SafeReader, off int64) (footer, bool) {
	buf := make([]byte, footerSize)
	if err := sr.ReadAt(buf, off, "APE tag footer"); err != nil {
		return footer{}, false
	}
	if string(buf[:8]) != preamble {
		return footer{}, false
	}
	return footer{
		Version: binary.LittleEndian.Uint32(buf[8:12]),
		Size:    binary.LittleEndian.Uint32(buf[12:16]),
		Items:   binary.LittleEndian.Uint32(buf[16:20]),
		Flags:   binary.LittleEndian.Uint32(buf[20:24]),
	}, true
}

// Has reports whether an APEv2 tag footer ends at end.
func Has(sr *binutil.SafeReader, end int64) bool {
	if end < footerSize {
		return false
	}
	f, ok := readFooter(sr, end-footerSize)
	return ok && f.Flags&flagIsHeader == 0
}

// Read reads the APEv2 tag whose footer ends at end and appends its items
// to n in stored order. It returns the offset where the tag, including
// any header, starts.
func Read(sr *binutil.SafeReader, end int64, n *types.Native) (int64, error) {
	f, ok := readFooter(sr, end-footerSize)
	if !ok {
		return end, fmt.Errorf("no APEv2 footer at offset %d", end-footerSize)
	}
	if f.Size < footerSize || int64(f.Size) > end {
		return end, fmt.Errorf("APEv2 tag size %d out of range", f.Size)
	}
	if f.Items > maxItems {
		return end, fmt.Errorf("APEv2 item count %d out of range", f.Items)
	}

	itemsStart := end - int64(f.Size)
	start := itemsStart
	if f.Flags&flagHasHeader != 0 && start >= footerSize {
		start -= footerSize
	}

	data, err := sr.Bytes(itemsStart, int(f.Size)-footerSize, "APEv2 items")
	if err != nil {
		return start, err
	}
	readItems(data, f.Items, itemsStart, n)
	return start, nil
}

// readItems decodes count items from data:
// [value size(4)][flags(4)][key\0][value].
func readItems(data []byte, count uint32, base int64, n *types.Native) {
	pos := 0
	for i := uint32(0); i < count; i++ {
		if pos+8 > len(data) {
			n.Warn("metadata", fmt.Sprintf("APEv2 item %d truncated", i), base+int64(pos))
			return
		}
		size := int(binary.LittleEndian.Uint32(data[pos:]))
		flags := binary.LittleEndian.Uint32(data[pos+4:])
		keyEnd := bytes.IndexByte(data[pos+8:], 0)
		if keyEnd < 0 {
			n.Warn("metadata", fmt.Sprintf("APEv2 item %d key not terminated", i), base+int64(pos))
			return
		}
		key := string(data[pos+8 : pos+8+keyEnd])
		valueStart := pos + 8 + keyEnd + 1
		if size < 0 || valueStart+size > len(data) {
			n.Warn("metadata", fmt.Sprintf("APEv2 item %q exceeds tag", key), base+int64(pos))
			return
		}
		addItem(n, key, (flags>>1)&0x3, data[valueStart:valueStart+size])
		pos = valueStart + size
	}
}

func addItem(n *types.Native, key string, kind uint32, value []byte) {
	switch kind {
	case itemText, itemExternal:
		// Text items may hold several NUL-separated values.
		for _, v := range strings.Split(string(value), "\x00") {
			if v != "" {
				n.Add(types.VocabAPEv2, key, v)
			}
		}
	case itemBinary:
		if !strings.HasPrefix(strings.ToLower(key), "cover art") {
			n.Add(types.VocabAPEv2, key, value)
			return
		}
		// "<file name>\0<image data>"
		name, img, ok := bytes.Cut(value, []byte{0})
		if !ok {
			img, name = value, nil
		}
		pic := types.Picture{
			Name: string(name),
			Type: coverType(key),
			Data: img,
		}
		artwork.Complete(&pic)
		n.Add(types.VocabAPEv2, key, pic)
	}
}

// coverType names the picture type of a "Cover Art (...)" item.
func coverType(key string) string {
	switch strings.ToLower(key) {
	case "cover art (front)":
		return types.FrontCover
	case "cover art (back)":
		return types.PictureBackCover.String()
	}
	return types.PictureOther.String()
}
