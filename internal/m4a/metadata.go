package m4a

import (
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"howett.net/plist"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// Well-known data types of an ilst data atom.
const (
	dataImplicit = 0
	dataUTF8     = 1
	dataUTF16    = 2
	dataJPEG     = 13
	dataPNG      = 14
	dataSigned   = 21
	dataUnsigned = 22
	dataFloat32  = 23
	dataFloat64  = 24
	dataBMP      = 27
)

// Items larger than this are skipped rather than loaded.
const maxItemSize = 64 << 20

// implicitInts lists items stored as big-endian integers with the
// implicit (0) data type.
var implicitInts = map[string]bool{
	"cpil": true, "pgap": true, "pcst": true, "hdvd": true, "shwm": true,
	"stik": true, "rtng": true, "tmpo": true, "tvsn": true, "tves": true,
	"©mvi": true, "©mvc": true, "akID": true, "cnID": true, "geID": true,
	"plID": true, "sfID": true, "atID": true, "cmID": true,
}

// ItemKey renders an ilst atom type as a native key. The leading 0xA9 byte
// of Apple's own items is the Latin-1 copyright sign.
func ItemKey(atomType string) string {
	if strings.HasPrefix(atomType, "\xA9") {
		return "©" + atomType[1:]
	}
	return atomType
}

// readIlst emits every data value of every item in the ilst atom.
func readIlst(sr *binutil.SafeReader, ilst *Atom, n *types.Native) error {
	return children(sr, ilst.DataOffset(), ilst.End(), func(item *Atom) bool {
		if item.Type == "----" {
			if err := readFreeform(sr, item, n); err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse freeform item: %v", err), item.Offset)
			}
			return true
		}

		key := ItemKey(item.Type)
		err := children(sr, item.DataOffset(), item.End(), func(data *Atom) bool {
			if data.Type != "data" {
				return true
			}
			value, err := readData(sr, key, data)
			if err != nil {
				n.Warn("metadata", fmt.Sprintf("failed to parse %s: %v", key, err), data.Offset)
				return true
			}
			if value != nil {
				n.Add(types.VocabITunes, key, value)
			}
			return true
		})
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to walk %s: %v", key, err), item.Offset)
		}
		return true
	})
}

// readFreeform reads a "----" item: a reverse-DNS mean, a name, and one or
// more data atoms. It is keyed "----:<mean>:<name>".
func readFreeform(sr *binutil.SafeReader, item *Atom, n *types.Native) error {
	var mean, name string
	var values []*Atom
	err := children(sr, item.DataOffset(), item.End(), func(a *Atom) bool {
		switch a.Type {
		case "mean", "name":
			// Both are full boxes: version and flags precede the text.
			if a.DataSize() < 4 {
				return true
			}
			b, err := sr.Bytes(a.DataOffset()+4, int(a.DataSize()-4), a.Type)
			if err != nil {
				return true
			}
			if a.Type == "mean" {
				mean = string(b)
			} else {
				name = string(b)
			}
		case "data":
			values = append(values, a)
		}
		return true
	})
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("freeform item without a name")
	}

	key := "----:" + mean + ":" + name
	for _, data := range values {
		value, err := readData(sr, key, data)
		if err != nil {
			n.Warn("metadata", fmt.Sprintf("failed to parse %s: %v", key, err), data.Offset)
			continue
		}
		if name == "iTunMOVI" {
			if raw, ok := value.(string); ok {
				if err := readMovieInfo([]byte(raw), n); err != nil {
					n.Warn("metadata", fmt.Sprintf("failed to parse iTunMOVI: %v", err), data.Offset)
				}
				continue
			}
		}
		if value != nil {
			n.Add(types.VocabITunes, key, value)
		}
	}
	return nil
}

// readData decodes a data atom according to its well-known type.
func readData(sr *binutil.SafeReader, key string, data *Atom) (any, error) {
	if data.DataSize() < 8 {
		return nil, fmt.Errorf("data atom too small: %d bytes", data.DataSize())
	}
	if data.DataSize() > maxItemSize {
		return nil, fmt.Errorf("data atom too large: %d bytes", data.DataSize())
	}
	header, err := binutil.Read[uint32](sr, data.DataOffset(), "data type")
	if err != nil {
		return nil, err
	}
	typ := header & 0x00FFFFFF
	payload, err := sr.Bytes(data.DataOffset()+8, int(data.DataSize()-8), "data value")
	if err != nil {
		return nil, err
	}
	return decodeValue(key, typ, payload)
}

func decodeValue(key string, typ uint32, payload []byte) (any, error) {
	switch key {
	case "trkn", "disk":
		// reserved(2) number(2) total(2) [reserved(2)]
		if len(payload) < 4 {
			return nil, fmt.Errorf("%s too short: %d bytes", key, len(payload))
		}
		no := int(binary.BigEndian.Uint16(payload[2:4]))
		of := 0
		if len(payload) >= 6 {
			of = int(binary.BigEndian.Uint16(payload[4:6]))
		}
		return types.NewPartOfSet(no, of), nil
	case "gnre":
		return beInt(payload, false)
	case "covr":
		return coverPicture(typ, payload), nil
	}

	switch typ {
	case dataUTF8:
		return string(payload), nil
	case dataUTF16:
		s, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
		if err != nil {
			return nil, err
		}
		return string(s), nil
	case dataSigned:
		return beInt(payload, true)
	case dataUnsigned:
		return beInt(payload, false)
	case dataFloat32:
		if len(payload) != 4 {
			return nil, fmt.Errorf("float32 of %d bytes", len(payload))
		}
		return float64(math.Float32frombits(binary.BigEndian.Uint32(payload))), nil
	case dataFloat64:
		if len(payload) != 8 {
			return nil, fmt.Errorf("float64 of %d bytes", len(payload))
		}
		return math.Float64frombits(binary.BigEndian.Uint64(payload)), nil
	case dataJPEG, dataPNG, dataBMP:
		return coverPicture(typ, payload), nil
	case dataImplicit:
		if implicitInts[key] {
			return beInt(payload, false)
		}
	}
	return payload, nil
}

// beInt decodes a big-endian integer of 1 to 8 bytes.
func beInt(b []byte, signed bool) (int, error) {
	if len(b) == 0 || len(b) > 8 {
		return 0, fmt.Errorf("integer of %d bytes", len(b))
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	if signed && b[0]&0x80 != 0 {
		shift := 64 - 8*uint(len(b))
		return int(int64(u<<shift) >> shift), nil
	}
	return int(u), nil
}

// readMovieInfo expands the iTunMOVI property list into one entry per
// credited name, keyed "iTunMOVI:<field>".
func readMovieInfo(data []byte, n *types.Native) error {
	var info map[string]any
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return err
	}
	for _, field := range slices.Sorted(maps.Keys(info)) {
		key := "iTunMOVI:" + field
		switch v := info[field].(type) {
		case string:
			n.Add(types.VocabITunes, key, v)
		case []any:
			for _, entry := range v {
				if person, ok := entry.(map[string]any); ok {
					if name, ok := person["name"].(string); ok {
						n.Add(types.VocabITunes, key, name)
					}
				}
			}
		}
	}
	return nil
}
