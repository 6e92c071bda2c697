package id3

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encodings of ID3v2 text frames.
const (
	encISO88591 = 0
	encUTF16    = 1 // with BOM
	encUTF16BE  = 2 // ID3v2.4
	encUTF8     = 3 // ID3v2.4
)

func decoderFor(enc byte) *encoding.Decoder {
	switch enc {
	case encUTF16:
		// A missing BOM is read as big-endian.
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case encUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case encUTF8:
		return unicode.UTF8.NewDecoder()
	default:
		return charmap.ISO8859_1.NewDecoder()
	}
}

// decodeText decodes data in the given encoding and strips trailing NULs.
func decodeText(data []byte, enc byte) string {
	if len(data) == 0 {
		return ""
	}
	if (enc == encUTF16 || enc == encUTF16BE) && len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	out, err := decoderFor(enc).Bytes(data)
	if err != nil {
		// Fall back to the raw bytes rather than losing the value.
		out = data
	}
	return strings.TrimRight(string(out), "\x00")
}

// decodeList decodes a text frame body that may hold several
// NUL-separated values (ID3v2.4). Empty values are dropped.
func decodeList(data []byte, enc byte) []string {
	var out []string
	for len(data) > 0 {
		i := findTerminator(data, enc)
		if i < 0 {
			i = len(data)
		}
		if s := decodeText(data[:i], enc); s != "" {
			out = append(out, s)
		}
		data = data[min(len(data), i+terminatorSize(enc)):]
	}
	return out
}

// splitTerminated splits data at the first terminator of the encoding.
// ok is false when there is none.
func splitTerminated(data []byte, enc byte) (head, rest []byte, ok bool) {
	i := findTerminator(data, enc)
	if i < 0 {
		return data, nil, false
	}
	return data[:i], data[i+terminatorSize(enc):], true
}

// findTerminator finds the null terminator based on encoding
func findTerminator(data []byte, enc byte) int {
	switch enc {
	case encUTF16, encUTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	default:
		return bytes.IndexByte(data, 0)
	}
}

func terminatorSize(enc byte) int {
	if enc == encUTF16 || enc == encUTF16BE {
		return 2
	}
	return 1
}

// latin1 decodes an ISO-8859-1 string field such as an owner identifier.
func latin1(data []byte) string {
	return decodeText(data, encISO88591)
}
