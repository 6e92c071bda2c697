package id3

import (
	"strings"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

// V1Size is the size of an ID3v1 trailer.
const V1Size = 128

// HasV1 reports whether the input ends with an ID3v1 trailer.
func HasV1(sr *binutil.SafeReader) bool {
	if sr.Size() < V1Size {
		return false
	}
	magic := make([]byte, 3)
	if err := sr.ReadAt(magic, sr.Size()-V1Size, "ID3v1 magic"); err != nil {
		return false
	}
	return string(magic) == "TAG"
}

// ReadV1 reads the ID3v1 trailer at the end of the input and appends its
// fields to n. It returns the offset where the trailer starts.
//
// Layout: "TAG" title(30) artist(30) album(30) year(4) comment(30)
// genre(1). ID3v1.1 stores the track number in the last comment byte
// when the one before it is zero.
func ReadV1(sr *binutil.SafeReader, n *types.Native) (int64, error) {
	start := sr.Size() - V1Size
	raw, err := sr.Bytes(start, V1Size, "ID3v1 tag")
	if err != nil {
		return sr.Size(), err
	}

	add := func(key string, b []byte) {
		if s := v1String(b); s != "" {
			n.Add(types.VocabID3v1, key, s)
		}
	}
	add("title", raw[3:33])
	add("artist", raw[33:63])
	add("album", raw[63:93])
	add("year", raw[93:97])

	comment := raw[97:127]
	if comment[28] == 0 && comment[29] != 0 {
		add("comment", comment[:28])
		n.Add(types.VocabID3v1, "track", int(comment[29]))
	} else {
		add("comment", comment)
	}

	// 255 means no genre.
	if g := raw[127]; g != 0xFF {
		n.Add(types.VocabID3v1, "genre", int(g))
	}
	return start, nil
}

func v1String(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(latin1(b))
}
