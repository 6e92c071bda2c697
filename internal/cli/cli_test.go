package cli

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/juho05/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetSeverity(log.NONE)
	os.Exit(m.Run())
}

func flacBlock(buf *bytes.Buffer, typ byte, last bool, body []byte) {
	if last {
		typ |= 0x80
	}
	buf.WriteByte(typ)
	buf.Write([]byte{byte(len(body) >> 16), byte(len(body) >> 8), byte(len(body))})
	buf.Write(body)
}

// flacFile builds a minimal FLAC stream with the given Vorbis comments and
// an optional PNG front cover.
func flacFile(cover []byte, fields ...string) []byte {
	info := &bytes.Buffer{}
	binary.Write(info, binary.BigEndian, uint16(4096))
	binary.Write(info, binary.BigEndian, uint16(4096))
	info.Write(make([]byte, 6))
	binary.Write(info, binary.BigEndian, uint64(44100)<<44|uint64(1)<<41|uint64(15)<<36|uint64(44100))
	info.Write(make([]byte, 16))

	comments := &bytes.Buffer{}
	binary.Write(comments, binary.LittleEndian, uint32(4))
	comments.WriteString("test")
	binary.Write(comments, binary.LittleEndian, uint32(len(fields)))
	for _, f := range fields {
		binary.Write(comments, binary.LittleEndian, uint32(len(f)))
		comments.WriteString(f)
	}

	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	flacBlock(buf, 0, false, info.Bytes())
	flacBlock(buf, 4, cover == nil, comments.Bytes())
	if cover != nil {
		pic := &bytes.Buffer{}
		binary.Write(pic, binary.BigEndian, uint32(3))
		binary.Write(pic, binary.BigEndian, uint32(len("image/png")))
		pic.WriteString("image/png")
		binary.Write(pic, binary.BigEndian, [5]uint32{0, 0, 0, 0, 0})
		binary.Write(pic, binary.BigEndian, uint32(len(cover)))
		pic.Write(cover)
		flacBlock(buf, 6, true, pic.Bytes())
	}
	return buf.Bytes()
}

func pngImage(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
