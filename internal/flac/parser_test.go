package flac

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// block appends a metadata block header and body to buf.
func block(buf *bytes.Buffer, typ byte, last bool, body []byte) {
	if last {
		typ |= 0x80
	}
	buf.WriteByte(typ)
	buf.WriteByte(byte(len(body) >> 16))
	buf.WriteByte(byte(len(body) >> 8))
	buf.WriteByte(byte(len(body)))
	buf.Write(body)
}

func streamInfo() []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint16(4096)) // min block size
	binary.Write(buf, binary.BigEndian, uint16(4096)) // max block size
	buf.Write(make([]byte, 6))                        // min/max frame size

	// Sample rate 44100, 2 channels, 16 bits, 44100 samples (1 second).
	packed := uint64(44100)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(44100)
	binary.Write(buf, binary.BigEndian, packed)
	buf.Write(make([]byte, 16)) // MD5
	return buf.Bytes()
}

func vorbisComment(fields ...string) []byte {
	buf := &bytes.Buffer{}
	vendor := "commontags"
	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	binary.Write(buf, binary.LittleEndian, uint32(len(fields)))
	for _, f := range fields {
		binary.Write(buf, binary.LittleEndian, uint32(len(f)))
		buf.WriteString(f)
	}
	return buf.Bytes()
}

func picture(typ uint32, mime string, data []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, typ)
	binary.Write(buf, binary.BigEndian, uint32(len(mime)))
	buf.WriteString(mime)
	binary.Write(buf, binary.BigEndian, uint32(0)) // description
	binary.Write(buf, binary.BigEndian, [4]uint32{500, 500, 24, 0})
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
	return buf.Bytes()
}

func createMinimalFLAC(fields ...string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	block(buf, blockTypeStreamInfo, false, streamInfo())
	block(buf, blockTypeVorbisComment, true, vorbisComment(fields...))
	return buf.Bytes()
}

func parse(t *testing.T, data []byte) *types.Native {
	t.Helper()
	n, err := (&parser{}).Parse(context.Background(), bytes.NewReader(data), int64(len(data)), "test.flac")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return n
}

func TestParse_Success(t *testing.T) {
	n := parse(t, createMinimalFLAC("TITLE=Test Song", "ARTIST=Test Artist", "ALBUM=Test Album"))

	want := map[string]string{"TITLE": "Test Song", "ARTIST": "Test Artist", "ALBUM": "Test Album"}
	if len(n.Tags) != len(want) {
		t.Fatalf("got %d tags, want %d", len(n.Tags), len(want))
	}
	for _, tag := range n.Tags {
		if tag.Vocabulary != types.VocabVorbis {
			t.Errorf("tag %s vocabulary = %s, want vorbis", tag.Key, tag.Vocabulary)
		}
		if tag.Value != want[tag.Key] {
			t.Errorf("tag %s = %v, want %q", tag.Key, tag.Value, want[tag.Key])
		}
	}

	if n.Audio.Codec != "FLAC" || n.Audio.Container != "FLAC" {
		t.Errorf("codec/container = %q/%q", n.Audio.Codec, n.Audio.Container)
	}
	if !n.Audio.Lossless {
		t.Error("expected lossless to be true")
	}
	if n.Audio.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", n.Audio.SampleRate)
	}
	if n.Audio.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", n.Audio.Channels)
	}
	if n.Audio.BitDepth != 16 {
		t.Errorf("expected 16-bit depth, got %d", n.Audio.BitDepth)
	}
	if n.Audio.Duration != time.Second {
		t.Errorf("expected duration 1s, got %v", n.Audio.Duration)
	}
}

func TestParse_InvalidMagic(t *testing.T) {
	data := []byte("INVALID!")
	_, err := (&parser{}).Parse(context.Background(), bytes.NewReader(data), int64(len(data)), "bad.flac")

	var corrupted *types.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Errorf("expected CorruptedFileError, got %T: %v", err, err)
	}
}

func TestParse_EmptyTags(t *testing.T) {
	n := parse(t, createMinimalFLAC())

	if len(n.Tags) != 0 {
		t.Errorf("expected no tags, got %+v", n.Tags)
	}
	if len(n.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", n.Warnings)
	}
}

func TestParse_Picture(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	block(buf, blockTypeStreamInfo, false, streamInfo())
	block(buf, blockTypePadding, false, make([]byte, 16))
	block(buf, blockTypePicture, false, picture(4, "image/jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}))
	block(buf, blockTypeVorbisComment, true, vorbisComment("TITLE=x"))
	n := parse(t, buf.Bytes())

	if len(n.Tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(n.Tags))
	}
	if n.Tags[0].Key != PictureKey {
		t.Fatalf("first tag = %s, want %s", n.Tags[0].Key, PictureKey)
	}
	pic := n.Tags[0].Value.(types.Picture)
	if pic.Type != "Cover (back)" {
		t.Errorf("Type = %q", pic.Type)
	}
	if pic.Format != "image/jpeg" || pic.Width != 500 || pic.Height != 500 {
		t.Errorf("picture = %+v", pic)
	}
}

func TestParse_BadPictureIsWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	block(buf, blockTypeStreamInfo, false, streamInfo())
	block(buf, blockTypePicture, true, []byte{0, 0, 0, 3})
	n := parse(t, buf.Bytes())

	if len(n.Warnings) != 1 || n.Warnings[0].Stage != "picture" {
		t.Errorf("warnings = %+v, want one picture warning", n.Warnings)
	}
}

func TestParse_TruncatedBlock(t *testing.T) {
	data := createMinimalFLAC("TITLE=Some title")
	n := parse(t, data[:len(data)-4])

	if len(n.Warnings) == 0 {
		t.Error("expected a warning for the truncated comment block")
	}
	if n.Audio.SampleRate != 44100 {
		t.Error("STREAMINFO should still be read")
	}
}

func TestParse_LeadingID3(t *testing.T) {
	tag := []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 0}
	data := append(tag, createMinimalFLAC("TITLE=After ID3")...)
	n := parse(t, data)

	if len(n.Tags) != 1 || n.Tags[0].Value != "After ID3" {
		t.Errorf("tags = %+v", n.Tags)
	}
}

func TestParse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := createMinimalFLAC("TITLE=x")

	_, err := (&parser{}).Parse(ctx, bytes.NewReader(data), int64(len(data)), "x.flac")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRegistered(t *testing.T) {
	p := registry.Get(types.FormatFLAC)
	if p == nil || p.Name() != "flac" {
		t.Fatalf("registry.Get(FLAC) = %v", p)
	}
}

func BenchmarkParseFLAC(b *testing.B) {
	data := createMinimalFLAC("TITLE=Benchmark Song", "ARTIST=Benchmark Artist", "ALBUM=Benchmark Album")
	r := bytes.NewReader(data)
	p := &parser{}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := p.Parse(context.Background(), r, int64(len(data)), "bench.flac"); err != nil {
			b.Fatal(err)
		}
	}
}
