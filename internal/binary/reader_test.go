package binary

import (
	"bytes"
	"strings"
	"testing"
)

func reader(data []byte, path string) *SafeReader {
	return NewSafeReader(bytes.NewReader(data), int64(len(data)), path)
}

func TestRead_Orders(t *testing.T) {
	sr := reader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, "t")

	check := func(name string, got, want uint64, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %#x, want %#x", name, got, want)
		}
	}

	v8, err := Read[uint8](sr, 7, "u8")
	check("u8", uint64(v8), 0x08, err)
	v16, err := Read[uint16](sr, 0, "u16")
	check("u16", uint64(v16), 0x0102, err)
	v16le, err := ReadLE[uint16](sr, 0, "u16le")
	check("u16le", uint64(v16le), 0x0201, err)
	v32, err := Read[uint32](sr, 4, "u32")
	check("u32", uint64(v32), 0x05060708, err)
	v32le, err := ReadLE[uint32](sr, 4, "u32le")
	check("u32le", uint64(v32le), 0x08070605, err)
	v64, err := Read[uint64](sr, 0, "u64")
	check("u64", v64, 0x0102030405060708, err)
	v64le, err := ReadLE[uint64](sr, 0, "u64le")
	check("u64le", v64le, 0x0807060504030201, err)
}

func TestSafeReader_Errors(t *testing.T) {
	sr := reader([]byte{1, 2, 3, 4}, "song.ape")

	tests := []struct {
		name string
		off  int64
		n    int
		want string
	}{
		{"offset past end", 10, 2, "out of bounds"},
		{"negative offset", -1, 1, "out of bounds"},
		{"read past end", 3, 2, "would exceed size 4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tc.n), tc.off, "item header")
			if err == nil {
				t.Fatal("expected error")
			}
			for _, s := range []string{"song.ape", "item header", tc.want} {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q should mention %q", err, s)
				}
			}
		})
	}

	if _, err := sr.Bytes(0, -1, "length"); err == nil {
		t.Error("negative length should fail")
	}
	if b, err := sr.Bytes(4, 0, "nothing"); err != nil || len(b) != 0 {
		t.Errorf("zero-length read = %v, %v", b, err)
	}
}

func TestReader_Sequential(t *testing.T) {
	// A Vorbis-style length-prefixed string followed by a big-endian size.
	data := []byte{0x04, 0x00, 0x00, 0x00, 'T', 'E', 'S', 'T', 0x00, 0x10, 0xAA}
	r := NewReader(reader(data, "t"), 0)

	n, err := ReadValueLE[uint32](r, "vendor length")
	if err != nil || n != 4 {
		t.Fatalf("vendor length = %d, %v", n, err)
	}
	vendor, err := r.ReadString(int(n), "vendor")
	if err != nil || vendor != "TEST" {
		t.Fatalf("vendor = %q, %v", vendor, err)
	}
	size, err := ReadValue[uint16](r, "size")
	if err != nil || size != 0x10 {
		t.Fatalf("size = %#x, %v", size, err)
	}
	if r.Offset() != 10 || r.Remaining() != 1 {
		t.Errorf("offset %d remaining %d, want 10 and 1", r.Offset(), r.Remaining())
	}

	if _, err := r.ReadBytes(2, "tail"); err == nil {
		t.Fatal("expected error reading past end")
	}
	if r.Offset() != 10 {
		t.Errorf("failed read advanced offset to %d", r.Offset())
	}

	r.Skip(5)
	if r.Remaining() != 0 {
		t.Errorf("remaining after skipping past end = %d, want 0", r.Remaining())
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1<<20)
	sr := reader(data, "bench")
	words := int64(len(data) / 4)

	var i int64
	for b.Loop() {
		_, _ = Read[uint32](sr, (i%words)*4, "benchmark")
		i++
	}
}
