package m4a

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/simonhull/commontags/internal/types"
)

// atom builds an atom from its type and body parts.
func atom(typ string, body ...[]byte) []byte {
	content := bytes.Join(body, nil)
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(8+len(content)))
	buf.WriteString(typ)
	buf.Write(content)
	return buf.Bytes()
}

// data builds an ilst data atom of the given well-known type.
func data(typ uint32, value []byte) []byte {
	hdr := make([]byte, 8)
	binary.BigEndian.PutUint32(hdr, typ)
	return atom("data", hdr, value)
}

func text(s string) []byte { return data(dataUTF8, []byte(s)) }

// fullBox prefixes version and flags.
func fullBox(body ...[]byte) []byte {
	return append([]byte{0, 0, 0, 0}, bytes.Join(body, nil)...)
}

func freeform(mean, name string, values ...[]byte) []byte {
	parts := [][]byte{
		atom("mean", fullBox([]byte(mean))),
		atom("name", fullBox([]byte(name))),
	}
	return atom("----", append(parts, values...)...)
}

func mvhd(timescale, duration uint32) []byte {
	b := make([]byte, 20)
	binary.BigEndian.PutUint32(b[12:], timescale)
	binary.BigEndian.PutUint32(b[16:], duration)
	return atom("mvhd", b, make([]byte, 80))
}

func hdlr(handler string) []byte {
	return atom("hdlr", make([]byte, 8), []byte(handler), make([]byte, 13))
}

// sampleEntry builds an audio sample entry with optional child atoms.
func sampleEntry(fourCC string, channels, bits uint16, rate uint32, extra ...[]byte) []byte {
	b := make([]byte, 28)
	binary.BigEndian.PutUint16(b[16:], channels)
	binary.BigEndian.PutUint16(b[18:], bits)
	binary.BigEndian.PutUint32(b[24:], rate<<16)
	return atom(fourCC, append([][]byte{b}, extra...)...)
}

// esds builds an esds atom for the given audio object type and bitrate.
func esds(objectType byte, avgBitrate uint32) []byte {
	asc := []byte{objectType<<3 | 0x02, 0x10} // 44.1kHz index, stereo
	dc := []byte{0x40, 0x15, 0, 0, 0, 0, 0, 0, 0}
	dc = binary.BigEndian.AppendUint32(dc, avgBitrate)
	dc = append(dc, 0x05, byte(len(asc)))
	dc = append(dc, asc...)
	es := []byte{0, 1, 0, 0x04, byte(len(dc))}
	es = append(es, dc...)
	desc := append([]byte{0x03, byte(len(es))}, es...)
	return atom("esds", fullBox(desc))
}

func track(handler string, entry []byte) []byte {
	stsd := atom("stsd", fullBox([]byte{0, 0, 0, 1}, entry))
	return atom("trak",
		atom("mdia", hdlr(handler),
			atom("minf", atom("stbl", stsd))))
}

// file assembles ftyp, moov (with the given children) and an mdat of
// mdatSize bytes.
func file(brand string, mdatSize int, moovChildren ...[]byte) []byte {
	ftyp := atom("ftyp", []byte(brand), make([]byte, 4), []byte(brand))
	return bytes.Join([][]byte{
		ftyp,
		atom("moov", moovChildren...),
		atom("mdat", make([]byte, mdatSize)),
	}, nil)
}

func ilst(items ...[]byte) []byte {
	return atom("udta", atom("meta", fullBox(hdlr("mdir"), atom("ilst", items...))))
}

func parse(t *testing.T, b []byte) *types.Native {
	t.Helper()
	n, err := (&parser{}).Parse(context.Background(), bytes.NewReader(b), int64(len(b)), "test.m4a")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return n
}
