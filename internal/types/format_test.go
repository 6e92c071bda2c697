package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"flac", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC},
		{"id3v2.4 header", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), FormatMPEG},
		{"mpeg frame sync", []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}, FormatMPEG},
		{"adts frame sync", []byte{0xFF, 0xF1, 0x50, 0x80, 0x00, 0x1F, 0xFC, 0x00}, FormatADTS},
		{"ogg opus", createMinimalOggPage("OpusHead"), FormatOgg},
		{"ogg vorbis", createMinimalOggPage("\x01vorbis"), FormatOgg},
		{"wav", []byte("RIFF\x00\x00\x00\x00WAVE"), FormatRIFF},
		{"aiff", []byte("FORM\x00\x00\x00\x00AIFF"), FormatAIFF},
		{"aifc", []byte("FORM\x00\x00\x00\x00AIFC"), FormatAIFF},
		{"monkey's audio", []byte("MAC \x96\x0f\x00\x00"), FormatAPEv2},
		{"bare apev2", []byte("APETAGEX\xd0\x07\x00\x00"), FormatAPEv2},
		{"musepack sv8", []byte("MPCKSH\x00\x00"), FormatMusepack},
		{"wavpack", []byte("wvpk\x00\x00\x00\x00"), FormatWavPack},
		{"dsf", []byte("DSD \x1c\x00\x00\x00"), FormatDSF},
		{"dsdiff", []byte("FRM8\x00\x00\x00\x00"), FormatDSDIFF},
		{"matroska", []byte{0x1A, 0x45, 0xDF, 0xA3, 0x9F, 0x42, 0x86, 0x81}, FormatMatroska},
		{"asf", []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9}, FormatASF},
		{"m4a", []byte("\x00\x00\x00\x18ftypM4A \x00\x00\x00\x00"), FormatMP4},
		{"m4b", []byte("\x00\x00\x00\x18ftypM4B \x00\x00\x00\x00"), FormatMP4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tc.data), int64(len(tc.data)), "test")
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDetectFormat_SkipsLeadingID3(t *testing.T) {
	// 10-byte ID3v2.4 header declaring a 4-byte body, followed by FLAC.
	data := []byte("ID3\x04\x00\x00\x00\x00\x00\x04\x00\x00\x00\x00fLaC\x00\x00\x00\x22")

	got, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "tagged.flac")
	if err != nil {
		t.Fatalf("DetectFormat() error = %v", err)
	}
	if got != FormatFLAC {
		t.Errorf("DetectFormat() = %v, want FormatFLAC", got)
	}
}

func TestDetectFormat_TooSmall(t *testing.T) {
	data := []byte("abc")

	_, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.bin")
	if err == nil {
		t.Fatal("DetectFormat() should return error for file too small")
	}
	if !errors.Is(err, ErrNoParser) {
		t.Errorf("expected ErrNoParser, got %v", err)
	}
}

func TestDetectFormat_Unrecognized(t *testing.T) {
	data := []byte("this is plain text, not audio")

	_, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "notes.txt")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if ufe.Path != "notes.txt" {
		t.Errorf("Path = %q, want notes.txt", ufe.Path)
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatUnknown, "unknown"},
		{FormatMPEG, "mpeg"},
		{FormatMP4, "mp4"},
		{FormatDSDIFF, "dsdiff"},
		{Format(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.want)
		}
		if tc.want != "unknown" && ParseFormat(tc.want) != tc.format {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.want, ParseFormat(tc.want), tc.format)
		}
	}
}

// createMinimalOggPage creates a minimal Ogg page with the given first packet content.
func createMinimalOggPage(packetContent string) []byte {
	packetLen := len(packetContent)

	header := make([]byte, 27)
	copy(header[0:4], "OggS")
	header[4] = 0    // version
	header[5] = 0x02 // BOS flag
	for i := 6; i < 14; i++ {
		header[i] = 0xFF // granule position -1
	}
	header[14] = 0x01 // serial number
	header[26] = 1    // one segment

	result := make([]byte, 0, 27+1+packetLen)
	result = append(result, header...)
	result = append(result, byte(packetLen))
	result = append(result, []byte(packetContent)...)

	return result
}
