package types

import (
	"fmt"
	"strings"
	"time"
)

// AudioInfo represents technical audio properties reported by a source.
//
// These facts are passed through untouched; they are not part of the
// canonical tag schema.
type AudioInfo struct {
	Codec      string        `json:"codec,omitempty" yaml:"codec,omitempty"`
	Container  string        `json:"container,omitempty" yaml:"container,omitempty"`
	Duration   time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
	SampleRate int           `json:"sampleRate,omitempty" yaml:"sampleRate,omitempty"`
	BitDepth   int           `json:"bitDepth,omitempty" yaml:"bitDepth,omitempty"`
	Channels   int           `json:"channels,omitempty" yaml:"channels,omitempty"`
	Bitrate    int           `json:"bitrate,omitempty" yaml:"bitrate,omitempty"`
	Lossless   bool          `json:"lossless,omitempty" yaml:"lossless,omitempty"`
	VBR        bool          `json:"vbr,omitempty" yaml:"vbr,omitempty"`
}

// String returns a human-readable representation of the audio info.
// Example output: "FLAC 44.1kHz 16-bit stereo lossless".
func (a AudioInfo) String() string {
	parts := []string{a.Codec}

	if a.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(a.SampleRate)/1000))
	}
	if a.BitDepth > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", a.BitDepth))
	}
	parts = append(parts, channelDescription(a.Channels))

	switch {
	case a.Lossless:
		parts = append(parts, "lossless")
	case a.Bitrate > 0:
		q := fmt.Sprintf("%dkbps", a.Bitrate/1000)
		if a.VBR {
			q += " VBR"
		}
		parts = append(parts, q)
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// IsHighRes returns true if the audio is high-resolution: a sample rate
// above 48kHz or a bit depth above 16.
func (a AudioInfo) IsHighRes() bool {
	return a.SampleRate > 48000 || a.BitDepth > 16
}
