package commontags

import (
	"io"

	"github.com/simonhull/commontags/internal/contenttype"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// Format identifies a container format.
type Format = types.Format

const (
	FormatUnknown  = types.FormatUnknown
	FormatMPEG     = types.FormatMPEG
	FormatADTS     = types.FormatADTS
	FormatOgg      = types.FormatOgg
	FormatFLAC     = types.FormatFLAC
	FormatRIFF     = types.FormatRIFF
	FormatAIFF     = types.FormatAIFF
	FormatMP4      = types.FormatMP4
	FormatAPEv2    = types.FormatAPEv2
	FormatMatroska = types.FormatMatroska
	FormatASF      = types.FormatASF
	FormatMusepack = types.FormatMusepack
	FormatWavPack  = types.FormatWavPack
	FormatDSF      = types.FormatDSF
	FormatDSDIFF   = types.FormatDSDIFF
)

// ContentType is a parsed MIME content type.
type ContentType = contenttype.ContentType

// ParseContentType parses a string such as "audio/mp4; codecs=alac".
func ParseContentType(raw string) (ContentType, error) {
	return contenttype.Parse(raw)
}

// DetectFormat determines the container format from file signatures.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}

// FormatForContentType returns the format a content type selects.
func FormatForContentType(raw string) (Format, error) {
	ct, err := contenttype.Parse(raw)
	if err != nil {
		return FormatUnknown, err
	}
	return registry.ForContentType(ct)
}

// SupportedFormats lists the formats with at least one registered parser.
func SupportedFormats() []Format {
	return registry.Formats()
}
