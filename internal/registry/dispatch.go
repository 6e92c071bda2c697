package registry

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/juho05/log"

	"github.com/simonhull/commontags/internal/contenttype"
	"github.com/simonhull/commontags/internal/types"
)

// mimeFormats maps "type/subtype" (lowercase, without suffix) to a format.
var mimeFormats = map[string]types.Format{
	"audio/mpeg":             types.FormatMPEG,
	"audio/mp3":              types.FormatMPEG,
	"audio/mpa":              types.FormatMPEG,
	"audio/mpeg3":            types.FormatMPEG,
	"audio/x-mpeg":           types.FormatMPEG,
	"audio/x-mp3":            types.FormatMPEG,
	"audio/aac":              types.FormatADTS,
	"audio/aacp":             types.FormatADTS,
	"audio/x-aac":            types.FormatADTS,
	"audio/flac":             types.FormatFLAC,
	"audio/x-flac":           types.FormatFLAC,
	"audio/ogg":              types.FormatOgg,
	"audio/opus":             types.FormatOgg,
	"audio/vorbis":           types.FormatOgg,
	"audio/speex":            types.FormatOgg,
	"audio/x-ogg":            types.FormatOgg,
	"application/ogg":        types.FormatOgg,
	"video/ogg":              types.FormatOgg,
	"audio/wav":              types.FormatRIFF,
	"audio/wave":             types.FormatRIFF,
	"audio/x-wav":            types.FormatRIFF,
	"audio/vnd.wave":         types.FormatRIFF,
	"audio/x-pn-wav":         types.FormatRIFF,
	"audio/aiff":             types.FormatAIFF,
	"audio/x-aiff":           types.FormatAIFF,
	"audio/x-aifc":           types.FormatAIFF,
	"audio/mp4":              types.FormatMP4,
	"audio/m4a":              types.FormatMP4,
	"audio/x-m4a":            types.FormatMP4,
	"audio/x-m4b":            types.FormatMP4,
	"audio/x-mp4":            types.FormatMP4,
	"audio/3gpp":             types.FormatMP4,
	"video/mp4":              types.FormatMP4,
	"video/quicktime":        types.FormatMP4,
	"audio/ape":              types.FormatAPEv2,
	"audio/x-ape":            types.FormatAPEv2,
	"audio/monkeys-audio":    types.FormatAPEv2,
	"audio/webm":             types.FormatMatroska,
	"video/webm":             types.FormatMatroska,
	"audio/matroska":         types.FormatMatroska,
	"audio/x-matroska":       types.FormatMatroska,
	"video/x-matroska":       types.FormatMatroska,
	"audio/x-ms-wma":         types.FormatASF,
	"audio/x-ms-asf":         types.FormatASF,
	"video/x-ms-asf":         types.FormatASF,
	"video/x-ms-wmv":         types.FormatASF,
	"application/vnd.ms-asf": types.FormatASF,
	"audio/musepack":         types.FormatMusepack,
	"audio/x-musepack":       types.FormatMusepack,
	"audio/wavpack":          types.FormatWavPack,
	"audio/x-wavpack":        types.FormatWavPack,
	"audio/dsf":              types.FormatDSF,
	"audio/x-dsf":            types.FormatDSF,
	"audio/dff":              types.FormatDSDIFF,
	"audio/x-dff":            types.FormatDSDIFF,
}

// extFormats maps lowercase file extensions, without the dot, to a format.
var extFormats = map[string]types.Format{
	"mp3":  types.FormatMPEG,
	"mp2":  types.FormatMPEG,
	"m2a":  types.FormatMPEG,
	"aac":  types.FormatADTS,
	"flac": types.FormatFLAC,
	"ogg":  types.FormatOgg,
	"oga":  types.FormatOgg,
	"ogv":  types.FormatOgg,
	"ogm":  types.FormatOgg,
	"opus": types.FormatOgg,
	"spx":  types.FormatOgg,
	"wav":  types.FormatRIFF,
	"wave": types.FormatRIFF,
	"aif":  types.FormatAIFF,
	"aiff": types.FormatAIFF,
	"aifc": types.FormatAIFF,
	"m4a":  types.FormatMP4,
	"m4b":  types.FormatMP4,
	"m4p":  types.FormatMP4,
	"m4v":  types.FormatMP4,
	"mp4":  types.FormatMP4,
	"3gp":  types.FormatMP4,
	"mov":  types.FormatMP4,
	"ape":  types.FormatAPEv2,
	"mka":  types.FormatMatroska,
	"mkv":  types.FormatMatroska,
	"mk3d": types.FormatMatroska,
	"webm": types.FormatMatroska,
	"asf":  types.FormatASF,
	"wma":  types.FormatASF,
	"wmv":  types.FormatASF,
	"mpc":  types.FormatMusepack,
	"mp+":  types.FormatMusepack,
	"wv":   types.FormatWavPack,
	"wvp":  types.FormatWavPack,
	"dsf":  types.FormatDSF,
	"dff":  types.FormatDSDIFF,
}

// ForContentType returns the format for a parsed content type. Lookup
// ignores any structured syntax suffix and parameters.
func ForContentType(ct contenttype.ContentType) (types.Format, error) {
	key := ct.Type + "/" + ct.Subtype
	if f, ok := mimeFormats[key]; ok {
		return f, nil
	}
	return types.FormatUnknown, &types.UnsupportedFormatError{
		Reason:   fmt.Sprintf("content type %q", key),
		NoParser: true,
	}
}

// ForExtension returns the format for a file extension, with or without
// the leading dot.
func ForExtension(ext string) (types.Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return types.FormatUnknown, &types.UnsupportedFormatError{
		Reason:   fmt.Sprintf("extension %q", ext),
		NoParser: true,
	}
}

// sniffLen is the number of leading bytes handed to content sniffing.
const sniffLen = 3072

// Sniff identifies a format from the leading bytes of r. Magic bytes are
// checked first; anything else goes through MIME sniffing and the content
// type table.
func Sniff(r io.ReaderAt, size int64) (types.Format, error) {
	f, err := types.DetectFormat(r, size, "")
	if err == nil {
		return f, nil
	}

	head := make([]byte, min(size, sniffLen))
	n, rerr := r.ReadAt(head, 0)
	if rerr != nil && !errors.Is(rerr, io.EOF) {
		return types.FormatUnknown, fmt.Errorf("sniff: %w", rerr)
	}
	mime := mimetype.Detect(head[:n]).String()
	ct, perr := contenttype.Parse(mime)
	if perr != nil {
		return types.FormatUnknown, err
	}
	if f, ferr := ForContentType(ct); ferr == nil {
		log.Tracef("sniffed %s as %s", mime, f)
		return f, nil
	}
	return types.FormatUnknown, err
}

// Hint carries what is known about an input before it is read.
type Hint struct {
	// ContentType is a MIME content type, e.g. from an HTTP header.
	ContentType string
	// Path is a file name whose extension may identify the format.
	Path string
}

// Resolve picks the format of an input. An explicit content type is tried
// first, then the path's extension, then the content itself. A malformed
// or unknown hint falls through to the next one. The returned error wraps
// types.ErrNoParser when nothing matches.
func Resolve(hint Hint, r io.ReaderAt, size int64) (types.Format, error) {
	if hint.ContentType != "" {
		ct, err := contenttype.Parse(hint.ContentType)
		if err != nil {
			log.Tracef("ignoring content type hint: %v", err)
		} else if f, err := ForContentType(ct); err == nil {
			return f, nil
		}
	}

	if ext := filepath.Ext(hint.Path); ext != "" {
		if f, err := ForExtension(ext); err == nil {
			return f, nil
		}
	}

	if r == nil {
		return types.FormatUnknown, &types.UnsupportedFormatError{
			Path:     hint.Path,
			Reason:   "no usable hint",
			NoParser: true,
		}
	}
	f, err := Sniff(r, size)
	if err != nil {
		var ufe *types.UnsupportedFormatError
		if errors.As(err, &ufe) && ufe.Path == "" {
			return types.FormatUnknown, &types.UnsupportedFormatError{
				Path:     hint.Path,
				Reason:   ufe.Reason,
				NoParser: true,
			}
		}
		return types.FormatUnknown, err
	}
	return f, nil
}
