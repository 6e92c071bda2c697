package types

import "fmt"

// FrontCover is the picture type preferred by cover selection.
const FrontCover = "Cover (front)"

// Picture is an embedded image.
type Picture struct {
	// MIME type of the image data ("image/jpeg", "image/png", ...)
	Format string `json:"format" yaml:"format"`

	// Picture type name, e.g. "Cover (front)". Empty when the container
	// does not type its pictures.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Data        []byte `json:"-" yaml:"-"`

	// Dimensions (if available in metadata, otherwise 0)
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// String returns a human-readable description of the picture.
//
// Example output: "Cover (front) (1200x1200 JPEG, 245KB)"
func (p Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	typ := p.Type
	if typ == "" {
		typ = "Picture"
	}
	return fmt.Sprintf("%s (%s%s, %s)", typ, dims, mimeToFormat(p.Format), formatSize(len(p.Data)))
}

// PictureType is an ID3v2 APIC / FLAC PICTURE type code.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType int

const (
	PictureOther PictureType = iota
	PictureIcon
	PictureOtherIcon
	PictureFrontCover
	PictureBackCover
	PictureLeaflet
	PictureMedia
	PictureLeadArtist
	PictureArtist
	PictureConductor
	PictureBand
	PictureComposer
	PictureLyricist
	PictureRecordingLocation
	PictureDuringRecording
	PictureDuringPerformance
	PictureVideoCapture
	PictureBrightFish
	PictureIllustration
	PictureBandLogotype
	PicturePublisherLogotype
)

var pictureTypeNames = [...]string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	FrontCover,
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

// String returns the canonical name of the picture type. Codes outside the
// defined range are reported as "Other".
func (t PictureType) String() string {
	if t < 0 || int(t) >= len(pictureTypeNames) {
		return pictureTypeNames[PictureOther]
	}
	return pictureTypeNames[t]
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
