// Package artwork fills in the facts about embedded pictures that
// containers leave out: the image MIME type and its dimensions.
package artwork

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF for DecodeConfig
	_ "image/jpeg" // register JPEG for DecodeConfig
	_ "image/png"  // register PNG for DecodeConfig
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP for DecodeConfig
	_ "golang.org/x/image/tiff" // register TIFF for DecodeConfig
	_ "golang.org/x/image/webp" // register WebP for DecodeConfig

	"github.com/simonhull/commontags/internal/types"
)

// DetectMIME returns the image MIME type of data, or "" if data is not a
// recognizable image.
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	m := mimetype.Detect(data)
	if !strings.HasPrefix(m.String(), "image/") {
		return ""
	}
	mime, _, _ := strings.Cut(m.String(), ";")
	return mime
}

// Dimensions decodes the image header of data. It returns 0, 0 when the
// format is unsupported or the header is damaged.
func Dimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// Complete fills in the MIME type and dimensions of p where the container
// did not provide them. A declared MIME type is normalized ("jpg" and
// "JPG" become "image/jpeg") but otherwise trusted.
func Complete(p *types.Picture) {
	p.Format = normalizeMIME(p.Format)
	if p.Format == "" {
		p.Format = DetectMIME(p.Data)
	}
	if p.Width == 0 || p.Height == 0 {
		p.Width, p.Height = Dimensions(p.Data)
	}
}

// normalizeMIME turns the short image formats some tag writers store
// ("JPG", "png") into MIME types.
func normalizeMIME(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "-->":
		return ""
	case "jpg", "jpeg", "image/jpg":
		return "image/jpeg"
	case "png", "gif", "bmp", "webp", "tiff":
		return "image/" + s
	}
	return s
}

// PictureType returns the canonical name of an ID3/FLAC picture type code.
func PictureType(code int) string {
	return types.PictureType(code).String()
}
