package m4a

import (
	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/types"
)

// coverPicture builds a Picture from a covr data atom. The data type names
// the image format; covr images carry no picture type, and by convention
// they are the front cover.
func coverPicture(typ uint32, data []byte) types.Picture {
	pic := types.Picture{
		Format: flagsToMIMEType(typ),
		Type:   types.FrontCover,
		Data:   data,
	}
	artwork.Complete(&pic)
	return pic
}

// flagsToMIMEType converts a data atom type to a MIME type. Implicit
// types are left for content sniffing.
func flagsToMIMEType(typ uint32) string {
	switch typ {
	case dataJPEG:
		return "image/jpeg"
	case dataPNG:
		return "image/png"
	case dataBMP:
		return "image/bmp"
	default:
		return ""
	}
}
