package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// riffInfoTags maps RIFF LIST/INFO chunk ids (the EXIF-derived vocabulary
// used by WAV files).
var riffInfoTags = TagMap{
	"IART": s.Artist,
	"ICRD": s.Date,
	"INAM": s.Title,
	"IPRD": s.Album,
	"ITRK": s.Track,
	"IPRT": s.Track,
	"ICMT": s.Comment,
	"ICNT": s.ReleaseCountry,
	"IGNR": s.Genre,
	"IWRI": s.Writer,
	"IMUS": s.Composer,
	"ISFT": s.EncodedBy,
	"IENG": s.Engineer,
	"ITCH": s.Technician,
	"IMED": s.Media,
	"ICOP": s.Copyright,
	"ILNG": s.Language,
	"IKEY": s.Keywords,
	"ISRC": s.ISRC,
	"IPRO": s.Producer,
	"IBPM": s.BPM,
	"ILYC": s.Lyrics,
}
