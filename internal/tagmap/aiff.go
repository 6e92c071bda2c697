package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// aiffTags maps the text chunks of an AIFF FORM. ID3 chunks inside AIFF are
// mapped with the ID3 tables.
var aiffTags = TagMap{
	"NAME": s.Title,
	"AUTH": s.Artist,
	"(c) ": s.Copyright,
	"ANNO": s.Comment,
	"COMT": s.Comment,
}
