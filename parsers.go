package commontags

// Format parsers register themselves with the registry from init.
import (
	_ "github.com/simonhull/commontags/internal/aiff"
	_ "github.com/simonhull/commontags/internal/ape"
	_ "github.com/simonhull/commontags/internal/flac"
	_ "github.com/simonhull/commontags/internal/m4a"
	_ "github.com/simonhull/commontags/internal/mp3"
	_ "github.com/simonhull/commontags/internal/ogg"
	_ "github.com/simonhull/commontags/internal/riff"
	_ "github.com/simonhull/commontags/internal/taglib"
	_ "github.com/simonhull/commontags/internal/tagreader"
)
