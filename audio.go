package commontags

import (
	"github.com/simonhull/commontags/internal/types"
)

// AudioInfo holds technical audio properties.
type AudioInfo = types.AudioInfo
