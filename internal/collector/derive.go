package collector

import (
	"math"
	"strings"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

// JoinArtists formats a credits list: "A", "A & B", "A, B & C".
func JoinArtists(artists []string) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0]
	default:
		last := len(artists) - 1
		return strings.Join(artists[:last], ", ") + " & " + artists[last]
	}
}

// RatingToStars converts a rating in [0,1] to whole stars. An absent
// rating is 0 stars; any present rating is between 1 and 5.
func RatingToStars(rating *float64) int {
	if rating == nil || math.IsNaN(*rating) {
		return 0
	}
	stars := int(math.Floor(*rating*4+0.5)) + 1
	return min(max(stars, 1), 5)
}

// SelectCover returns the first front cover, or the first picture if none
// is typed as one, or nil for no pictures.
func SelectCover(pictures []types.Picture) *types.Picture {
	if len(pictures) == 0 {
		return nil
	}
	for i := range pictures {
		if pictures[i].Type == types.FrontCover {
			return &pictures[i]
		}
	}
	return &pictures[0]
}

// derive fills in fields implied by others. Explicit values always win.
func derive(m *Metadata) {
	if _, ok := m.singles[schema.Artist]; !ok {
		if artists := m.Strings(schema.Artists); len(artists) > 0 {
			m.set(schema.Artist, JoinArtists(artists))
		}
	}

	deriveYear(m, schema.Year, schema.Date)
	deriveYear(m, schema.OriginalYear, schema.OriginalDate)

	deriveTotal(m, schema.Track, schema.TotalTracks)
	deriveTotal(m, schema.Disk, schema.TotalDiscs)
}

func deriveYear(m *Metadata, year, date schema.SingletonKey) {
	if _, ok := m.singles[year]; ok {
		return
	}
	if y, ok := schema.LeadingYear(m.Text(date)); ok {
		m.set(year, y)
	}
}

func deriveTotal(m *Metadata, pos, total schema.SingletonKey) {
	n, ok := m.Int(total)
	if !ok || n <= 0 {
		return
	}
	p := m.PartOfSet(pos)
	if p.Of != nil {
		return
	}
	p.Of = &n
	m.set(pos, p)
}
