package commontags

import (
	"github.com/simonhull/commontags/internal/collector"
	"github.com/simonhull/commontags/internal/types"
)

// Picture is an embedded image.
type Picture = types.Picture

// PictureType is an ID3/FLAC picture type code.
type PictureType = types.PictureType

// FrontCover is the Picture.Type of a front cover.
const FrontCover = types.FrontCover

// PartOfSet is a track or disk position.
type PartOfSet = types.PartOfSet

// Rating is a normalized rating in [0,1].
type Rating = types.Rating

// Comment is a comment with its language and description.
type Comment = types.Comment

// SelectCover returns the front cover, else the first picture, else nil.
func SelectCover(pictures []Picture) *Picture {
	return collector.SelectCover(pictures)
}

// RatingToStars converts a rating in [0,1] to 1-5 stars; nil is 0.
func RatingToStars(rating *float64) int {
	return collector.RatingToStars(rating)
}

// JoinArtists joins credits as "A, B & C".
func JoinArtists(artists []string) string {
	return collector.JoinArtists(artists)
}
