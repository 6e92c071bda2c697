package collector

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simonhull/commontags/internal/types"
)

func TestJoinArtists(t *testing.T) {
	assert.Equal(t, "David Bowie", JoinArtists([]string{"David Bowie"}))
	assert.Equal(t, "David Bowie & Stevie Ray Vaughan",
		JoinArtists([]string{"David Bowie", "Stevie Ray Vaughan"}))
	assert.Equal(t, "David Bowie, Queen & Mick Ronson",
		JoinArtists([]string{"David Bowie", "Queen", "Mick Ronson"}))
	assert.Equal(t, "A, B, C & D", JoinArtists([]string{"A", "B", "C", "D"}))
	assert.Equal(t, "", JoinArtists(nil))
}

func ptr(f float64) *float64 { return &f }

func TestRatingToStars(t *testing.T) {
	tests := []struct {
		rating *float64
		want   int
	}{
		{nil, 0},
		{ptr(0), 1},
		{ptr(0.1), 1},
		{ptr(0.2), 2},
		{ptr(0.5), 3},
		{ptr(0.75), 4},
		{ptr(1), 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RatingToStars(tc.rating), "%v", tc.rating)
	}
}

func TestRatingToStars_Range(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		stars := RatingToStars(ptr(r.Float64()))
		assert.GreaterOrEqual(t, stars, 1)
		assert.LessOrEqual(t, stars, 5)
	}
}

func TestSelectCover(t *testing.T) {
	back := types.Picture{Type: "Cover (back)", Data: []byte{1}}
	front := types.Picture{Type: types.FrontCover, Data: []byte{2}}
	front2 := types.Picture{Type: types.FrontCover, Data: []byte{3}}
	untyped := types.Picture{Data: []byte{4}}

	assert.Equal(t, &front, SelectCover([]types.Picture{back, untyped, front, front2}))
	assert.Equal(t, &back, SelectCover([]types.Picture{back, untyped}))
	assert.Equal(t, &untyped, SelectCover([]types.Picture{untyped}))
	assert.Nil(t, SelectCover(nil))
	assert.Nil(t, SelectCover([]types.Picture{}))
}
