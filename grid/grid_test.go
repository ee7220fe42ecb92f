package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jpsplus/grid"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"NoRows", [][]bool{}, grid.ErrEmptyGrid},
		{"NoCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, true}, {true}}, grid.ErrRowLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_TooLarge(t *testing.T) {
	_, err := grid.NewUniform(grid.MaxDimension+1, 1)
	assert.ErrorIs(t, err, grid.ErrTooLarge)
}

func TestPassableAndBounds(t *testing.T) {
	g, err := grid.New([][]bool{
		{true, false, true},
		{true, true, true},
	})
	require.NoError(t, err)

	assert.True(t, g.Passable(0, 0))
	assert.False(t, g.Passable(0, 1))
	assert.True(t, g.Blocked(0, 1))

	// Out of bounds is always blocked, never panics.
	assert.False(t, g.Passable(-1, 0))
	assert.False(t, g.Passable(2, 0))
	assert.False(t, g.Passable(0, 3))
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.NewUniform(5, 4)
	require.NoError(t, err)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			idx := g.Index(r, c)
			got := g.Coordinate(idx)
			assert.Equal(t, grid.Coord{Row: r, Col: c}, got)
		}
	}
}

func TestDirectionOppositeAndDelta(t *testing.T) {
	assert.Equal(t, grid.Up, grid.Down.Opposite())
	assert.Equal(t, grid.Left, grid.Right.Opposite())
	assert.False(t, grid.Down.IsDiagonal())
	assert.True(t, grid.DownRight.IsDiagonal())

	dr, dc := grid.DownRight.Delta()
	assert.Equal(t, 1, dr)
	assert.Equal(t, 1, dc)
}

func TestDiagonalCornersPassable(t *testing.T) {
	g, err := grid.New([][]bool{
		{true, false},
		{true, true},
	})
	require.NoError(t, err)

	// Moving DownRight from (0,0) cuts corners (1,0) and (0,1); (0,1) is blocked.
	assert.False(t, g.DiagonalCornersPassable(0, 0, grid.DownRight))
}
