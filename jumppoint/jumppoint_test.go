package jumppoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/jumppoint"
)

func TestCompute_NilGrid(t *testing.T) {
	_, err := jumppoint.Compute(nil)
	assert.ErrorIs(t, err, jumppoint.ErrNilGrid)
}

func TestCompute_OpenField_NoWallAdjacent(t *testing.T) {
	g, err := grid.NewUniform(5, 5)
	require.NoError(t, err)

	tbl, err := jumppoint.Compute(g)
	require.NoError(t, err)

	// Middle of an open 5x5 field: no walls anywhere, so Right from (2,2)
	// should report a negative distance to the grid boundary, never a
	// positive jump-point distance (open terrain has no forced neighbors).
	idx := g.Index(2, 2)
	assert.Less(t, tbl.DistantJump(idx, grid.Right), int16(0))
}

func TestCompute_ImmediateWall_IsZero(t *testing.T) {
	g, err := grid.New([][]bool{
		{true, false},
		{true, true},
	})
	require.NoError(t, err)

	tbl, err := jumppoint.Compute(g)
	require.NoError(t, err)

	idx := g.Index(0, 0)
	assert.Equal(t, int16(0), tbl.DistantJump(idx, grid.Right))
}

func TestCompute_BlockedBitfield(t *testing.T) {
	g, err := grid.New([][]bool{
		{true, false},
		{true, true},
	})
	require.NoError(t, err)

	tbl, err := jumppoint.Compute(g)
	require.NoError(t, err)

	idx := g.Index(0, 0)
	mask := tbl.BlockedBitfield(idx)
	assert.NotZero(t, mask&(1<<uint(grid.Right)), "Right must be flagged blocked")
}

// A single obstacle interior to an open field must create a jump point:
// moving Right along the row above the obstacle, the cell just past the
// obstacle's row-above neighbor becomes a forced-neighbor jump point.
func TestCompute_ForcedNeighbor_CreatesJumpPoint(t *testing.T) {
	rows := make([][]bool, 5)
	for r := range rows {
		rows[r] = make([]bool, 5)
		for c := range rows[r] {
			rows[r][c] = true
		}
	}
	rows[2][2] = false // single obstacle at (2,2)

	g, err := grid.New(rows)
	require.NoError(t, err)

	tbl, err := jumppoint.Compute(g)
	require.NoError(t, err)

	// Traveling Right along row 1 (above the obstacle), column 3 is a jump
	// point: (2,3) is open while (2,2) (diagonally behind-perpendicular) is
	// blocked, forcing a turn through (1,3)->(2,3). From (1,0) that jump
	// point lies 3 steps to the Right.
	idx := g.Index(1, 0)
	assert.Greater(t, tbl.DistantJump(idx, grid.Right), int16(0))
}

func TestCompute_DiagonalDistance_Positive_WhenCardinalJumpAdjacent(t *testing.T) {
	rows := make([][]bool, 6)
	for r := range rows {
		rows[r] = make([]bool, 6)
		for c := range rows[r] {
			rows[r][c] = true
		}
	}
	rows[3][3] = false

	g, err := grid.New(rows)
	require.NoError(t, err)

	tbl, err := jumppoint.Compute(g)
	require.NoError(t, err)

	// (1,1) moving DownRight toward (2,2): (2,2) has a positive Down or
	// Right jump distance induced by the obstacle at (3,3), so the diagonal
	// distance from (1,1) must be exactly 1 by construction.
	idx := g.Index(1, 1)
	assert.Equal(t, int16(1), tbl.DistantJump(idx, grid.DownRight))
}
