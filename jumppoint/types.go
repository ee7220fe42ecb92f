package jumppoint

import (
	"errors"

	"github.com/katalvlaran/jpsplus/grid"
)

// ErrNilGrid is returned by Compute when given a nil grid.
var ErrNilGrid = errors.New("jumppoint: grid must not be nil")

// Table holds, for every cell of a grid, the signed jump distance in each of
// the eight octile directions. Blocked cells carry all-zero rows; callers
// should not query a blocked cell's distances.
type Table struct {
	width, height int
	jump          [][grid.NumDirections]int16
}

// Width returns the column count of the grid this Table was computed for.
func (t *Table) Width() int { return t.width }

// Height returns the row count of the grid this Table was computed for.
func (t *Table) Height() int { return t.height }

// DistantJump returns the signed jump distance from the cell at row-major
// index idx in direction d. A positive value is the number of steps to a
// jump point with every intervening cell passable; zero means the
// immediate neighbor in that direction is blocked; a negative value is the
// number of passable steps before a wall, with no jump point in between.
func (t *Table) DistantJump(idx int, d grid.Direction) int16 {
	return t.jump[idx][d]
}

// BlockedBitfield derives the 8-bit mask of directions immediately blocked
// from the cell at idx: bit d is set exactly when DistantJump(idx, d) == 0.
// This mask is the blockedBitfield input to dispatch.ProbeMask, used by
// both the offline flood (package goalbound) and the online query engine.
func (t *Table) BlockedBitfield(idx int) uint16 {
	var mask uint16
	row := &t.jump[idx]
	for d := grid.Direction(0); d < grid.NumDirections; d++ {
		if row[d] == 0 {
			mask |= 1 << uint(d)
		}
	}

	return mask
}
