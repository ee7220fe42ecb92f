package preprocess

import (
	"errors"

	"github.com/katalvlaran/jpsplus/goalbound"
	"github.com/katalvlaran/jpsplus/grid"
)

// Sentinel errors returned by this package.
var (
	ErrNilGrid           = errors.New("preprocess: grid must not be nil")
	ErrNilMap            = errors.New("preprocess: map must not be nil")
	ErrDimensionMismatch = errors.New("preprocess: grid and map dimensions disagree")
	ErrCorruptFile       = errors.New("preprocess: corrupt preprocessed file")
)

// PreprocessedMap is the flat, query-ready union of a jump-distance table
// and a goal-bounding table. It carries no wall bitmap of its own; callers
// load the originating grid in parallel, exactly as the query engine's
// prepare step does.
type PreprocessedMap struct {
	width, height int
	jump          [][grid.NumDirections]int16
	bounds        [][grid.NumDirections]goalbound.Bounds
}

// Width returns the column count of the grid this map was built for.
func (m *PreprocessedMap) Width() int { return m.width }

// Height returns the row count of the grid this map was built for.
func (m *PreprocessedMap) Height() int { return m.height }

// DistantJump returns the signed jump distance from the cell at row-major
// index idx in direction d. See package jumppoint for the sign convention.
func (m *PreprocessedMap) DistantJump(idx int, d grid.Direction) int16 {
	return m.jump[idx][d]
}

// GoalBounds returns the bounding box of goals reachable via direction d
// from the cell at idx.
func (m *PreprocessedMap) GoalBounds(idx int, d grid.Direction) goalbound.Bounds {
	return m.bounds[idx][d]
}

// BlockedBitfield derives the 8-bit mask of directions immediately blocked
// from the cell at idx, exactly as jumppoint.Table.BlockedBitfield does.
func (m *PreprocessedMap) BlockedBitfield(idx int) uint16 {
	var mask uint16
	row := &m.jump[idx]
	for d := grid.Direction(0); d < grid.NumDirections; d++ {
		if row[d] == 0 {
			mask |= 1 << uint(d)
		}
	}

	return mask
}
