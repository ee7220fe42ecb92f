package goalbound

import (
	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/jumppoint"
)

// Compute builds a Table by flooding from every passable cell of g and
// aggregating, per (start, direction), the bounding box of every cell
// reached via that outgoing direction. opts override the flood's
// fixed-point cost units and bucket width from DefaultOptions.
//
// Complexity: O(N) floods, O(N^2) overall in the number of passable cells.
func Compute(g *grid.Grid, jt *jumppoint.Table, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if jt == nil {
		return nil, ErrNilJumpTable
	}

	w, h := g.Width(), g.Height()
	t := &Table{
		width:  w,
		height: h,
		bounds: make([][grid.NumDirections]Bounds, w*h),
	}
	for i := range t.bounds {
		for d := range t.bounds[i] {
			t.bounds[i][d].Empty = true
		}
	}

	flooder := NewFlooder(g, jt, opts...)

	for startIdx := 0; startIdx < w*h; startIdx++ {
		startCoord := g.Coordinate(startIdx)
		if g.Blocked(startCoord.Row, startCoord.Col) {
			continue
		}

		flooder.Flood(startIdx)

		for targetIdx := 0; targetIdx < w*h; targetIdx++ {
			if targetIdx == startIdx {
				continue
			}
			dir, reached := flooder.DirectionFromStart(targetIdx)
			if !reached {
				continue
			}
			target := g.Coordinate(targetIdx)
			t.bounds[startIdx][dir].include(target.Row, target.Col)
		}
	}

	return t, nil
}
