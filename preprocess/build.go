package preprocess

import (
	"github.com/katalvlaran/jpsplus/goalbound"
	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/jumppoint"
)

// Build runs the full offline pipeline over g — jump points, distant
// jumps, then goal bounding — and folds the results into a PreprocessedMap.
// opts configure the goal-bounding flood's fixed-point cost units and
// bucket width; see goalbound.Option.
func Build(g *grid.Grid, opts ...goalbound.Option) (*PreprocessedMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	jt, err := jumppoint.Compute(g)
	if err != nil {
		return nil, err
	}
	bt, err := goalbound.Compute(g, jt, opts...)
	if err != nil {
		return nil, err
	}

	n := g.Width() * g.Height()
	m := &PreprocessedMap{
		width:  g.Width(),
		height: g.Height(),
		jump:   make([][grid.NumDirections]int16, n),
		bounds: make([][grid.NumDirections]goalbound.Bounds, n),
	}

	for idx := 0; idx < n; idx++ {
		coord := g.Coordinate(idx)
		if g.Blocked(coord.Row, coord.Col) {
			continue
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			m.jump[idx][d] = jt.DistantJump(idx, d)
			m.bounds[idx][d] = bt.Bounds(idx, d)
		}
	}

	return m, nil
}
