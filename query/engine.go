package query

import (
	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/openlist"
	"github.com/katalvlaran/jpsplus/preprocess"
)

// Engine answers repeated shortest-path queries against one static grid
// and its PreprocessedMap.
type Engine struct {
	g   *grid.Grid
	pm  *preprocess.PreprocessedMap
	cfg openlist.Options

	nodes     []searchNode
	iteration uint32
	openList  *openlist.List

	lastStart  grid.Coord
	lastGoal   grid.Coord
	lastValid  bool
	lastStatus Status
	lastPath   []grid.Coord
}

// NewEngine builds an Engine for g and pm, which must describe the same
// dimensions. opts configure the underlying open list's tier capacities.
func NewEngine(g *grid.Grid, pm *preprocess.PreprocessedMap, opts ...openlist.Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if pm == nil {
		return nil, ErrNilPreprocessedMap
	}
	if g.Width() != pm.Width() || g.Height() != pm.Height() {
		return nil, ErrDimensionMismatch
	}

	return &Engine{
		g:        g,
		pm:       pm,
		nodes:    make([]searchNode, g.Width()*g.Height()),
		openList: openlist.New(opts...),
	}, nil
}

// node returns the arena slot for idx, resetting it to the "unseen this
// iteration" state if it belongs to a stale iteration. This is the same
// iteration-counter reuse technique used by package goalbound's Flooder,
// avoiding an O(N) clear of the arena between queries.
func (e *Engine) node(idx int) *searchNode {
	n := &e.nodes[idx]
	if n.iteration != e.iteration {
		*n = searchNode{iteration: e.iteration}
	}

	return n
}

// heuristic computes the octile distance estimate between a and b in the
// query engine's fixed-point unit.
func heuristic(a, b grid.Coord) int32 {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	minD, maxD := dr, dc
	if minD > maxD {
		minD, maxD = maxD, minD
	}

	return int32(maxD)*cardinalUnit + int32(minD)*sqrt2MinusOne
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func stepUnit(d grid.Direction) int32 {
	if d.IsDiagonal() {
		return diagonalUnit
	}

	return cardinalUnit
}
