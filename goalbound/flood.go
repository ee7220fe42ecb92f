package goalbound

import (
	"github.com/katalvlaran/jpsplus/dispatch"
	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/jumppoint"
)

// floodNode is one slot of the preallocated node arena. Data is only valid
// when iteration matches the Flooder's current iteration counter; this
// lets Flooder reuse the same arena across many floods without zeroing it
// between runs.
type floodNode struct {
	iteration    uint32
	givenCost    int32
	onOpen       bool
	closed       bool
	hasIncoming  bool
	incoming     grid.Direction
	dirFromStart grid.Direction
}

// Flooder runs repeated single-source Dijkstra floods over a static grid,
// reusing one preallocated node arena and one bucketQueue across calls.
type Flooder struct {
	g         *grid.Grid
	jt        *jumppoint.Table
	cfg       Options
	nodes     []floodNode
	iteration uint32
	queue     *bucketQueue
}

// NewFlooder builds a Flooder for g, using jt for per-cell blocked-direction
// masks. g and jt must describe the same dimensions. opts override the
// fixed-point cost units and bucket width from DefaultOptions.
func NewFlooder(g *grid.Grid, jt *jumppoint.Table, opts ...Option) *Flooder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Width() * g.Height()

	return &Flooder{
		g:     g,
		jt:    jt,
		cfg:   cfg,
		nodes: make([]floodNode, n),
		queue: newBucketQueue(cfg.BucketWidth),
	}
}

// node returns the arena slot for idx, resetting it to the "unseen this
// iteration" state if it belongs to a stale iteration.
func (f *Flooder) node(idx int) *floodNode {
	n := &f.nodes[idx]
	if n.iteration != f.iteration {
		*n = floodNode{iteration: f.iteration}
	}

	return n
}

// Flood runs a fresh Dijkstra flood from startIdx. After it returns, callers
// use DirectionFromStart to read back each reached cell's first-step
// direction.
func (f *Flooder) Flood(startIdx int) {
	f.iteration++
	f.queue.reset()

	start := f.node(startIdx)
	start.givenCost = 0
	start.onOpen = true

	f.queue.push(int32(startIdx), 0)

	for {
		entry, ok := f.queue.pop()
		if !ok {
			break
		}
		idx := int(entry.index)
		cur := f.node(idx)
		if cur.closed {
			continue
		}
		cur.onOpen = false
		cur.closed = true

		f.expand(idx, cur)
	}
}

// expand probes cur's successor directions and relaxes each reachable
// neighbor.
func (f *Flooder) expand(idx int, cur *floodNode) {
	mask := dispatch.ProbeMask(f.jt.BlockedBitfield(idx), cur.incoming, cur.hasIncoming)
	coord := f.g.Coordinate(idx)

	for d := grid.Direction(0); d < grid.NumDirections; d++ {
		if mask&(1<<uint(d)) == 0 {
			continue
		}
		nr, nc, inBounds := f.g.Step(coord.Row, coord.Col, d)
		if !inBounds || f.g.Blocked(nr, nc) {
			continue
		}
		if d.IsDiagonal() && !f.g.DiagonalCornersPassable(coord.Row, coord.Col, d) {
			continue
		}

		step := f.cfg.CardinalCost
		if d.IsDiagonal() {
			step = f.cfg.DiagonalCost
		}
		newCost := cur.givenCost + step

		var dirFromStart grid.Direction
		if cur.hasIncoming {
			dirFromStart = cur.dirFromStart
		} else {
			dirFromStart = d // start's own expansion originates each label
		}

		nIdx := f.g.Index(nr, nc)
		f.relax(nIdx, d, dirFromStart, newCost)
	}
}

// relax applies a candidate newCost to the node at nIdx, pushing it fresh,
// decreasing its key if still open and cheaper, or ignoring it if closed or
// not an improvement.
func (f *Flooder) relax(nIdx int, incoming grid.Direction, dirFromStart grid.Direction, newCost int32) {
	n := f.node(nIdx)
	switch {
	case !n.onOpen && !n.closed:
		// First visit this iteration (node() already reset it for us).
		n.givenCost = newCost
		n.onOpen = true
		n.hasIncoming = true
		n.incoming = incoming
		n.dirFromStart = dirFromStart
		f.queue.push(int32(nIdx), newCost)
	case n.onOpen && newCost < n.givenCost:
		old := n.givenCost
		n.givenCost = newCost
		n.incoming = incoming
		n.dirFromStart = dirFromStart
		f.queue.decreaseKey(int32(nIdx), old, newCost)
	default:
		// Closed, or open but not an improvement: ignore.
	}
}

// DirectionFromStart reports the direction taken for the first step of the
// optimal path from the most recent Flood's start to idx, and whether idx
// was reached at all.
func (f *Flooder) DirectionFromStart(idx int) (grid.Direction, bool) {
	n := &f.nodes[idx]
	if n.iteration != f.iteration || !n.hasIncoming {
		return 0, false
	}

	return n.dirFromStart, true
}
