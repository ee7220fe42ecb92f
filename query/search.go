package query

import (
	"github.com/katalvlaran/jpsplus/dispatch"
	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/openlist"
)

// search runs one best-first jump-point search from start to goal.
func (e *Engine) search(start, goal grid.Coord) ([]grid.Coord, Status, error) {
	if e.g.Blocked(start.Row, start.Col) || e.g.Blocked(goal.Row, goal.Col) {
		return nil, StatusNoPath, nil
	}

	startIdx := e.g.Index(start.Row, start.Col)
	goalIdx := e.g.Index(goal.Row, goal.Col)

	if startIdx == goalIdx {
		return []grid.Coord{start}, StatusPathFound, nil
	}

	e.iteration++
	e.openList.Reset()

	sNode := e.node(startIdx)
	sNode.givenCost = 0
	sNode.heuristic = heuristic(start, goal)
	sNode.finalCost = sNode.heuristic
	sNode.onOpen = true

	if err := e.openList.PushTierA(openlist.Entry{Index: int32(startIdx), Cost: sNode.finalCost}); err != nil {
		return nil, StatusUnknown, err
	}

	for {
		entry, ok := e.openList.Pop()
		if !ok {
			return nil, StatusNoPath, nil
		}
		idx := int(entry.Index)
		cur := &e.nodes[idx]
		if cur.closed {
			continue
		}
		cur.onOpen = false
		cur.closed = true

		if idx == goalIdx {
			return e.reconstructPath(goalIdx), StatusPathFound, nil
		}

		if err := e.expand(idx, cur, goal); err != nil {
			return nil, StatusUnknown, err
		}
	}
}

// expand probes idx's successor directions, gated by the goal-bounds table,
// and relaxes each jump successor found.
func (e *Engine) expand(idx int, cur *searchNode, goal grid.Coord) error {
	mask := dispatch.ProbeMask(e.pm.BlockedBitfield(idx), cur.incoming, cur.hasIncoming)
	coord := e.g.Coordinate(idx)

	for d := grid.Direction(0); d < grid.NumDirections; d++ {
		if mask&(1<<uint(d)) == 0 {
			continue
		}
		if !e.pm.GoalBounds(idx, d).Contains(goal.Row, goal.Col) {
			continue
		}

		result, ok := e.jumpSuccessor(idx, coord, d, goal)
		if !ok {
			continue
		}

		succIdx := e.g.Index(result.coord.Row, result.coord.Col)
		cost := int32(result.steps) * stepUnit(d)
		if err := e.relax(idx, succIdx, cost, d, goal); err != nil {
			return err
		}
	}

	return nil
}

// relax applies a candidate step from parentIdx to succIdx. A first visit
// this iteration is pushed fresh into the tier its finalCost earns it; a
// cheaper revisit of an already-open node updates its cost in place
// without changing tiers, which is safe because tier assignment only ever
// happens on a node's first visit.
func (e *Engine) relax(parentIdx, succIdx int, stepCost int32, incoming grid.Direction, goal grid.Coord) error {
	parent := &e.nodes[parentIdx]
	n := e.node(succIdx)
	newGiven := parent.givenCost + stepCost

	switch {
	case !n.onOpen && !n.closed:
		succCoord := e.g.Coordinate(succIdx)
		n.heuristic = heuristic(succCoord, goal)
		n.givenCost = newGiven
		n.finalCost = newGiven + n.heuristic
		n.parent = int32(parentIdx)
		n.incoming = incoming
		n.hasIncoming = true
		n.onOpen = true

		entry := openlist.Entry{Index: int32(succIdx), Cost: n.finalCost}
		if n.finalCost <= parent.finalCost {
			return e.openList.PushTierA(entry)
		}

		return e.openList.PushTierB(entry)
	case n.onOpen && newGiven < n.givenCost:
		n.givenCost = newGiven
		n.finalCost = newGiven + n.heuristic
		n.parent = int32(parentIdx)
		n.incoming = incoming

		return nil
	default:
		return nil
	}
}

// reconstructPath walks the parent chain from goalIdx back to the search's
// start, expanding each jump segment into individual unit steps so the
// returned path satisfies the validity invariant that consecutive cells
// differ by at most one row and one column.
func (e *Engine) reconstructPath(goalIdx int) []grid.Coord {
	var rev []grid.Coord
	idx := goalIdx

	for {
		coord := e.g.Coordinate(idx)
		n := &e.nodes[idx]
		if !n.hasIncoming {
			rev = append(rev, coord)

			break
		}

		parentIdx := int(n.parent)
		parentCoord := e.g.Coordinate(parentIdx)
		dr, dc := n.incoming.Delta()
		steps := abs(coord.Row - parentCoord.Row)
		if cs := abs(coord.Col - parentCoord.Col); cs > steps {
			steps = cs
		}

		for s := steps; s >= 1; s-- {
			rev = append(rev, grid.Coord{Row: parentCoord.Row + s*dr, Col: parentCoord.Col + s*dc})
		}

		idx = parentIdx
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
