package query

import "github.com/katalvlaran/jpsplus/grid"

// jumpResult describes a successor found by probing one direction from a
// node: a jump point at the end of a run of DistantJump steps, a diagonal
// turn point where one axis first aligns with the goal, or the goal itself
// when either of those coincides with it.
type jumpResult struct {
	coord       grid.Coord
	steps       int
	reachedGoal bool
}

// jumpSuccessor probes direction d from coord using the precomputed jump
// distance at idx. It returns false if no successor exists in that
// direction (immediate block, or a dead-end run to a wall with the goal
// not reachable along it).
func (e *Engine) jumpSuccessor(idx int, coord grid.Coord, d grid.Direction, goal grid.Coord) (jumpResult, bool) {
	distantJump := e.pm.DistantJump(idx, d)
	if distantJump == 0 {
		return jumpResult{}, false
	}

	maxReach := int(distantJump)
	if maxReach < 0 {
		maxReach = -maxReach
	}

	if d.IsDiagonal() {
		return diagonalJumpSuccessor(coord, d, goal, distantJump, maxReach)
	}

	if aligned, k := alignment(coord, goal, d); aligned && k > 0 && k <= maxReach {
		return jumpResult{coord: goal, steps: k, reachedGoal: true}, true
	}

	if distantJump > 0 {
		dr, dc := d.Delta()
		target := grid.Coord{Row: coord.Row + maxReach*dr, Col: coord.Col + maxReach*dc}

		return jumpResult{coord: target, steps: maxReach}, true
	}

	// Negative DistantJump with the goal not aligned on this ray: the run
	// ends at a wall with no jump point, so there is nothing new to expand.
	return jumpResult{}, false
}

// diagonalJumpSuccessor implements the two-case diagonal probe rule: when
// the goal lies in d's quadrant, a "target jump point" successor that turns
// at the row/column where one axis aligns with the goal takes priority over
// the plain jump-point successor, even when the run to that turn point ends
// at a wall rather than a real jump point — the turn itself is what matters,
// since a cardinal probe from there can finish the approach to the goal.
func diagonalJumpSuccessor(coord grid.Coord, d grid.Direction, goal grid.Coord, distantJump int16, maxReach int) (jumpResult, bool) {
	dr, dc := d.Delta()
	deltaR := goal.Row - coord.Row
	deltaC := goal.Col - coord.Col

	if sign(deltaR) == dr && sign(deltaC) == dc {
		m := abs(deltaR)
		if cs := abs(deltaC); cs < m {
			m = cs
		}
		if m > 0 && m <= maxReach {
			target := grid.Coord{Row: coord.Row + m*dr, Col: coord.Col + m*dc}

			return jumpResult{coord: target, steps: m, reachedGoal: target == goal}, true
		}
	}

	if distantJump > 0 {
		target := grid.Coord{Row: coord.Row + maxReach*dr, Col: coord.Col + maxReach*dc}

		return jumpResult{coord: target, steps: maxReach}, true
	}

	return jumpResult{}, false
}

// alignment reports whether goal lies exactly on the cardinal ray from
// coord in direction d, and if so, the number of unit steps to reach it.
// Only called for cardinal d; the diagonal case is handled by
// diagonalJumpSuccessor, which generalizes this to partial turns.
func alignment(coord, goal grid.Coord, d grid.Direction) (bool, int) {
	dr, dc := d.Delta()
	deltaR := goal.Row - coord.Row
	deltaC := goal.Col - coord.Col

	switch {
	case dr == 0: // horizontal cardinal
		if deltaR != 0 || deltaC == 0 || sign(deltaC) != dc {
			return false, 0
		}

		return true, abs(deltaC)
	default: // vertical cardinal
		if deltaC != 0 || deltaR == 0 || sign(deltaR) != dr {
			return false, 0
		}

		return true, abs(deltaR)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
