package dispatch

import "github.com/katalvlaran/jpsplus/grid"

// fullMask probes every direction; used for the start node of a search,
// where there is no incoming direction to prune against.
const fullMask uint16 = (1 << grid.NumDirections) - 1

// ProbeMask returns the bitmask of directions to probe when expanding a
// node whose cell has the given blockedBitfield (bit d set means direction
// d is immediately blocked from this cell). hasIncoming distinguishes an
// ordinary expansion (prune against from) from a search's start node
// (always probe everything).
func ProbeMask(blockedBitfield uint16, from grid.Direction, hasIncoming bool) uint16 {
	if !hasIncoming {
		return fullMask
	}
	if from.IsDiagonal() {
		return diagonalProbeMask(blockedBitfield, from)
	}

	return cardinalProbeMask(blockedBitfield, from)
}

func isBlocked(bitfield uint16, d grid.Direction) bool {
	return bitfield&(1<<uint(d)) != 0
}

// cardinalProbeMask implements standard JPS neighbor pruning for a
// cardinal incoming direction: always continue straight, and additionally
// probe the diagonal on either side whose perpendicular cardinal is
// blocked (a forced neighbor).
func cardinalProbeMask(bitfield uint16, from grid.Direction) uint16 {
	mask := uint16(1) << uint(from)

	p1 := (from + 2) % grid.NumDirections
	p2 := (from + 6) % grid.NumDirections
	diag1 := (from + 1) % grid.NumDirections
	diag2 := (from + 7) % grid.NumDirections

	if isBlocked(bitfield, p1) {
		mask |= 1 << uint(diag1)
	}
	if isBlocked(bitfield, p2) {
		mask |= 1 << uint(diag2)
	}

	return mask
}

// diagonalProbeMask implements standard JPS neighbor pruning for a
// diagonal incoming direction: always continue diagonally and probe both
// cardinal components, plus whichever of the two "behind" forced diagonals
// the blocked mask opens up.
func diagonalProbeMask(bitfield uint16, from grid.Direction) uint16 {
	c1, c2 := cardinalComponents(from)
	mask := uint16(1)<<uint(from) | 1<<uint(c1) | 1<<uint(c2)

	opp1 := c1.Opposite()
	opp2 := c2.Opposite()

	if isBlocked(bitfield, opp1) {
		mask |= 1 << uint(combineCardinals(opp1, c2))
	}
	if isBlocked(bitfield, opp2) {
		mask |= 1 << uint(combineCardinals(c1, opp2))
	}

	return mask
}

// cardinalComponents returns the two cardinal directions that compose a
// diagonal direction, e.g. DownRight -> (Down, Right).
func cardinalComponents(d grid.Direction) (grid.Direction, grid.Direction) {
	switch d {
	case grid.DownRight:
		return grid.Down, grid.Right
	case grid.UpRight:
		return grid.Up, grid.Right
	case grid.UpLeft:
		return grid.Up, grid.Left
	default: // DownLeft
		return grid.Down, grid.Left
	}
}

// combineCardinals returns the diagonal direction formed by two
// perpendicular cardinal directions, e.g. (Down, Right) -> DownRight.
func combineCardinals(a, b grid.Direction) grid.Direction {
	switch {
	case (a == grid.Down && b == grid.Right) || (a == grid.Right && b == grid.Down):
		return grid.DownRight
	case (a == grid.Up && b == grid.Right) || (a == grid.Right && b == grid.Up):
		return grid.UpRight
	case (a == grid.Up && b == grid.Left) || (a == grid.Left && b == grid.Up):
		return grid.UpLeft
	default:
		return grid.DownLeft
	}
}
