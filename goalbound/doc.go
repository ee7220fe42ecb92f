// Package goalbound computes, for every passable cell and every outgoing
// octile direction, the axis-aligned bounding box of every goal whose
// optimal first step away from that cell leaves via that direction.
//
// What:
//
//   - Compute runs a single-source Dijkstra flood from every passable cell
//     of the grid (via Flood), and for every other cell it reaches, reads
//     back which of the start's eight outgoing directions the optimal path
//     used first. It folds each reached cell's (row, col) into the running
//     min/max bounds for that (start, direction) pair.
//   - Flood shares its direction-pruning logic with the query engine
//     (package query) through package dispatch: both select successor
//     directions from the same (blockedBitfield, incomingDirection) pair,
//     which is what makes the resulting bounds valid pruning data for the
//     query engine's own successor set.
//   - The flood is a plain single-step Dijkstra, not a jump search: it
//     must visit every cell on an optimal path, not just jump points, to
//     recover the true first-step direction for each of them.
//
// Why:
//
//   - Goal bounding is a query-time pruning structure: if a query's goal
//     does not lie inside GoalBounds[cell][dir], no optimal path from cell
//     can start by moving in dir, so the query engine skips that probe
//     entirely. The bounds are only sound if they were built by exploring
//     exactly the successor set the query engine itself would explore.
//
// Complexity:
//
//   - Compute: O(N) floods, each O(N log N) in the number of passable
//     cells N (bucket-queue pop is amortized near O(1) per operation but
//     DecreaseKey rescans a bucket) — O(N^2) overall. This is strictly an
//     offline preprocessing cost, paid once per map.
//
// Errors:
//
//   - ErrNilGrid, ErrNilJumpTable: Compute was called with a nil grid or
//     jump table.
//
// Thread safety: a Table is immutable after Compute returns. Flooder is
// single-owner, reused across floods via its internal iteration counter;
// it is not safe for concurrent use.
package goalbound
