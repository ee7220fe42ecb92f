// Package jumppoint computes the JPS+ per-cell jump structure for a static
// grid: which cells are cardinal jump points, and for every passable cell
// and every one of the eight octile directions, the signed distance to the
// next jump point or to a wall.
//
// What:
//
//   - Compute walks the grid once per cardinal direction and once per
//     diagonal corner order to fill a Table of DistantJump records.
//   - A positive DistantJump[dir] means a jump point sits that many steps
//     away with every intervening cell passable; zero means the immediate
//     neighbor in that direction is blocked; negative means that many
//     steps reach a wall with no jump point in between.
//   - Table.BlockedBitfield derives the 8-bit "which directions are
//     immediately blocked" mask from the stored jump distances, rather
//     than storing it redundantly.
//
// Why:
//
//   - The online query engine (package query) never re-derives this
//     structure; it is entirely a function of the static grid and is
//     computed once, offline, exactly as JPS+ requires.
//
// Complexity:
//
//   - Compute: O(W×H) time, O(W×H) memory for the Table (no cardinal
//     jump-point bitmask is stored; each cell's jump-point test is evaluated
//     during the cardinal sweeps).
//
// Errors:
//
//   - ErrNilGrid: Compute was called with a nil *grid.Grid.
//
// Thread safety: Table is immutable after Compute returns and is safe for
// concurrent reads.
package jumppoint
