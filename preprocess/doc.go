// Package preprocess assembles the jump-distance table (package jumppoint)
// and the goal-bounding table (package goalbound) into the single flat
// PreprocessedMap the query engine consumes, and serializes that map to
// and from a compact binary form.
//
// What:
//
//   - Build runs the full offline pipeline (jump points, distant jumps,
//     goal bounding) and folds the results into one PreprocessedMap.
//   - Save/Load read and write the on-disk layout: row-major over cells,
//     walls skipped entirely, eight int16 jump distances per cell followed
//     by eight GoalBounds records (each either a single int16 −1 marker
//     for "no goal reachable via this direction" or four int16 fields).
//     The caller supplies the originating *grid.Grid to both Save and
//     Load, since the file itself carries no wall bitmap.
//   - SaveCompressed/LoadCompressed wrap the same layout in DEFLATE via
//     github.com/klauspost/compress/flate: the layout is a long, highly
//     repetitive run of small integers over open terrain, and compresses
//     well without changing a single byte of the logical format.
//
// Why:
//
//   - Splitting serialization from computation lets a build pipeline run
//     Build once per map and ship only the compact file; the query engine
//     never needs jumppoint or goalbound at runtime, only PreprocessedMap.
//
// Complexity:
//
//   - Build: see jumppoint.Compute and goalbound.Compute.
//   - Save/Load: O(W×H) time and I/O.
//
// Errors:
//
//   - ErrNilGrid: Build, Save, or Load was given a nil grid.
//   - ErrNilMap: Save was given a nil PreprocessedMap.
//   - ErrDimensionMismatch: Save's grid and map disagree on width/height.
//   - ErrCorruptFile: Load hit a truncated record or a jump distance whose
//     magnitude exceeds the grid's own dimensions.
//
// Thread safety: a PreprocessedMap is immutable after Build or Load
// returns and is safe for concurrent reads.
package preprocess
