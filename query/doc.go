// Package query implements the online JPS+ with Goal Bounding search: given
// a PreprocessedMap (package preprocess), it answers single start/goal
// shortest-path queries on the octile grid metric.
//
// What:
//
//   - Engine holds one preallocated SearchNode arena, reused across
//     queries via the iteration-counter technique, and one two-tier open
//     list (package openlist).
//   - GetPath runs a best-first search whose successors are jump points
//     (via DistantJump) rather than unit steps, gated at every expansion
//     by the query's goal bounds (package dispatch selects which
//     directions to probe; preprocess.PreprocessedMap.GoalBounds decides
//     which of those are worth probing for this particular goal).
//   - GetPath follows the reference engine's idempotence contract: it
//     always reports completion (its bool return is true whenever the
//     search ran to a decision, including "no path exists"); the
//     additional Status return distinguishes PathFound from NoPath without
//     overloading the boolean the way the reference C++ API does.
//
// Why:
//
//   - Expanding jump points instead of unit cells is what gives JPS+ its
//     speedup over A*; goal bounds prune entire directions of jump-point
//     expansion before a single successor is computed.
//
// Complexity:
//
//   - GetPath: no general polynomial bound tighter than the underlying
//     A*-style best-first search gives (O(N log N) worst case over N
//     reachable jump points); in practice far fewer nodes are expanded
//     than unit-step A* due to jump-point compression and goal-bounds
//     pruning.
//
// Errors:
//
//   - ErrNilPreprocessedMap, ErrNilGrid: NewEngine was given a nil input.
//   - ErrDimensionMismatch: the grid and preprocessed map disagree on size.
//   - ErrNilOutPath: GetPath was given a nil outPath pointer.
//   - openlist.ErrOutOfCapacity propagates unchanged: the reference design
//     treats tier exhaustion as fatal, not something to grow past silently.
//
// Thread safety: an Engine is single-owner, single-goroutine state; share
// the PreprocessedMap across engines, not the Engine itself, for
// concurrent queries.
package query
