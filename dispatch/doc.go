// Package dispatch decides, for a node reached from a given incoming
// direction with a given set of immediately-blocked directions, which of
// the eight octile directions are worth exploring further.
//
// What:
//
//   - ProbeMask returns an 8-bit mask: bit d set means direction d should
//     be probed. The start node of a search (no incoming direction) always
//     probes all eight. Any other node probes its natural continuation
//     direction(s) plus whichever forced-neighbor diagonals the blocked
//     mask opens up, per standard jump-point-search neighbor pruning.
//
// Why:
//
//   - Both the offline Dijkstra flood (package goalbound) and the online
//     query engine (package query) must select the identical subset of
//     directions from the identical (blockedBitfield, incomingDirection)
//     pair — goal bounding is only sound if the precomputed bounding boxes
//     were built by flooding through exactly the same successor set the
//     online search will later consider. Centralizing the selection here,
//     rather than letting each package re-derive it, is what keeps that
//     guarantee mechanical instead of a matter of keeping two hand-written
//     copies in sync.
//
// Complexity: ProbeMask is O(1); it performs no allocation and is called
// once per node expansion.
//
// Thread safety: stateless; safe for concurrent use.
package dispatch
