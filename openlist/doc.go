// Package openlist implements the two-tier open list used by the JPS+
// query engine (package query). The offline Dijkstra flood (package
// goalbound) does not use it; it has its own bucket queue.
//
// What:
//
//   - Tier A, FastStack, is a LIFO array: O(1) push and pop, no ordering.
//     A successor is only ever pushed here when its cost is already known
//     not to exceed the cost of the node currently being expanded, so popping
//     it next cannot violate best-first order.
//   - Tier B, Bucket, is a flat unsorted array popped by linear scan for
//     the minimum cost, with swap-and-pop removal. Everything that might
//     still improve on the current frontier lands here.
//   - List.Pop always drains Tier A completely before touching Tier B,
//     which is what keeps the fast path fast: most expansions in an
//     open octile grid push only same-or-cheaper successors.
//
// Why:
//
//   - A conventional binary heap spends O(log N) per operation sorting
//     entries that, in practice, are almost always popped in the order
//     they were pushed. JPS+ exploits that by skipping the sort entirely
//     for the common case and falling back to a linear scan — cheap
//     because N stays small — only when order must be respected.
//
// Complexity:
//
//   - Push/Pop on Tier A: O(1).
//   - Push on Tier B: O(1). Pop on Tier B: O(N) in the bucket's size.
//
// Errors:
//
//   - ErrOutOfCapacity: a tier's preallocated array is full. Capacities are
//     fixed at construction and never grow; callers size them generously
//     and treat exhaustion as a fatal configuration error, not a
//     recoverable one.
//
// Thread safety: a List is single-owner, single-goroutine state reused
// across searches via Reset; it is not safe for concurrent use.
package openlist
