// Package grid defines the immutable passability bitmap that every other
// package in this module builds on: a fixed-size, row-major grid of
// passable/blocked cells with octile (eight-connected) adjacency.
//
// What:
//
//   - Grid wraps a row-major []bool of passability with Width/Height.
//   - Direction enumerates the eight octile directions in the fixed
//     numbering every downstream table depends on (Down=0 .. DownLeft=7).
//   - Passable/Blocked answer in-bounds queries; out-of-bounds coordinates
//     are always treated as blocked.
//
// Why:
//
//   - Every precomputation phase (jump points, distant jump distances,
//     goal bounding) and the online query engine share one notion of
//     "is this cell walkable", and agree on one numbering for the eight
//     directions. Centralizing both here keeps them from drifting apart.
//
// Complexity:
//
//   - New:                O(W×H) time and memory.
//   - Passable / Blocked:  O(1).
//   - Step:                O(1).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not strictly positive.
//   - ErrTooLarge: width or height exceeds MaxDimension.
//   - ErrRowLength: a supplied row does not have Width entries.
//
// Thread safety: Grid is immutable after New returns and is safe for
// concurrent reads from multiple goroutines.
package grid
