// Package jpsplus is a Jump-Point-Search-Plus and Goal-Bounding pathfinding
// module for uniform-cost, eight-connected (octile) grid maps whose
// passability is fixed at load time.
//
// Overview:
//
//   - An offline phase ingests a passability bitmap (grid.Grid) and produces
//     two precomputed tables: jumppoint.Table (distant jump distances per
//     cell and direction) and goalbound.Table (per-cell, per-direction
//     axis-aligned boxes bounding every goal reachable by an optimal first
//     step in that direction). preprocess.Build binds the two into one
//     preprocess.PreprocessedMap and preprocess.Save/Load (de)serializes it.
//   - An online phase (query.Engine) answers point-to-point queries by
//     expanding only jump points, using dispatch.ProbeMask to select which
//     of the eight directions are worth probing from a node's blocked
//     bitfield and incoming direction, and openlist.List as a two-tier open
//     list tuned for the non-increasing f-cost of octile JPS+ expansions.
//
// When to use:
//
//   - Any static octile grid — game maps, warehouse floor plans, tile-based
//     simulation worlds — where many point-to-point queries are issued
//     against a map that does not change between them.
//   - As a drop-in accelerant in front of plain A*: identical optimal paths,
//     orders of magnitude fewer node expansions.
//
// Key features:
//
//   - grid.Grid: an immutable row-major passability bitmap with
//     out-of-bounds-is-wall semantics.
//   - jumppoint.Compute: cardinal and diagonal sweeps producing signed
//     jump-distance tables.
//   - goalbound.Compute: one octile Dijkstra flood (Flooder.Flood) per
//     start cell, sharing
//     dispatch.ProbeMask with the query engine so the flood's successor set
//     exactly matches what the online search would later choose — the
//     precondition for goal-bounding soundness.
//   - query.Engine.GetPath: the JPS+ search loop itself, with collinear
//     waypoint insertion on path reconstruction.
//   - preprocess.Save/Load: a compact binary layout for the combined
//     tables, with an optional transparent flate-compressed variant.
//
// Performance and complexity:
//
//   - Preprocessing: O(W·H) for jumppoint.Compute; O(W·H) independent
//     Dijkstra floods for goalbound.Compute, each O(W·H·log(W·H)) worst case
//     via the bucket priority queue, dominating total preprocessing cost.
//   - Query: sublinear in grid size in practice — only jump points and
//     forced neighbors are expanded, not every cell on the path.
//   - Space: O(W·H) for the grid plus O(W·H) jump-distance shorts and
//     O(W·H) goal-bound boxes (8 directions × 4 int16 each, or the 1-short
//     empty marker).
//
// Error handling (sentinel errors):
//
//   - Each package defines its own sentinel errors for its construction-time
//     failures (grid.ErrEmptyGrid, grid.ErrTooLarge, preprocess.ErrCorruptFile,
//     openlist.ErrOutOfCapacity, and so on); see each package's doc.go.
//     Query-time there are no recoverable errors: a query either returns a
//     path or an empty path (no path exists). The only errors GetPath
//     returns are query.ErrNilOutPath for a nil outPath and the fatal
//     openlist.ErrOutOfCapacity.
//
// Non-goals:
//
//   - Dynamic maps, non-uniform terrain costs, hierarchical/abstract
//     pathfinding, multi-agent coordination, and any-angle paths are out of
//     scope; see SPEC_FULL.md for the full list.
//
//	go get github.com/katalvlaran/jpsplus
package jpsplus
