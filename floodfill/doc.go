// Package floodfill labels connected regions of navigable cells on a 2D
// integer grid using breadth-first flood fill with 4-directional adjacency.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell states: 0 = navigable,
//     1 = obstacle, ≥2 = a region label already assigned.
//   - Fill colors exactly one maximal connected region reachable from a
//     start cell, in place.
//   - ColorAll labels every region in the grid: the seed's region first,
//     then every other region in row-major discovery order, with labels
//     counting up from FirstLabel with no gaps.
//   - Functional hooks (OnColor, OnRegion) observe the traversal without
//     affecting it — the foundation for recording and animated replay.
//
// Why:
//
//   - Map analysis: partition walkable terrain into rooms/zones.
//   - Image-style labeling: count and identify connected components.
//   - Teaching: the canonical BFS flood fill with a reproducible order.
//
// Determinism:
//
//	Neighbors are examined in the fixed order up, down, left, right, and
//	ColorAll scans rows top to bottom, columns left to right. Two runs on
//	structurally identical grids with the same start produce identical
//	labeled grids and identical hook call sequences.
//
// Complexity (R = rows, C = cols):
//
//   - Fill:     O(R×C) time, O(R×C) memory (worklist) — each cell is
//     enqueued at most once because cells are marked on enqueue.
//   - ColorAll: O(R×C) time overall; the scan and all fills together touch
//     each cell a constant number of times.
//
// Options:
//
//   - WithOnColor(fn): hook invoked for every cell at the moment it is
//     colored, in traversal order.
//   - WithOnRegion(fn): hook invoked after each successfully filled region
//     with its seed, label, and size.
//
// Errors:
//
//   - Fill and ColorAll never fail: preconditions that do not hold (start
//     out of bounds, start not navigable) degrade to a false/no-op result.
//   - ErrRaggedGrid: From2D rejects rows of differing lengths.
//   - ErrNegativeDimension: New rejects negative row or column counts.
//
// The package is single-threaded by contract: a Grid is mutated in place
// by whoever calls Fill or ColorAll, and concurrent callers must serialize
// or work on Clone()s.
package floodfill
