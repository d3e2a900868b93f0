// Package floodgrid labels connected regions of navigable cells on 2D
// grids using breadth-first flood fill.
//
// 🚀 What is floodgrid?
//
//	A small, deterministic region-labeling toolkit:
//		• floodfill — the core: Grid, single-region Fill, full-grid ColorAll
//		• gridio    — the line-oriented text format for grids and seeds
//		• gridgen   — seeded random grids and random navigable starts
//		• viz       — palettes, traversal recording, pluggable renderers
//		  (viz/term for the terminal, viz/window for a desktop window)
//		• cmd/floodgrid — the demo CLI tying it all together
//
// ✨ Why floodgrid?
//
//   - Deterministic by contract – fixed neighbor order, row-major scans,
//     seeded generation: same inputs, same labels, every run
//   - No surprises – preconditions degrade to no-ops, never panics
//   - Observable – OnColor/OnRegion hooks for recording and animation
//
// Quick ASCII example (0 = navigable, 1 = obstacle, seed at top-left):
//
//	0 0 1 0 0        2 2 1 3 3
//	0 1 1 0 0   →    2 1 1 3 3
//	0 0 1 1 1        2 2 1 1 1
//	1 1 0 0 0        1 1 4 4 4
//
// Start with package floodfill; everything else consumes or produces its
// Grid.
package floodgrid
