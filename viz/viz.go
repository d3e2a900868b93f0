// Package viz turns labeled grids into something a human can look at:
// a value→color palette, a traversal recorder for animated replay, and a
// pluggable Renderer capability.
//
// What:
//
//   - Palette maps cell values to display colors: 0 = white (navigable),
//     1 = black (obstacle), then red, orange, yellow for the first labels,
//     with a fixed extra palette cycling for any label beyond those.
//   - Recorder captures fill steps through floodfill.WithOnColor, in
//     traversal order, for step-by-step replay.
//   - Renderer is the optional, constructor-injected rendering capability;
//     Noop is the default. Concrete backends live in viz/term (tcell) and
//     viz/window (ebiten).
//
// Renderers are pure consumers: they never mutate a grid's cell values.
package viz

import (
	"github.com/katalvlaran/floodgrid/floodfill"
)

// Step records one cell coloring during a fill, in traversal order.
type Step struct {
	Pos   floodfill.Position
	Label int
}

// Renderer displays the outcome of a labeling run: the grid before the
// fill, the grid after, and the recorded steps for optional animation.
// Implementations must not mutate either grid.
type Renderer interface {
	Show(before, after *floodfill.Grid, steps []Step) error
}

// Noop is the default Renderer: it displays nothing and always succeeds.
type Noop struct{}

// Show implements Renderer.
func (Noop) Show(_, _ *floodfill.Grid, _ []Step) error { return nil }

// Recorder accumulates Steps via the floodfill OnColor hook.
// The zero value is ready to use. Not safe for concurrent use, matching
// the single-threaded contract of the core.
type Recorder struct {
	steps []Step
}

// OnColor appends one step; pass it to floodfill.WithOnColor.
func (rec *Recorder) OnColor(p floodfill.Position, label int) {
	rec.steps = append(rec.steps, Step{Pos: p, Label: label})
}

// Steps returns the recorded steps in traversal order.
// The returned slice is the recorder's backing storage; callers must not
// keep appending to the recorder while reading it.
func (rec *Recorder) Steps() []Step { return rec.steps }

// MaxValue reports the largest cell value across the given grids, for
// sizing a Palette. Nil and empty grids contribute nothing; with no cells
// at all the result is 0.
func MaxValue(grids ...*floodfill.Grid) int {
	maxV := 0
	for _, g := range grids {
		if g == nil {
			continue
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if v := g.At(floodfill.Position{Row: r, Col: c}); v > maxV {
					maxV = v
				}
			}
		}
	}

	return maxV
}
