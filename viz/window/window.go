// Package window renders labeled grids in a desktop window using ebiten.
//
// The window shows the pre-fill grid on the left and the labeled grid on
// the right, drawn as colored squares. Recorded fill steps are replayed
// on the left panel a few cells per tick. Escape or Q closes the window.
// Like every viz backend, it never mutates the grids it is given.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/viz"
)

const (
	defaultCellSize     = 24
	defaultStepsPerTick = 2
	margin              = 16 // pixels around and between the panels
	minWindowDim        = 64 // floor so a degenerate empty grid still gets a visible window
)

// background fills the window behind both panels.
var background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}

// Option configures the Renderer.
type Option func(*Renderer)

// WithCellSize sets the pixel size of one grid cell (minimum 1).
func WithCellSize(px int) Option {
	return func(r *Renderer) {
		if px >= 1 {
			r.cellSize = px
		}
	}
}

// WithStepsPerTick sets how many fill steps are replayed per update tick
// (minimum 1). Higher values speed up the animation.
func WithStepsPerTick(n int) Option {
	return func(r *Renderer) {
		if n >= 1 {
			r.stepsPerTick = n
		}
	}
}

// Renderer displays grids in an ebiten window. It implements viz.Renderer.
type Renderer struct {
	cellSize     int
	stepsPerTick int
}

// New constructs a windowed renderer with default sizing and speed.
func New(opts ...Option) *Renderer {
	r := &Renderer{cellSize: defaultCellSize, stepsPerTick: defaultStepsPerTick}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Show implements viz.Renderer. It blocks running the window's event
// loop until the user closes it.
func (r *Renderer) Show(before, after *floodfill.Grid, steps []viz.Step) error {
	if before == nil || after == nil {
		return fmt.Errorf("window: both grids are required")
	}

	g := r.newGame(before, after, steps)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("floodgrid — region labeling")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: run: %w", err)
	}

	return nil
}

// newGame assembles the replay state behind Show. The before grid is
// cloned so replaying never touches the caller's grids.
func (r *Renderer) newGame(before, after *floodfill.Grid, steps []viz.Step) *game {
	return &game{
		replay:       before.Clone(),
		after:        after,
		steps:        steps,
		palette:      viz.NewPalette(viz.MaxValue(before, after)),
		cellSize:     r.cellSize,
		stepsPerTick: r.stepsPerTick,
	}
}

// game adapts the replay state to the ebiten.Game interface.
type game struct {
	replay       *floodfill.Grid
	after        *floodfill.Grid
	steps        []viz.Step
	next         int
	palette      *viz.Palette
	cellSize     int
	stepsPerTick int
}

// Update advances the replay and handles the close keys.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for i := 0; i < g.stepsPerTick && g.next < len(g.steps); i++ {
		step := g.steps[g.next]
		g.replay.Set(step.Pos, step.Label)
		g.next++
	}

	return nil
}

// Draw paints both panels.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawGrid(screen, margin, g.replay)
	g.drawGrid(screen, 2*margin+g.replay.Cols()*g.cellSize, g.after)
}

// Layout reports the fixed logical window size for the two panels,
// floored at minWindowDim so an empty grid still opens a visible window.
func (g *game) Layout(_, _ int) (int, int) {
	w := 3*margin + 2*g.replay.Cols()*g.cellSize
	h := 2*margin + g.replay.Rows()*g.cellSize
	if w < minWindowDim {
		w = minWindowDim
	}
	if h < minWindowDim {
		h = minWindowDim
	}

	return w, h
}

func (g *game) drawGrid(screen *ebiten.Image, offsetX int, grid *floodfill.Grid) {
	size := float32(g.cellSize)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := g.palette.Color(grid.At(floodfill.Position{Row: row, Col: col}))
			x := float32(offsetX + col*g.cellSize)
			y := float32(margin + row*g.cellSize)
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}
}
