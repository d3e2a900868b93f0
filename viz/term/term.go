// Package term renders labeled grids in the terminal using tcell.
//
// The renderer shows the pre-fill grid on the left and the labeled grid
// on the right as colored blocks. When fill steps are supplied it first
// replays them on the left panel, one cell at a time, then waits for any
// key before returning. It never mutates the grids it is given.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/viz"
)

// cellWidth is how many terminal columns one grid cell occupies; two
// columns roughly square a character cell.
const cellWidth = 2

// panelGap separates the before/after panels, in terminal columns.
const panelGap = 3

// headerRows reserves space above the grids for the panel titles.
const headerRows = 2

// defaultStepDelay paces the animated replay.
const defaultStepDelay = 25 * time.Millisecond

// Option configures the Renderer.
type Option func(*Renderer)

// WithStepDelay sets the pause between replayed fill steps.
// Non-positive delays disable the pause (instant replay).
func WithStepDelay(d time.Duration) Option {
	return func(r *Renderer) { r.stepDelay = d }
}

// WithScreen injects a pre-initialized tcell screen. The caller keeps
// ownership: the renderer will not Init or Fini it. Intended for tests
// with tcell's simulation screen.
func WithScreen(s tcell.Screen) Option {
	return func(r *Renderer) {
		r.screen = s
		r.ownsScreen = false
	}
}

// Renderer displays grids on a tcell screen. It implements viz.Renderer.
type Renderer struct {
	stepDelay  time.Duration
	screen     tcell.Screen
	ownsScreen bool
}

// New constructs a terminal renderer with the default step delay.
func New(opts ...Option) *Renderer {
	r := &Renderer{stepDelay: defaultStepDelay, ownsScreen: true}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Show implements viz.Renderer: draw both panels, replay steps on the
// left, then block until a key press. Returns any screen setup error.
func (r *Renderer) Show(before, after *floodfill.Grid, steps []viz.Step) error {
	if before == nil || after == nil {
		return fmt.Errorf("term: both grids are required")
	}

	screen := r.screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("term: create screen: %w", err)
		}
		if err = screen.Init(); err != nil {
			return fmt.Errorf("term: init screen: %w", err)
		}
	}
	if r.ownsScreen {
		defer screen.Fini()
	}

	palette := viz.NewPalette(viz.MaxValue(before, after))
	replay := before.Clone()

	r.drawFrame(screen, replay, after, palette)
	for _, step := range steps {
		replay.Set(step.Pos, step.Label)
		r.drawFrame(screen, replay, after, palette)
		if r.stepDelay > 0 {
			time.Sleep(r.stepDelay)
		}
	}

	// Block until any key (resize just redraws).
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			r.drawFrame(screen, replay, after, palette)
		case *tcell.EventError:
			return fmt.Errorf("term: screen event: %w", ev)
		case nil:
			// Screen was finalized underneath us (simulation teardown).
			return nil
		}
	}
}

// drawFrame paints both panels and flushes the screen.
func (r *Renderer) drawFrame(screen tcell.Screen, left, right *floodfill.Grid, palette *viz.Palette) {
	screen.Clear()
	r.drawTitle(screen, 0, "input")
	r.drawGrid(screen, 0, left, palette)
	offset := left.Cols()*cellWidth + panelGap
	r.drawTitle(screen, offset, "regions")
	r.drawGrid(screen, offset, right, palette)
	screen.Show()
}

func (r *Renderer) drawTitle(screen tcell.Screen, offset int, title string) {
	style := tcell.StyleDefault
	for i, ch := range title {
		screen.SetContent(offset+i, 0, ch, nil, style)
	}
}

func (r *Renderer) drawGrid(screen tcell.Screen, offset int, g *floodfill.Grid, palette *viz.Palette) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := palette.Color(g.At(floodfill.Position{Row: row, Col: col}))
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(offset+col*cellWidth+i, headerRows+row, ' ', nil, style)
			}
		}
	}
}
