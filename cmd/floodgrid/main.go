// Command floodgrid labels the navigable regions of a 2D grid and prints
// (and optionally visualizes) the result.
//
// Grid sources (-mode):
//
//	example  — a built-in 4×5 demo grid with three regions (default)
//	random   — a generated grid (-rows, -cols, -p, -seed)
//	stdin    — the text format: "n m", n rows of m 0/1 values, "x y"
//
// Renderers (-viz):
//
//	none     — text output only (default)
//	term     — colored panels in the terminal with animated replay
//	window   — a desktop window with animated replay
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/gridgen"
	"github.com/katalvlaran/floodgrid/gridio"
	"github.com/katalvlaran/floodgrid/viz"
	"github.com/katalvlaran/floodgrid/viz/term"
	"github.com/katalvlaran/floodgrid/viz/window"
)

func main() {
	var (
		mode    = flag.String("mode", "example", "grid source: example, random, or stdin")
		rows    = flag.Int("rows", 12, "row count for -mode random")
		cols    = flag.Int("cols", 16, "column count for -mode random")
		prob    = flag.Float64("p", 0.3, "obstacle probability for -mode random")
		seed    = flag.Int64("seed", 0, "random seed for -mode random (0 = fixed default)")
		vizName = flag.String("viz", "none", "renderer: none, term, or window")
	)
	flag.Parse()

	if err := run(*mode, *rows, *cols, *prob, *seed, *vizName); err != nil {
		fmt.Fprintln(os.Stderr, "floodgrid:", err)
		os.Exit(1)
	}
}

func run(mode string, rows, cols int, prob float64, seed int64, vizName string) error {
	renderer, err := pickRenderer(vizName)
	if err != nil {
		return err
	}
	grid, start, err := loadGrid(mode, rows, cols, prob, seed)
	if err != nil {
		return err
	}

	before := grid.Clone()
	var rec viz.Recorder
	floodfill.ColorAll(grid, start, floodfill.WithOnColor(rec.OnColor))

	fmt.Println("labeled grid:")
	if err := gridio.Write(os.Stdout, grid); err != nil {
		return err
	}
	printLegend(grid)

	return renderer.Show(before, grid, rec.Steps())
}

// loadGrid resolves the -mode flag into a grid and a start position.
func loadGrid(mode string, rows, cols int, prob float64, seed int64) (*floodfill.Grid, floodfill.Position, error) {
	switch mode {
	case "example":
		g, err := floodfill.From2D([][]int{
			{0, 0, 1, 0, 0},
			{0, 1, 1, 0, 0},
			{0, 0, 1, 1, 1},
			{1, 1, 0, 0, 0},
		})

		return g, floodfill.Position{}, err
	case "random":
		g, err := gridgen.Random(rows, cols, prob, seed)
		if err != nil {
			return nil, floodfill.Position{}, err
		}
		start, err := gridgen.RandomStart(g, seed)
		if err != nil {
			return nil, floodfill.Position{}, err
		}

		return g, start, nil
	case "stdin":
		return gridio.Read(os.Stdin)
	default:
		return nil, floodfill.Position{}, fmt.Errorf("unknown -mode %q (want example, random, or stdin)", mode)
	}
}

// pickRenderer resolves the -viz flag into a viz.Renderer.
func pickRenderer(name string) (viz.Renderer, error) {
	switch name {
	case "none", "":
		return viz.Noop{}, nil
	case "term":
		return term.New(), nil
	case "window":
		return window.New(), nil
	default:
		return nil, fmt.Errorf("unknown -viz %q (want none, term, or window)", name)
	}
}

// printLegend lists the meaning and display color of every value present.
func printLegend(g *floodfill.Grid) {
	maxV := viz.MaxValue(g)
	palette := viz.NewPalette(maxV)

	fmt.Println()
	fmt.Println("legend:")
	fmt.Printf("  %d  %s  navigable (unvisited)\n", floodfill.Navigable, palette.Hex(floodfill.Navigable))
	fmt.Printf("  %d  %s  obstacle\n", floodfill.Obstacle, palette.Hex(floodfill.Obstacle))
	for v := floodfill.FirstLabel; v <= maxV; v++ {
		fmt.Printf("  %d  %s  region %d\n", v, palette.Hex(v), v-floodfill.FirstLabel+1)
	}
}
