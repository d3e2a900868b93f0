package viz

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// baseHex colors the fixed low values: navigable, obstacle, and the first
// three region labels.
var baseHex = []string{
	"#FFFFFF", // 0 — navigable (background)
	"#000000", // 1 — obstacle
	"#FF0000", // 2 — red
	"#FFA500", // 3 — orange
	"#FFFF00", // 4 — yellow
}

// extraHex cycles for labels past the base palette.
var extraHex = []string{
	"#00FF00", // green
	"#0000FF", // blue
	"#800080", // purple
	"#00FFFF", // cyan
	"#FFC0CB", // pink
	"#A52A2A", // brown
	"#FFA500", // orange again
	"#800000", // dark maroon
	"#008000", // dark green
}

// Palette maps integer cell values to display colors. Build one with
// NewPalette sized to the largest value you intend to look up.
type Palette struct {
	colors []colorful.Color
}

// NewPalette builds a palette covering values 0..maxValue inclusive.
// Values beyond the five base colors draw from the extra palette,
// cycling as needed, so any maxValue is representable.
func NewPalette(maxValue int) *Palette {
	n := len(baseHex)
	if maxValue+1 > n {
		n = maxValue + 1
	}
	colors := make([]colorful.Color, 0, n)
	for _, h := range baseHex {
		c, _ := colorful.Hex(h) // static table, cannot fail
		colors = append(colors, c)
	}
	for i := 0; len(colors) < n; i++ {
		c, _ := colorful.Hex(extraHex[i%len(extraHex)])
		colors = append(colors, c)
	}

	return &Palette{colors: colors}
}

// Len reports how many values the palette covers.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the display color for v as 8-bit RGBA (alpha 255).
// Values outside [0, Len()) clamp to the nearest covered value, so a
// renderer can never index out of range.
func (p *Palette) Color(v int) color.RGBA {
	c := p.colors[p.clamp(v)]
	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the display color for v as a "#RRGGBB" string.
func (p *Palette) Hex(v int) string {
	return p.colors[p.clamp(v)].Hex()
}

func (p *Palette) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v >= len(p.colors) {
		return len(p.colors) - 1
	}

	return v
}
