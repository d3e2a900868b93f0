package floodfill

// ColorAll labels every navigable region of g. The region containing
// start receives FirstLabel; every other region receives the next label
// in the order regions are first encountered by a row-major scan (rows
// top to bottom, columns left to right). The label counter advances only
// on a successful fill, so the labels present in the result are exactly
// FirstLabel..FirstLabel+regions-1 with no gaps.
//
// A start that is out of bounds or not navigable silently skips the
// seed-priming step: the scan still labels every region, including the
// one containing the intended start, and the only observable difference
// is label ordering. An empty grid or an all-obstacle grid is returned
// unchanged.
//
// ColorAll mutates g in place and returns the same instance.
// Complexity: O(R×C) time overall.
func ColorAll(g *Grid, start Position, opts ...Option) *Grid {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil
	}

	label := FirstLabel
	if fill(g, start, label, &o) {
		label++
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			if g.cells[r][c] != Navigable {
				continue
			}
			if fill(g, p, label, &o) {
				label++
			}
		}
	}

	return g
}
