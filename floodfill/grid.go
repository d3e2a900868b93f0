package floodfill

// Grid is a rectangular matrix of integer cell states. The rectangular
// invariant (all rows equal length) holds from construction onward.
// A Grid with zero rows is a valid value meaning "nothing to process".
//
// Grids are mutated in place by Fill and ColorAll; callers wishing to
// preserve the original must Clone() first.
type Grid struct {
	rows, cols int
	cells      [][]int
}

// New constructs a rows×cols grid with every cell Navigable.
// Returns ErrNegativeDimension if rows or cols is negative.
// A zero in either dimension yields an empty grid.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeDimension
	}
	if rows == 0 || cols == 0 {
		return &Grid{}, nil
	}
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// From2D constructs a Grid from a 2D slice, deep-copying the input so the
// caller's slice is never aliased. Returns ErrRaggedGrid if any row length
// differs from the first. Empty input (no rows, or rows of zero length)
// yields a valid empty grid.
// Complexity: O(rows×cols).
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		for _, row := range values {
			if len(row) != 0 {
				return nil, ErrRaggedGrid
			}
		}
		return &Grid{}, nil
	}
	rows, cols := len(values), len(values[0])
	cells := make([][]int, rows)
	for r, row := range values {
		if len(row) != cols {
			return nil, ErrRaggedGrid
		}
		cells[r] = make([]int, cols)
		copy(cells[r], row)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows reports the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// It is pure and total: any Position is a valid argument.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell value at p. Defined only when InBounds(p) holds;
// callers in this package always check first.
// Complexity: O(1).
func (g *Grid) At(p Position) int {
	return g.cells[p.Row][p.Col]
}

// Set stores v at p. Defined only when InBounds(p) holds.
// Complexity: O(1).
func (g *Grid) Set(p Position, v int) {
	g.cells[p.Row][p.Col] = v
}

// Clone returns a deep copy sharing no memory with the receiver.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	if g.rows == 0 {
		return &Grid{}
	}
	cells := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]int, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether two grids have identical dimensions and cell
// values. Complexity: O(rows×cols).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}

	return true
}

// Cells returns a deep copy of the cell matrix, for consumers (printers,
// renderers) that want bulk read access without aliasing the grid.
// Complexity: O(rows×cols).
func (g *Grid) Cells() [][]int {
	return g.Clone().cells
}
