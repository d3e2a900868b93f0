// Package gridio reads and writes the line-oriented text format for grids
// and start positions consumed by the floodfill core.
//
// Input format:
//
//	n m            ← row count, column count
//	<n lines of m whitespace-separated 0/1 values>
//	x y            ← start position (row, column)
//
// Output format: each grid row as space-separated integers, one row per
// line. Malformed input is rejected here, before the core ever runs; the
// core is never handed a ragged or partial grid.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// Sentinel errors for text parsing. All are wrapped with positional
// context; match with errors.Is.
var (
	// ErrDimensionLine indicates the first line does not hold exactly "n m".
	ErrDimensionLine = errors.New("gridio: dimension line must contain exactly two integers")
	// ErrRowLength indicates a grid row with the wrong number of values.
	ErrRowLength = errors.New("gridio: grid row must contain exactly m values")
	// ErrCellValue indicates a grid token that is not 0 or 1.
	ErrCellValue = errors.New("gridio: grid cells must be 0 (navigable) or 1 (obstacle)")
	// ErrStartLine indicates the start line does not hold exactly "x y".
	ErrStartLine = errors.New("gridio: start line must contain exactly two integers")
	// ErrTruncated indicates the input ended before the declared line count.
	ErrTruncated = errors.New("gridio: input ended before all declared lines were read")
)

// Read parses a grid and start position from r.
// The returned grid is freshly allocated; the start position is returned
// verbatim, even when it lies outside the grid — tolerating a bad seed is
// the core's documented behavior, not the parser's concern.
// Complexity: O(n×m).
func Read(r io.Reader) (*floodfill.Grid, floodfill.Position, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readDimensions(sc)
	if err != nil {
		return nil, floodfill.Position{}, err
	}

	values := make([][]int, n)
	for i := 0; i < n; i++ {
		row, err := readRow(sc, i, m)
		if err != nil {
			return nil, floodfill.Position{}, err
		}
		values[i] = row
	}

	start, err := readStart(sc)
	if err != nil {
		return nil, floodfill.Position{}, err
	}

	g, err := floodfill.From2D(values)
	if err != nil {
		// Unreachable for n,m ≥ 0 with per-row length checks above; kept so
		// a grid constructor failure can never pass silently.
		return nil, floodfill.Position{}, err
	}

	return g, start, nil
}

// readDimensions parses the "n m" header line.
func readDimensions(sc *bufio.Scanner) (n, m int, err error) {
	fields, err := nextLine(sc, "dimension line")
	if err != nil {
		return 0, 0, err
	}
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d tokens", ErrDimensionLine, len(fields))
	}
	if n, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not an integer", ErrDimensionLine, fields[0])
	}
	if m, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not an integer", ErrDimensionLine, fields[1])
	}
	if n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: dimensions %d×%d are negative", ErrDimensionLine, n, m)
	}

	return n, m, nil
}

// readRow parses grid row i, expecting exactly m tokens of 0 or 1.
func readRow(sc *bufio.Scanner, i, m int) ([]int, error) {
	fields, err := nextLine(sc, fmt.Sprintf("grid row %d", i))
	if err != nil {
		return nil, err
	}
	if len(fields) != m {
		return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRowLength, i, len(fields), m)
	}
	row := make([]int, m)
	for c, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil || (v != floodfill.Navigable && v != floodfill.Obstacle) {
			return nil, fmt.Errorf("%w: %q at row %d col %d", ErrCellValue, tok, i, c)
		}
		row[c] = v
	}

	return row, nil
}

// readStart parses the trailing "x y" start line.
func readStart(sc *bufio.Scanner) (floodfill.Position, error) {
	fields, err := nextLine(sc, "start line")
	if err != nil {
		return floodfill.Position{}, err
	}
	if len(fields) != 2 {
		return floodfill.Position{}, fmt.Errorf("%w: got %d tokens", ErrStartLine, len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return floodfill.Position{}, fmt.Errorf("%w: %q is not an integer", ErrStartLine, fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return floodfill.Position{}, fmt.Errorf("%w: %q is not an integer", ErrStartLine, fields[1])
	}

	return floodfill.Position{Row: x, Col: y}, nil
}

// nextLine returns the fields of the next non-empty line, or ErrTruncated
// naming what was being read when the input ran out.
func nextLine(sc *bufio.Scanner, what string) ([]string, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: reading %s: %w", what, err)
	}

	return nil, fmt.Errorf("%w: missing %s", ErrTruncated, what)
}

// Write prints g in the text output format: each row as space-separated
// integers, one row per line. An empty grid writes nothing.
// Complexity: O(rows×cols).
func Write(w io.Writer, g *floodfill.Grid) error {
	if g == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("gridio: write: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(g.At(floodfill.Position{Row: r, Col: c}))); err != nil {
				return fmt.Errorf("gridio: write: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("gridio: write: %w", err)
		}
	}

	return bw.Flush()
}
