package gridio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/gridio"
)

const sampleInput = `4 5
0 0 1 0 0
0 1 1 0 0
0 0 1 1 1
1 1 0 0 0
0 0
`

func TestRead_Valid(t *testing.T) {
	g, start, err := gridio.Read(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, floodfill.Position{Row: 0, Col: 0}, start)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, floodfill.Obstacle, g.At(floodfill.Position{Row: 0, Col: 2}))
	assert.Equal(t, floodfill.Navigable, g.At(floodfill.Position{Row: 3, Col: 2}))
}

func TestRead_SkipsBlankLines(t *testing.T) {
	in := "2 2\n\n0 1\n1 0\n\n1 1\n"
	g, start, err := gridio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, floodfill.Position{Row: 1, Col: 1}, start)
	assert.Equal(t, 2, g.Rows())
}

// TestRead_Errors covers every rejection class: bad header, short rows,
// bad cell tokens, bad start line, truncated input.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"HeaderTokens", "4\n", gridio.ErrDimensionLine},
		{"HeaderNotInt", "a 5\n", gridio.ErrDimensionLine},
		{"HeaderNegative", "-1 5\n", gridio.ErrDimensionLine},
		{"RowTooShort", "1 3\n0 1\n0 0\n", gridio.ErrRowLength},
		{"RowTooLong", "1 2\n0 1 0\n0 0\n", gridio.ErrRowLength},
		{"CellNotInt", "1 2\n0 x\n0 0\n", gridio.ErrCellValue},
		{"CellOutOfRange", "1 2\n0 2\n0 0\n", gridio.ErrCellValue},
		{"StartTokens", "1 1\n0\n3\n", gridio.ErrStartLine},
		{"StartNotInt", "1 1\n0\na b\n", gridio.ErrStartLine},
		{"MissingRows", "2 2\n0 0\n", gridio.ErrTruncated},
		{"MissingStart", "1 1\n0\n", gridio.ErrTruncated},
		{"Empty", "", gridio.ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := gridio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRead_StartOutsideGrid verifies the parser hands a bad seed through
// untouched; tolerating it is the core's documented behavior.
func TestRead_StartOutsideGrid(t *testing.T) {
	_, start, err := gridio.Read(strings.NewReader("1 1\n0\n7 9\n"))
	require.NoError(t, err)
	assert.Equal(t, floodfill.Position{Row: 7, Col: 9}, start)
}

func TestRead_ZeroRows(t *testing.T) {
	g, _, err := gridio.Read(strings.NewReader("0 0\n0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Rows())
}

func TestWrite_RoundTrip(t *testing.T) {
	g, start, err := gridio.Read(strings.NewReader(sampleInput))
	require.NoError(t, err)
	floodfill.ColorAll(g, start)

	var sb strings.Builder
	require.NoError(t, gridio.Write(&sb, g))

	want := "2 2 1 3 3\n2 1 1 3 3\n2 2 1 1 1\n1 1 4 4 4\n"
	assert.Equal(t, want, sb.String())
}

func TestWrite_EmptyAndNil(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, gridio.Write(&sb, nil))
	g, _ := floodfill.From2D(nil)
	require.NoError(t, gridio.Write(&sb, g))
	assert.Empty(t, sb.String())
}
