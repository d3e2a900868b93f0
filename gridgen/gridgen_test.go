package gridgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/gridgen"
)

func TestRandom_ParamErrors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		p          float64
		err        error
	}{
		{"ZeroRows", 0, 3, 0.5, gridgen.ErrDimension},
		{"NegativeCols", 3, -1, 0.5, gridgen.ErrDimension},
		{"ProbTooLow", 3, 3, -0.1, gridgen.ErrProbability},
		{"ProbTooHigh", 3, 3, 1.1, gridgen.ErrProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgen.Random(tc.rows, tc.cols, tc.p, 1)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := gridgen.Random(20, 15, 0.3, 42)
	require.NoError(t, err)
	b, err := gridgen.Random(20, 15, 0.3, 42)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must yield identical grids")

	c, err := gridgen.Random(20, 15, 0.3, 43)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should diverge on a 300-cell grid")
}

func TestRandom_ZeroSeedIsStable(t *testing.T) {
	a, err := gridgen.Random(8, 8, 0.5, 0)
	require.NoError(t, err)
	b, err := gridgen.Random(8, 8, 0.5, 0)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestRandom_ProbabilityBoundsDegenerate(t *testing.T) {
	open, err := gridgen.Random(4, 4, 0.0, 7)
	require.NoError(t, err)
	walls, err := gridgen.Random(4, 4, 1.0, 7)
	require.NoError(t, err)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p := floodfill.Position{Row: r, Col: c}
			assert.Equal(t, floodfill.Navigable, open.At(p))
			assert.Equal(t, floodfill.Obstacle, walls.At(p))
		}
	}
}

func TestRandomStart_PicksNavigable(t *testing.T) {
	g, err := gridgen.Random(10, 10, 0.4, 3)
	require.NoError(t, err)

	start, err := gridgen.RandomStart(g, 3)
	require.NoError(t, err)
	assert.True(t, g.InBounds(start))
	assert.Equal(t, floodfill.Navigable, g.At(start))

	again, err := gridgen.RandomStart(g, 3)
	require.NoError(t, err)
	assert.Equal(t, start, again, "same seed must pick the same cell")
}

func TestRandomStart_NoNavigable(t *testing.T) {
	walls, err := gridgen.Random(3, 3, 1.0, 1)
	require.NoError(t, err)
	_, err = gridgen.RandomStart(walls, 1)
	assert.ErrorIs(t, err, gridgen.ErrNoNavigable)

	empty, err := floodfill.From2D(nil)
	require.NoError(t, err)
	_, err = gridgen.RandomStart(empty, 1)
	assert.ErrorIs(t, err, gridgen.ErrNoNavigable)
}
