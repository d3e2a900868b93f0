// Package gridgen produces synthetic grids for the floodfill core.
//
// What:
//
//   - Random: rows×cols grid where each cell is independently an obstacle
//     with probability p (Bernoulli trials in row-major order).
//   - RandomStart: a uniformly chosen navigable cell, for seeding fills.
//
// Determinism:
//
//	Same seed ⇒ identical grid/start across platforms. A seed of 0 selects
//	a fixed default seed, so the zero value is still reproducible. Trials
//	run in a stable row-major order, so outcomes are a pure function of
//	the seed and dimensions.
//
// Errors:
//
//   - ErrDimension: rows or cols below 1.
//   - ErrProbability: obstacle probability outside [0,1].
//   - ErrNoNavigable: RandomStart on a grid with no navigable cells.
package gridgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// Sentinel errors for generator parameters.
var (
	// ErrDimension indicates rows or cols below the minimum of 1.
	ErrDimension = errors.New("gridgen: rows and cols must be ≥ 1")
	// ErrProbability indicates an obstacle probability outside [0,1].
	ErrProbability = errors.New("gridgen: obstacle probability must lie in [0,1]")
	// ErrNoNavigable indicates a grid without a single navigable cell.
	ErrNoNavigable = errors.New("gridgen: grid has no navigable cells")
)

// Parameter domain bounds (no magic literals).
const (
	minDim  = 1
	probMin = 0.0
	probMax = 1.0
)

// defaultSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random builds a rows×cols grid whose cells are independently Obstacle
// with probability obstacleProb, Navigable otherwise.
// Complexity: O(rows×cols).
func Random(rows, cols int, obstacleProb float64, seed int64) (*floodfill.Grid, error) {
	if rows < minDim || cols < minDim {
		return nil, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrDimension)
	}
	if obstacleProb < probMin || obstacleProb > probMax {
		return nil, fmt.Errorf("p=%.6f: %w", obstacleProb, ErrProbability)
	}

	rng := rngFromSeed(seed)
	g, err := floodfill.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < obstacleProb {
				g.Set(floodfill.Position{Row: r, Col: c}, floodfill.Obstacle)
			}
		}
	}

	return g, nil
}

// RandomStart picks a uniformly random navigable cell of g.
// Returns ErrNoNavigable when every cell is an obstacle (or the grid is
// empty). Candidates are collected in row-major order, so the choice is a
// pure function of the seed and the grid.
// Complexity: O(rows×cols).
func RandomStart(g *floodfill.Grid, seed int64) (floodfill.Position, error) {
	var candidates []floodfill.Position
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := floodfill.Position{Row: r, Col: c}
			if g.At(p) == floodfill.Navigable {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return floodfill.Position{}, ErrNoNavigable
	}

	return candidates[rngFromSeed(seed).Intn(len(candidates))], nil
}
