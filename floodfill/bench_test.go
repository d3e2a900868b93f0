package floodfill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// BenchmarkColorAll measures full-grid labeling of a 1000×1000 grid with
// ~30% obstacles, deterministic seed. Each iteration works on a fresh
// clone since ColorAll mutates in place.
// Complexity: O(R×C)
func BenchmarkColorAll(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			if rng.Float64() < 0.3 {
				row[c] = floodfill.Obstacle
			}
		}
		values[r] = row
	}
	base, err := floodfill.From2D(values)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_ = floodfill.ColorAll(g, floodfill.Position{Row: 0, Col: 0})
	}
}

// BenchmarkFill_SingleRegion measures one fill across a fully open
// 1000×1000 grid (worst case: one region, maximal worklist).
func BenchmarkFill_SingleRegion(b *testing.B) {
	const n = 1000
	base, err := floodfill.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_ = floodfill.Fill(g, floodfill.Position{Row: n / 2, Col: n / 2}, floodfill.FirstLabel)
	}
}
