package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvlfield/grid"
)

// BenchmarkSquaredDistance measures the periodic distance metric in 3-D,
// the per-entry cost of covariance assembly.
// Complexity: O(N), N = 3
func BenchmarkSquaredDistance(b *testing.B) {
	d, err := grid.NewDomain(
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
		[]int{8, 8, 8},
		[]bool{true, true, false},
	)
	if err != nil {
		b.Fatalf("setup NewDomain failed: %v", err)
	}
	p := []float64{0.1, 0.9, 0.4}
	q := []float64{0.8, 0.05, 0.6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.SquaredDistance(p, q)
	}
}

// BenchmarkCoordInto measures index→coordinate mapping without allocations.
// Complexity: O(N), N = 3
func BenchmarkCoordInto(b *testing.B) {
	d, err := grid.NewDomain(
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
		[]int{8, 8, 8},
		[]bool{false, false, false},
	)
	if err != nil {
		b.Fatalf("setup NewDomain failed: %v", err)
	}
	dst := make([]float64, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.CoordInto(dst, i%d.TotalPoints())
	}
}
