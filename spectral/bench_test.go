// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

// benchDomain returns a 2-D 16x16 periodic domain (256 grid points).
func benchDomain(b *testing.B) *grid.Domain {
	b.Helper()
	dom, err := grid.NewDomain(
		[]float64{0, 0}, []float64{1, 1}, []int{16, 16}, []bool{true, true},
	)
	if err != nil {
		b.Fatalf("domain: %v", err)
	}

	return dom
}

// BenchmarkBuildCovariance_Serial measures the single-worker matrix fill.
func BenchmarkBuildCovariance_Serial(b *testing.B) {
	dom := benchDomain(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.BuildCovariance(dom, spectral.SquaredExponential, 0.3, 1); err != nil {
			b.Fatalf("build: %v", err)
		}
	}
}

// BenchmarkBuildCovariance_Parallel measures the striped fill at NumCPU.
func BenchmarkBuildCovariance_Parallel(b *testing.B) {
	dom := benchDomain(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.BuildCovariance(dom, spectral.SquaredExponential, 0.3, 0); err != nil {
			b.Fatalf("build: %v", err)
		}
	}
}

// BenchmarkDecompose measures the truncated eigendecomposition.
func BenchmarkDecompose(b *testing.B) {
	dom := benchDomain(b)
	cov, err := spectral.BuildCovariance(dom, spectral.SquaredExponential, 0.3, 0)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Decompose(cov, 32); err != nil {
			b.Fatalf("decompose: %v", err)
		}
	}
}
