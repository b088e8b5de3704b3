// SPDX-License-Identifier: MIT
package field

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource supplies independent standard-normal draws on demand, one
// per retained eigenmode per realization. Implementations are not required
// to be goroutine-safe; do not share one source across goroutines.
type NormalSource interface {
	Next() float64
}

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// GaussianSource draws standard-normal variates from an explicit
// deterministic stream. Same seed, same sequence, on every platform.
type GaussianSource struct {
	dist distuv.Normal
}

// NewGaussianSource returns a source seeded deterministically.
// Policy: seed==0 selects defaultSeed; any other seed is used verbatim.
// Complexity: O(1).
func NewGaussianSource(seed uint64) *GaussianSource {
	if seed == 0 {
		seed = defaultSeed
	}

	return &GaussianSource{dist: distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed),
	}}
}

// Next returns the next standard-normal variate of the stream.
// Complexity: O(1).
func (g *GaussianSource) Next() float64 {
	return g.dist.Rand()
}
