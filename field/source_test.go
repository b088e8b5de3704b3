// SPDX-License-Identifier: MIT
package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlfield/field"
)

// TestGaussianSource_Deterministic verifies the seed contract: equal seeds
// replay equal streams, and seed 0 aliases the fixed default stream.
func TestGaussianSource_Deterministic(t *testing.T) {
	a := field.NewGaussianSource(42)
	b := field.NewGaussianSource(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Next(), b.Next(), "equal seeds must agree at draw %d", i)
	}

	zero := field.NewGaussianSource(0)
	def := field.NewGaussianSource(1)
	for i := 0; i < 16; i++ {
		assert.Equal(t, def.Next(), zero.Next(), "seed 0 must alias the default stream")
	}

	c := field.NewGaussianSource(42)
	d := field.NewGaussianSource(43)
	same := true
	for i := 0; i < 16; i++ {
		if c.Next() != d.Next() {
			same = false
		}
	}
	assert.False(t, same, "different seeds must diverge within a few draws")
}

// TestGaussianSource_Moments is a coarse sanity check of the first two
// moments over a fixed stream; the seed makes it fully reproducible.
func TestGaussianSource_Moments(t *testing.T) {
	src := field.NewGaussianSource(7)
	const n = 20000

	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := src.Next()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0, mean, 0.05, "sample mean of a standard normal stream")
	assert.InDelta(t, 1, variance, 0.05, "sample variance of a standard normal stream")
	assert.False(t, math.IsNaN(mean), "stream must stay finite")
}
