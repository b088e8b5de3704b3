// SPDX-License-Identifier: MIT
package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfield/cache"
	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

// mustDomain builds a domain or fails the test.
func mustDomain(t *testing.T, lower, upper []float64, numPts []int, periodic []bool) *grid.Domain {
	t.Helper()
	dom, err := grid.NewDomain(lower, upper, numPts, periodic)
	require.NoError(t, err, "domain must construct")

	return dom
}

// TestFilename_Reference pins the full fingerprint of the canonical 2-D
// setup: unit square, 3x3 points, 4 modes, length scale 0.5.
func TestFilename_Reference(t *testing.T) {
	dom := mustDomain(t,
		[]float64{0, 0}, []float64{1, 1}, []int{3, 3}, []bool{false, false},
	)
	trunc := spectral.Truncation{NumEigenvals: 4, LengthScale: 0.5}

	assert.Equal(t,
		"xy_0.000_0.000_1.000_1.000_3_3_0_0_4_0.500.rfg",
		cache.Filename(dom, trunc),
		"2-D fingerprint must match the reference layout exactly")
	assert.Equal(t,
		"CachedRandomFields/xy_0.000_0.000_1.000_1.000_3_3_0_0_4_0.500.rfg",
		cache.Key(dom, trunc),
		"key prefixes the cache directory")
}

// TestFilename_DimensionTags checks the x/xy/xyz prefixes and the per-axis
// field repetition for every supported dimension.
func TestFilename_DimensionTags(t *testing.T) {
	trunc := spectral.Truncation{NumEigenvals: 2, LengthScale: 1}

	d1 := mustDomain(t, []float64{0}, []float64{2}, []int{5}, []bool{true})
	assert.Equal(t, "x_0.000_2.000_5_1_2_1.000.rfg", cache.Filename(d1, trunc),
		"1-D fingerprint")

	d3 := mustDomain(t,
		[]float64{0, -1, 0.25}, []float64{1, 1, 0.75},
		[]int{2, 3, 4}, []bool{false, true, false},
	)
	assert.Equal(t,
		"xyz_0.000_-1.000_0.250_1.000_1.000_0.750_2_3_4_0_1_0_2_1.000.rfg",
		cache.Filename(d3, trunc),
		"3-D fingerprint")
}

// TestFilename_RoundingCollision verifies the bounded-precision contract:
// parameter sets that agree after rounding to 3 decimals share a filename,
// and ones that differ at 3 decimals do not.
func TestFilename_RoundingCollision(t *testing.T) {
	pts, per := []int{3, 3}, []bool{false, false}
	a := mustDomain(t, []float64{0, 0}, []float64{1, 1}, pts, per)
	b := mustDomain(t, []float64{0.0004, 0}, []float64{1.0003, 0.9996}, pts, per)

	ta := spectral.Truncation{NumEigenvals: 4, LengthScale: 0.5}
	tb := spectral.Truncation{NumEigenvals: 4, LengthScale: 0.50049}

	assert.Equal(t, cache.Filename(a, ta), cache.Filename(b, tb),
		"sub-millimeter parameter jitter must collide on one key")

	tc := spectral.Truncation{NumEigenvals: 4, LengthScale: 0.501}
	assert.NotEqual(t, cache.Filename(a, ta), cache.Filename(a, tc),
		"a difference at the third decimal must produce a distinct key")
}

// TestFilename_Deterministic double-checks that repeated encodings agree.
func TestFilename_Deterministic(t *testing.T) {
	dom := mustDomain(t,
		[]float64{-2.5, 0}, []float64{2.5, 10}, []int{4, 8}, []bool{true, false},
	)
	trunc := spectral.Truncation{NumEigenvals: 7, LengthScale: 1.25}

	assert.Equal(t, cache.Filename(dom, trunc), cache.Filename(dom, trunc),
		"encoding must be a pure function of its inputs")
}
