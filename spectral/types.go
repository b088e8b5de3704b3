// SPDX-License-Identifier: MIT
// Package spectral: sentinel errors and result/parameter types.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never redefined with formatted strings; context, when
//     essential, is attached by wrapping with %w at the call site.
//   - Functions never panic on user-triggered conditions.
package spectral

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilDomain indicates a nil *grid.Domain was passed to the engine.
	ErrNilDomain = errors.New("spectral: domain is nil")
	// ErrNilKernel indicates a nil covariance kernel.
	ErrNilKernel = errors.New("spectral: kernel is nil")
	// ErrNilCovariance indicates a nil covariance matrix passed to Decompose.
	ErrNilCovariance = errors.New("spectral: covariance matrix is nil")
	// ErrBadLengthScale indicates a non-positive or non-finite length scale.
	ErrBadLengthScale = errors.New("spectral: length scale must be positive and finite")
	// ErrKernelNotFinite indicates a kernel evaluation produced NaN or ±Inf.
	ErrKernelNotFinite = errors.New("spectral: kernel produced a non-finite covariance")
	// ErrBadModeCount indicates a requested mode count below 1.
	ErrBadModeCount = errors.New("spectral: number of eigenvalues must be at least 1")
	// ErrTooManyModes indicates a mode count above the total grid point count.
	ErrTooManyModes = errors.New("spectral: number of eigenvalues exceeds total grid points")
	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")
	// ErrUnknownKernel indicates an unrecognized kernel name.
	ErrUnknownKernel = errors.New("spectral: unknown kernel name")
)

// Truncation fixes how many leading eigenmodes a decomposition retains and
// the correlation length the kernel is evaluated with. The mode count is a
// hard cap chosen by the caller, not an error-tolerance criterion; modes
// beyond the matrix rank carry near-zero eigenvalues and negligible
// variance, which is accepted.
type Truncation struct {
	// NumEigenvals is the number of leading modes to retain, 1 ≤ k ≤ M.
	NumEigenvals int
	// LengthScale is the kernel correlation length, > 0.
	LengthScale float64
}

// Validate checks the truncation against a grid of totalPoints nodes.
// Returns ErrBadModeCount, ErrTooManyModes or ErrBadLengthScale.
// Complexity: O(1).
func (t Truncation) Validate(totalPoints int) error {
	if t.NumEigenvals < 1 {
		return ErrBadModeCount
	}
	if t.NumEigenvals > totalPoints {
		return ErrTooManyModes
	}
	if t.LengthScale <= 0 || math.IsNaN(t.LengthScale) || math.IsInf(t.LengthScale, 0) {
		return ErrBadLengthScale
	}

	return nil
}

// EigenPairs holds a truncated eigendecomposition: Values[j] is the j-th
// retained eigenvalue (descending |λ|) and column j of Vectors is its
// eigenvector over all grid points. Produced once per generator, read-only
// afterwards.
type EigenPairs struct {
	// Values are the retained eigenvalues, ordered by descending magnitude.
	Values []float64
	// Vectors is (totalGridPoints × NumModes); column j pairs with Values[j].
	Vectors *mat.Dense
}

// NumModes returns the number of retained eigenmodes.
// Complexity: O(1).
func (p *EigenPairs) NumModes() int {
	return len(p.Values)
}

// GridPoints returns the number of grid nodes each eigenvector spans.
// Complexity: O(1).
func (p *EigenPairs) GridPoints() int {
	if p.Vectors == nil {
		return 0
	}
	r, _ := p.Vectors.Dims()

	return r
}

// CapturedVariance sums the retained eigenvalues, clamping round-off
// negatives to zero: it is the total field variance the truncation keeps.
// Complexity: O(k) time, O(k) scratch.
func (p *EigenPairs) CapturedVariance() float64 {
	clamped := make([]float64, len(p.Values))
	for j, v := range p.Values {
		if v > 0 {
			clamped[j] = v
		}
	}

	return floats.Sum(clamped)
}

// FractionOfTotal reports CapturedVariance as a share of the full trace,
// which equals totalPoints for a unit-variance kernel (kernel(0) == 1).
// Complexity: O(k).
func (p *EigenPairs) FractionOfTotal(totalPoints int) float64 {
	if totalPoints <= 0 {
		return 0
	}

	return p.CapturedVariance() / float64(totalPoints)
}
