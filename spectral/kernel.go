// SPDX-License-Identifier: MIT
package spectral

import "math"

// Kernel maps a squared distance and a correlation length to a covariance
// value. Implementations must be symmetric positive-semi-definite functions
// of squared distance so the assembled matrix admits a real non-negative
// spectrum; this is a documented contract, not something the engine can
// verify cheaply. Kernels are evaluated with distSq ≥ 0 and lengthScale > 0.
type Kernel func(distSq, lengthScale float64) float64

// SquaredExponential is the canonical Gaussian covariance
// exp(-d² / (2ℓ²)): infinitely smooth fields, unit variance at d = 0.
// It is the default kernel everywhere a Kernel is optional.
// Complexity: O(1).
func SquaredExponential(distSq, lengthScale float64) float64 {
	return math.Exp(-distSq / (2 * lengthScale * lengthScale))
}

// Exponential is the Ornstein–Uhlenbeck covariance exp(-d/ℓ): rougher,
// once-differentiable fields with the same unit variance at d = 0.
// Complexity: O(1) (one square root).
func Exponential(distSq, lengthScale float64) float64 {
	return math.Exp(-math.Sqrt(distSq) / lengthScale)
}

// KernelByName resolves a configuration string to a built-in kernel:
// "squared-exponential" (aliases "se", "gaussian") or "exponential".
// Returns ErrUnknownKernel for anything else.
// Complexity: O(1).
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "squared-exponential", "se", "gaussian":
		return SquaredExponential, nil
	case "exponential":
		return Exponential, nil
	default:
		return nil, ErrUnknownKernel
	}
}
