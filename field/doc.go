// SPDX-License-Identifier: MIT

// Package field generates spatially correlated random fields on uniform
// rectilinear grids through a truncated Karhunen-Loève expansion.
//
// What:
//
// A Generator owns the truncated eigendecomposition of a covariance kernel
// evaluated over a grid.Domain. Construction has two terminal outcomes:
//
//   - Warm: a cache file matches the parameter fingerprint. The stored
//     domain, truncation, and eigenpairs replace the constructor arguments
//     entirely and no matrix work happens.
//   - Cold: no cache file matches. The covariance matrix is assembled and
//     decomposed, and the result is written to the cache before the
//     Generator is ready.
//
// Sampling then turns independent standard-normal draws into field
// realizations:
//
//	field[i] = mean + Σ_j sqrt(λ_j) · V[i,j] · z_j
//
// with one variate z_j per retained mode. Sampling never mutates the
// eigenpairs, so one Generator serves any number of realizations.
//
// Why:
//
// The decomposition costs O(M³) for M grid points; realizations cost
// O(M·k) for k retained modes. Paying the cubic price once per parameter
// set, and caching it on disk across processes, keeps per-sample cost flat.
//
// Determinism:
//
//   - Same parameters reproduce the same cache key and eigenpairs.
//   - GaussianSource with the same seed reproduces the same realizations;
//     seed 0 selects a fixed default stream.
//
// Errors: ErrNilDomain, ErrNilSource, ErrLengthMismatch, ErrBadLocation;
// truncation problems surface as spectral sentinel errors and cache
// problems as cache sentinel errors, both unchanged.
package field
