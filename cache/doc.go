// SPDX-License-Identifier: MIT

// Package cache persists truncated eigendecompositions so that repeated
// constructions with the same parameters skip the dense covariance build.
//
// What:
//
//   - Filename / Key: a filesystem-safe fingerprint of a parameter set.
//     Dimension tag (x, xy, xyz), then lower corner, upper corner, grid
//     counts, periodicity flags, mode count, and length scale, separated
//     by underscores. Floating-point fields are rendered with exactly
//     three fixed decimals, integer and boolean fields print plain, so
//     parameter sets that agree after rounding share one cache file.
//   - Save / Load: a private little-endian binary codec. The header
//     stores the domain and truncation verbatim; eigenvalues and then
//     column-major eigenvectors follow with no delimiters, their lengths
//     derived from the header.
//
// Why:
//
// The eigendecomposition costs O(M³) for M grid points while reloading it
// costs one sequential file read. The fingerprint is the cache identity:
// equal key means the stored pairs are reused as-is.
//
// Trust boundary:
//
// Load never validates the decoded values; a file written for different
// parameters yields garbage, not an error. It does check that the byte
// count covers what the header implies, so truncated writes surface as
// ErrShortRead instead of partial data. Save goes through an atomic
// rename so readers never observe a half-written file.
//
// Errors: ErrBadDimension, ErrNilData, ErrMismatch, ErrBadHeader,
// ErrShortRead; I/O failures are wrapped with the affected path.
package cache
