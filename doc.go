// Package lvlfield is your toolkit for generating spatially-correlated
// random fields on uniform grids — from periodic grid geometry to truncated
// Karhunen–Loève sampling with a bit-exact on-disk cache.
//
// 🚀 What is lvlfield?
//
//	A focused numerical library that brings together:
//		• Grid geometry: uniform rectilinear grids in 1/2/3 dimensions,
//		  per-axis periodic wrap-around distances
//		• Covariance kernels: squared-exponential by default, pluggable
//		• Spectral engine: dense covariance assembly + symmetric
//		  eigendecomposition truncated to the leading modes
//		• Binary cache: canonical parameter fingerprints and a raw
//		  little-endian codec, so the O(M³) decomposition runs once
//		• Field sampling: independent Gaussian realizations from the
//		  stored eigenpairs, any number of times
//
// ✨ Why choose lvlfield?
//
//   - Deterministic – same parameters ⇒ same cache key ⇒ same field statistics
//   - Cache-first – warm constructions never touch the eigensolver
//   - Explicit errors – sentinel errors everywhere, checked with errors.Is
//   - Built on gonum – the decomposition rides a real linear-algebra stack
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/     — Domain geometry, index↔coordinate maps, periodic distances
//	spectral/ — covariance kernels, eigendecomposition, truncation
//	cache/    — parameter fingerprints and the .rfg binary codec
//	field/    — the Generator orchestrator, sampling and interpolation
//
// Quick ASCII example (2-D, 3×3 grid on the unit square):
//
//	    (0,1)──────(1,1)
//	      │  ·  ·  ·  │
//	      │  ·  ·  ·  │
//	    (0,0)──────(1,0)
//
//	nine grid points, correlation decaying with distance.
//
// Construction is cache-first: the first run computes and persists the
// eigenpairs under CachedRandomFields/, every identical run after that
// loads them back bit-for-bit.
//
//	go get github.com/katalvlaran/lvlfield
package lvlfield
