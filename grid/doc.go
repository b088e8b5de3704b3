// Package grid models uniform rectilinear grids over axis-aligned boxes
// in 1, 2 or 3 dimensions, with optional wrap-around per axis.
//
// What:
//
//   - Domain wraps the box corners, per-axis grid point counts and per-axis
//     periodicity flags; it is immutable once built.
//   - Maps every linear grid index in [0, TotalPoints) to a physical
//     coordinate with uniform spacing, axis 0 varying fastest.
//   - Computes periodic-aware squared distances between physical locations.
//   - Finds the nearest grid node to an arbitrary location (wrapping on
//     periodic axes, clamping on bounded ones).
//
// Why:
//
//   - Covariance kernels of random fields are functions of distance; the
//     wrap-around metric makes fields tile seamlessly across periodic axes.
//   - A single index convention shared by geometry, covariance assembly and
//     persistence keeps eigenvector layouts unambiguous.
//
// Spacing convention:
//
//   - Non-periodic axis: spacing = width/(n-1); both corners are grid nodes.
//   - Periodic axis: spacing = width/n; the upper corner is excluded so the
//     last node does not duplicate the first under wrap-around.
//
// Complexity:
//
//   - SquaredDistance, Coord, NearestIndex: O(N) with N ≤ 3.
//   - NewDomain: O(N) time and memory (deep copies of the parameter slices).
//
// Errors:
//
//   - ErrBadDimension: dimension outside {1,2,3}.
//   - ErrAxisMismatch: parameter slices of differing lengths.
//   - ErrBadExtent: upper corner not strictly above lower, or not finite.
//   - ErrTooFewPoints: fewer than two grid points along an axis.
package grid
