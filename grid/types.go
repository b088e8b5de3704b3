// Package grid defines the Domain type and sentinel errors for the
// grid subpackage of github.com/katalvlaran/lvlfield.
package grid

import "errors"

// Dimension bounds supported by the library. Everything outside this range
// is a configuration error with no fallback.
const (
	// MinDim is the smallest supported space dimension.
	MinDim = 1
	// MaxDim is the largest supported space dimension.
	MaxDim = 3
)

// Sentinel errors for Domain construction and lookups.
var (
	// ErrBadDimension indicates a space dimension outside {1,2,3}.
	ErrBadDimension = errors.New("grid: dimension must be 1, 2 or 3")
	// ErrAxisMismatch indicates parameter slices of differing lengths.
	ErrAxisMismatch = errors.New("grid: parameter slices must share one dimension")
	// ErrBadExtent indicates a non-finite corner or upper ≤ lower on an axis.
	ErrBadExtent = errors.New("grid: upper corner must be finite and exceed lower corner on every axis")
	// ErrTooFewPoints indicates an axis with fewer than two grid points.
	ErrTooFewPoints = errors.New("grid: every axis needs at least two grid points")
)

// Domain is a uniform rectilinear grid over an axis-aligned box.
// It is immutable once built: constructors deep-copy their inputs and all
// state is reached through accessors. The zero Domain is not usable;
// construct via NewDomain (validated) or RawDomain (trusted, for codecs).
type Domain struct {
	lower    []float64 // lower corner, one entry per axis
	upper    []float64 // upper corner, one entry per axis
	numPts   []int     // grid points per axis
	periodic []bool    // wrap-around flag per axis
	spacing  []float64 // cached node spacing per axis
	total    int       // product of numPts
}
