package grid

import "math"

// NewDomain constructs a Domain from per-axis corners, grid point counts and
// periodicity flags. The slice length fixes the space dimension N and must be
// shared by all four parameters.
// Returns ErrBadDimension if N is outside {1,2,3},
// ErrAxisMismatch if the slices disagree on N,
// ErrBadExtent if a corner is NaN/Inf or upper[d] ≤ lower[d],
// ErrTooFewPoints if any numPts[d] < 2.
// Inputs are deep-copied; the caller keeps ownership of its slices.
// Complexity: O(N) time and memory.
func NewDomain(lower, upper []float64, numPts []int, periodic []bool) (*Domain, error) {
	n := len(lower)
	if n < MinDim || n > MaxDim {
		return nil, ErrBadDimension
	}
	if len(upper) != n || len(numPts) != n || len(periodic) != n {
		return nil, ErrAxisMismatch
	}
	for d := 0; d < n; d++ {
		lo, hi := lower[d], upper[d]
		if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || hi <= lo {
			return nil, ErrBadExtent
		}
		if numPts[d] < 2 {
			return nil, ErrTooFewPoints
		}
	}

	return RawDomain(lower, upper, numPts, periodic), nil
}

// RawDomain wires a Domain from parameters that are trusted verbatim, with
// no validation. It exists for codecs that must honor a stored header
// exactly as written; everywhere else prefer NewDomain.
// Inputs are deep-copied. Complexity: O(N) time and memory.
func RawDomain(lower, upper []float64, numPts []int, periodic []bool) *Domain {
	n := len(lower)
	d := &Domain{
		lower:    make([]float64, n),
		upper:    make([]float64, n),
		numPts:   make([]int, n),
		periodic: make([]bool, n),
		spacing:  make([]float64, n),
		total:    1,
	}
	copy(d.lower, lower)
	copy(d.upper, upper)
	copy(d.numPts, numPts)
	copy(d.periodic, periodic)
	for axis := 0; axis < n; axis++ {
		d.total *= d.numPts[axis]
		width := d.upper[axis] - d.lower[axis]
		if d.periodic[axis] {
			// Wrap-consistent: the upper corner is not a node of its own.
			d.spacing[axis] = width / float64(d.numPts[axis])
		} else {
			d.spacing[axis] = width / float64(d.numPts[axis]-1)
		}
	}

	return d
}

// Dim returns the space dimension N.
// Complexity: O(1).
func (d *Domain) Dim() int {
	return len(d.lower)
}

// TotalPoints returns the total number of grid nodes, the product of the
// per-axis counts.
// Complexity: O(1).
func (d *Domain) TotalPoints() int {
	return d.total
}

// Lower returns the lower corner coordinate on the given axis.
// Complexity: O(1).
func (d *Domain) Lower(axis int) float64 {
	return d.lower[axis]
}

// Upper returns the upper corner coordinate on the given axis.
// Complexity: O(1).
func (d *Domain) Upper(axis int) float64 {
	return d.upper[axis]
}

// NumPts returns the number of grid nodes along the given axis.
// Complexity: O(1).
func (d *Domain) NumPts(axis int) int {
	return d.numPts[axis]
}

// Periodic reports whether the given axis wraps around.
// Complexity: O(1).
func (d *Domain) Periodic(axis int) bool {
	return d.periodic[axis]
}

// Width returns the box extent on the given axis.
// Complexity: O(1).
func (d *Domain) Width(axis int) float64 {
	return d.upper[axis] - d.lower[axis]
}

// Spacing returns the node spacing on the given axis; see the package doc
// for the per-axis convention under periodicity.
// Complexity: O(1).
func (d *Domain) Spacing(axis int) float64 {
	return d.spacing[axis]
}

// Coord maps a linear grid index in [0, TotalPoints) to its physical
// coordinate, axis 0 varying fastest. Allocates the result slice; use
// CoordInto in hot loops.
// Complexity: O(N).
func (d *Domain) Coord(idx int) []float64 {
	out := make([]float64, d.Dim())
	d.CoordInto(out, idx)

	return out
}

// CoordInto writes the physical coordinate of linear index idx into dst,
// which must have length Dim. Axis 0 varies fastest: consecutive indices
// step along axis 0, then axis 1, then axis 2.
// Complexity: O(N), no allocations.
func (d *Domain) CoordInto(dst []float64, idx int) {
	rem := idx
	for axis := 0; axis < d.Dim(); axis++ {
		i := rem % d.numPts[axis]
		rem /= d.numPts[axis]
		dst[axis] = d.lower[axis] + float64(i)*d.spacing[axis]
	}
}

// NearestIndex returns the linear index of the grid node closest to loc
// (length Dim). Periodic axes wrap the rounded node index; bounded axes
// clamp it, so every location maps to a valid node.
// Complexity: O(N).
func (d *Domain) NearestIndex(loc []float64) int {
	idx, stride := 0, 1
	for axis := 0; axis < d.Dim(); axis++ {
		n := d.numPts[axis]
		i := int(math.Round((loc[axis] - d.lower[axis]) / d.spacing[axis]))
		if d.periodic[axis] {
			i = ((i % n) + n) % n
		} else if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		idx += i * stride
		stride *= n
	}

	return idx
}

// SquaredDistance returns the squared Euclidean distance between two
// physical locations (length Dim each), honoring wrap-around on periodic
// axes: there the per-axis separation is min(delta, width-delta).
// Pure, deterministic and symmetric in its arguments. Locations are
// expected to lie inside the box.
// Complexity: O(N).
func (d *Domain) SquaredDistance(a, b []float64) float64 {
	distSq := 0.0
	for axis := 0; axis < d.Dim(); axis++ {
		delta := math.Abs(b[axis] - a[axis])
		if d.periodic[axis] {
			width := d.upper[axis] - d.lower[axis]
			delta = math.Min(delta, width-delta)
		}
		distSq += delta * delta
	}

	return distSq
}
