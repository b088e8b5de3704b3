// SPDX-License-Identifier: MIT
package cache

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/natefinch/atomic"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

// File layout, all little-endian, no padding, no version tag:
//
//	lower   N × float64
//	upper   N × float64
//	numPts  N × uint32
//	per     N × uint8 (0 or 1)
//	modes   uint32
//	scale   float64
//	values  modes × float64
//	vectors M·modes × float64, column-major by mode
//
// N and M are never stored; Load derives them from its dim argument and
// the product of the decoded grid counts.

// headerSize returns the byte length of the fixed header for dimension n.
func headerSize(n int) int {
	return 8*n + 8*n + 4*n + n + 4 + 8
}

// Save writes the domain, truncation, and eigen data to path through an
// atomic rename, so a crash mid-write never leaves a partial file behind.
// The parent directory must already exist.
//
// Returns ErrNilData or ErrMismatch on inconsistent arguments; I/O failures
// are wrapped with the path.
func Save(path string, dom *grid.Domain, trunc spectral.Truncation, pairs *spectral.EigenPairs) error {
	if dom == nil || pairs == nil || pairs.Vectors == nil {
		return ErrNilData
	}
	n := dom.Dim()
	m := dom.TotalPoints()
	k := trunc.NumEigenvals
	vr, vc := pairs.Vectors.Dims()
	if pairs.NumModes() != k || vr != m || vc != k {
		return ErrMismatch
	}

	buf := make([]byte, headerSize(n)+8*k*(1+m))
	off := 0
	putF64 := func(v float64) {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}

	for axis := 0; axis < n; axis++ {
		putF64(dom.Lower(axis))
	}
	for axis := 0; axis < n; axis++ {
		putF64(dom.Upper(axis))
	}
	for axis := 0; axis < n; axis++ {
		binary.LittleEndian.PutUint32(buf[off:], uint32(dom.NumPts(axis)))
		off += 4
	}
	for axis := 0; axis < n; axis++ {
		if dom.Periodic(axis) {
			buf[off] = 1
		}
		off++
	}
	binary.LittleEndian.PutUint32(buf[off:], uint32(k))
	off += 4
	putF64(trunc.LengthScale)

	for _, v := range pairs.Values {
		putF64(v)
	}
	col := make([]float64, m)
	for j := 0; j < k; j++ {
		mat.Col(col, j, pairs.Vectors)
		for _, v := range col {
			putF64(v)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("cache: write %s: %w", path, err)
	}

	return nil
}

// Load reads a file written by Save. dim must match the dimension the file
// was written with; the header carries no tag of its own, so a mismatched
// dim decodes garbage rather than failing.
//
// Decoded values are trusted verbatim. The only structural checks are that
// the byte count covers what the header implies (ErrShortRead), and that
// the implied grid and mode counts are positive (ErrBadHeader); trailing
// bytes beyond the implied length are ignored.
func Load(path string, dim int) (*grid.Domain, spectral.Truncation, *spectral.EigenPairs, error) {
	if dim < grid.MinDim || dim > grid.MaxDim {
		return nil, spectral.Truncation{}, nil, ErrBadDimension
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, spectral.Truncation{}, nil, fmt.Errorf("cache: read %s: %w", path, err)
	}
	if len(raw) < headerSize(dim) {
		return nil, spectral.Truncation{}, nil, ErrShortRead
	}

	off := 0
	getF64 := func() float64 {
		v := math.Float64frombits(binary.LittleEndian.Uint64(raw[off:]))
		off += 8

		return v
	}

	lower := make([]float64, dim)
	for axis := range lower {
		lower[axis] = getF64()
	}
	upper := make([]float64, dim)
	for axis := range upper {
		upper[axis] = getF64()
	}
	numPts := make([]int, dim)
	for axis := range numPts {
		numPts[axis] = int(binary.LittleEndian.Uint32(raw[off:]))
		off += 4
	}
	periodic := make([]bool, dim)
	for axis := range periodic {
		periodic[axis] = raw[off] != 0
		off++
	}
	k := int(binary.LittleEndian.Uint32(raw[off:]))
	off += 4
	scale := getF64()

	m := 1
	for _, np := range numPts {
		if np < 1 || m > math.MaxInt/np {
			return nil, spectral.Truncation{}, nil, ErrBadHeader
		}
		m *= np
	}
	if k < 1 {
		return nil, spectral.Truncation{}, nil, ErrBadHeader
	}

	// Bound m and k by the doubles actually present before sizing the
	// payload, so a forged header cannot demand a huge allocation.
	rest := (len(raw) - off) / 8
	if m > rest || k > rest || k > rest/(1+m) {
		return nil, spectral.Truncation{}, nil, ErrShortRead
	}

	values := make([]float64, k)
	for j := range values {
		values[j] = getF64()
	}
	vectors := mat.NewDense(m, k, nil)
	col := make([]float64, m)
	for j := 0; j < k; j++ {
		for i := range col {
			col[i] = getF64()
		}
		vectors.SetCol(j, col)
	}

	dom := grid.RawDomain(lower, upper, numPts, periodic)
	trunc := spectral.Truncation{NumEigenvals: k, LengthScale: scale}
	pairs := &spectral.EigenPairs{Values: values, Vectors: vectors}

	return dom, trunc, pairs, nil
}
