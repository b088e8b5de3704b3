// SPDX-License-Identifier: MIT
package cache

import (
	"path"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

const (
	// Dir is the cache directory, relative to the resolver's output root.
	Dir = "CachedRandomFields"

	// Ext is the cache file extension.
	Ext = ".rfg"
)

// dimTags prefix the filename with the axis letters of the domain.
var dimTags = [...]string{"x", "xy", "xyz"}

// Filename encodes a parameter set as a flat, filesystem-safe fingerprint:
//
//	<tag>_<lower...>_<upper...>_<numPts...>_<periodic...>_<modes>_<scale><Ext>
//
// Floating-point fields are fixed to three decimals, so parameter sets that
// round to the same representation on every field share one filename. Grid
// counts print plain and periodicity flags print as 0 or 1.
//
// Panics if the domain dimension is outside {1, 2, 3}; Domain constructors
// never produce one, so reaching the panic means the Domain was forged.
func Filename(dom *grid.Domain, trunc spectral.Truncation) string {
	n := dom.Dim()
	if n < grid.MinDim || n > grid.MaxDim {
		panic("cache: domain dimension out of range")
	}

	parts := make([]string, 0, 4*n+3)
	parts = append(parts, dimTags[n-1])
	for axis := 0; axis < n; axis++ {
		parts = append(parts, fixed3(dom.Lower(axis)))
	}
	for axis := 0; axis < n; axis++ {
		parts = append(parts, fixed3(dom.Upper(axis)))
	}
	for axis := 0; axis < n; axis++ {
		parts = append(parts, strconv.Itoa(dom.NumPts(axis)))
	}
	for axis := 0; axis < n; axis++ {
		if dom.Periodic(axis) {
			parts = append(parts, "1")
		} else {
			parts = append(parts, "0")
		}
	}
	parts = append(parts, strconv.Itoa(trunc.NumEigenvals))
	parts = append(parts, fixed3(trunc.LengthScale))

	return strings.Join(parts, "_") + Ext
}

// Key returns the resolver-relative cache path: Dir joined with Filename.
// Keys always use forward slashes; resolvers translate them to native
// filesystem paths.
func Key(dom *grid.Domain, trunc spectral.Truncation) string {
	return path.Join(Dir, Filename(dom, trunc))
}

// fixed3 renders v with exactly three fixed decimals.
func fixed3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
