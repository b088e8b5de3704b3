//go:build netlib

// SPDX-License-Identifier: MIT
package spectral

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// Building with -tags netlib routes gonum's BLAS calls through the native
// netlib implementation. Eigendecomposition of large covariance matrices is
// dominated by level-3 BLAS, so this is where the tag pays off.
func init() {
	blas64.Use(netlib.Implementation{})
}
