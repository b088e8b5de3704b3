// SPDX-License-Identifier: MIT
package spectral

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlfield/grid"
)

// BuildCovariance assembles the dense symmetric covariance matrix of a grid
// domain: C[i][j] = kern(SquaredDistance(coord(i), coord(j)), lengthScale).
//
// The upper triangle is filled in parallel stripes of rows; workers ≤ 0
// selects runtime.NumCPU(). Entries are pure functions of (domain, kernel,
// lengthScale) and stripes never overlap, so the result is identical for
// any worker count.
//
// Returns ErrNilDomain, ErrNilKernel, ErrBadLengthScale, or
// ErrKernelNotFinite if any evaluation yields NaN/±Inf.
// Complexity: O(M²·N) time for M = TotalPoints, O(M²) memory.
func BuildCovariance(dom *grid.Domain, kern Kernel, lengthScale float64, workers int) (*mat.SymDense, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}
	if kern == nil {
		return nil, ErrNilKernel
	}
	if lengthScale <= 0 || math.IsNaN(lengthScale) || math.IsInf(lengthScale, 0) {
		return nil, ErrBadLengthScale
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	m := dom.TotalPoints()
	cov := mat.NewSymDense(m, nil)

	// Stripe rows across workers; row i fills columns j ≥ i, so no two
	// goroutines ever touch the same element.
	var eg errgroup.Group
	stripe := (m + workers - 1) / workers
	for start := 0; start < m; start += stripe {
		end := start + stripe
		if end > m {
			end = m
		}
		lo, hi := start, end
		eg.Go(func() error {
			ci := make([]float64, dom.Dim())
			cj := make([]float64, dom.Dim())
			for i := lo; i < hi; i++ {
				dom.CoordInto(ci, i)
				for j := i; j < m; j++ {
					dom.CoordInto(cj, j)
					v := kern(dom.SquaredDistance(ci, cj), lengthScale)
					if math.IsNaN(v) || math.IsInf(v, 0) {
						return ErrKernelNotFinite
					}
					cov.SetSym(i, j, v)
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return cov, nil
}

// Decompose computes the symmetric eigendecomposition of cov and truncates
// it to the numEigenvals modes with the largest |λ|, sorted descending.
// Ties keep the solver's output order (stable sort); the solver itself is
// deterministic for identical input, so reruns reproduce cached results
// exactly. Mode counts beyond the matrix rank simply retain near-zero
// eigenvalues.
//
// Returns ErrNilCovariance, ErrBadModeCount, ErrTooManyModes, or
// ErrEigenFailed if the factorization does not converge.
// Complexity: O(M³) time, O(M²) memory.
func Decompose(cov *mat.SymDense, numEigenvals int) (*EigenPairs, error) {
	if cov == nil {
		return nil, ErrNilCovariance
	}
	m := cov.SymmetricDim()
	if numEigenvals < 1 {
		return nil, ErrBadModeCount
	}
	if numEigenvals > m {
		return nil, ErrTooManyModes
	}

	var es mat.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		return nil, ErrEigenFailed
	}
	all := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Rank modes by descending magnitude; gonum returns ascending values.
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(all[order[a]]) > math.Abs(all[order[b]])
	})

	pairs := &EigenPairs{
		Values:  make([]float64, numEigenvals),
		Vectors: mat.NewDense(m, numEigenvals, nil),
	}
	col := make([]float64, m)
	for j := 0; j < numEigenvals; j++ {
		src := order[j]
		pairs.Values[j] = all[src]
		mat.Col(col, src, &vecs)
		pairs.Vectors.SetCol(j, col)
	}

	return pairs, nil
}
