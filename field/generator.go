// SPDX-License-Identifier: MIT
package field

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlfield/cache"
	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

// Generator holds the truncated eigendecomposition for one parameter set
// and turns standard-normal draws into field realizations. Instances share
// nothing; each owns its eigenpairs.
type Generator struct {
	dom   *grid.Domain
	trunc spectral.Truncation
	pairs *spectral.EigenPairs
	key   string
	warm  bool
	mean  float64

	// sqrtVals caches sqrt(max(λ_j, 0)); tiny negative eigenvalues are
	// decomposition roundoff and contribute zero, not NaN.
	sqrtVals []float64
}

// New constructs a Generator for the given domain and truncation.
//
// The parameter fingerprint is looked up through the resolver first. On a
// hit the cached domain, truncation, and eigenpairs replace the arguments
// wholesale (warm). On a miss the covariance matrix is built and
// decomposed, and the result is saved under the fingerprint before New
// returns (cold). Construction blocks until one of the two outcomes
// completes; a failed load or save fails New, with no silent fallback.
//
// Returns ErrNilDomain, truncation or kernel errors from spectral, codec
// errors from cache, and wrapped I/O errors.
// Complexity: warm O(M·k) for the file read; cold O(M³) for M grid points.
func New(dom *grid.Domain, trunc spectral.Truncation, opts ...Option) (*Generator, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}
	if err := trunc.Validate(dom.TotalPoints()); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{key: cache.Key(dom, trunc), mean: cfg.mean}
	if cfg.resolver.Exists(g.key) {
		if err := g.loadCached(cfg, dom.Dim()); err != nil {
			return nil, err
		}
	} else {
		if err := g.compute(cfg, dom, trunc); err != nil {
			return nil, err
		}
	}

	g.sqrtVals = make([]float64, g.pairs.NumModes())
	for j, v := range g.pairs.Values {
		if v > 0 {
			g.sqrtVals[j] = math.Sqrt(v)
		}
	}

	return g, nil
}

// loadCached populates the Generator from the cache file, discarding the
// constructor parameters in favor of the stored ones.
func (g *Generator) loadCached(cfg config, dim int) error {
	abs, err := cfg.resolver.Resolve(g.key)
	if err != nil {
		return err
	}
	dom, trunc, pairs, err := cache.Load(abs, dim)
	if err != nil {
		return err
	}
	g.dom, g.trunc, g.pairs, g.warm = dom, trunc, pairs, true

	return nil
}

// compute runs the cold path: covariance build, decomposition, cache write.
func (g *Generator) compute(cfg config, dom *grid.Domain, trunc spectral.Truncation) error {
	if cfg.onCompute != nil {
		cfg.onCompute()
	}
	cov, err := spectral.BuildCovariance(dom, cfg.kernel, trunc.LengthScale, cfg.workers)
	if err != nil {
		return err
	}
	pairs, err := spectral.Decompose(cov, trunc.NumEigenvals)
	if err != nil {
		return err
	}

	abs, err := cfg.resolver.Resolve(g.key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("field: create cache dir: %w", err)
	}
	if err := cache.Save(abs, dom, trunc, pairs); err != nil {
		return err
	}
	g.dom, g.trunc, g.pairs = dom, trunc, pairs

	return nil
}

// Sample draws one field realization, one variate per retained mode.
// Complexity: O(M·k) time, O(M+k) space.
func (g *Generator) Sample(src NormalSource) ([]float64, error) {
	out := make([]float64, g.dom.TotalPoints())
	if err := g.SampleInto(out, src); err != nil {
		return nil, err
	}

	return out, nil
}

// SampleInto writes one field realization into dst, which must have exactly
// TotalPoints elements. Exactly NumModes variates are drawn from src, in
// mode order, regardless of grid size. The eigenpairs are never mutated.
//
// Returns ErrNilSource or ErrLengthMismatch.
// Complexity: O(M·k) time, O(k) space.
func (g *Generator) SampleInto(dst []float64, src NormalSource) error {
	if src == nil {
		return ErrNilSource
	}
	if len(dst) != g.dom.TotalPoints() {
		return ErrLengthMismatch
	}

	k := g.pairs.NumModes()
	z := make([]float64, k)
	for j := range z {
		z[j] = g.sqrtVals[j] * src.Next()
	}
	for i := range dst {
		dst[i] = g.mean + floats.Dot(g.pairs.Vectors.RawRowView(i), z)
	}

	return nil
}

// Interpolate evaluates a realization at an arbitrary location by
// nearest-node lookup: the value at the grid node closest to loc, with
// periodic axes wrapping and bounded axes clamping.
//
// Returns ErrLengthMismatch or ErrBadLocation.
// Complexity: O(N).
func (g *Generator) Interpolate(fieldValues []float64, loc []float64) (float64, error) {
	if len(fieldValues) != g.dom.TotalPoints() {
		return 0, ErrLengthMismatch
	}
	if len(loc) != g.dom.Dim() {
		return 0, ErrBadLocation
	}

	return fieldValues[g.dom.NearestIndex(loc)], nil
}

// Domain returns the generator's domain. Warm generators return the cached
// domain, not the constructor argument.
func (g *Generator) Domain() *grid.Domain {
	return g.dom
}

// Truncation returns the generator's truncation. Warm generators return
// the cached truncation, not the constructor argument.
func (g *Generator) Truncation() spectral.Truncation {
	return g.trunc
}

// EigenPairs returns the retained eigenpairs. Treat them as read-only;
// sampling correctness depends on them never changing.
func (g *Generator) EigenPairs() *spectral.EigenPairs {
	return g.pairs
}

// CacheKey returns the resolver-relative fingerprint this generator was
// constructed under.
func (g *Generator) CacheKey() string {
	return g.key
}

// Warm reports whether construction was served from the cache.
func (g *Generator) Warm() bool {
	return g.warm
}

// Mean returns the constant offset added to every realization.
func (g *Generator) Mean() float64 {
	return g.mean
}
