// SPDX-License-Identifier: MIT
//
// options.go — functional options for Generator construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generator methods themselves MUST NOT panic.
//   - Determinism is explicit: sampling seeds flow through NewGaussianSource,
//     never through hidden time-based state.
//   - No hidden globals; everything flows through config.

package field

import (
	"math"

	"github.com/katalvlaran/lvlfield/spectral"
)

// Option customizes Generator construction by mutating a config instance
// before any cache or matrix work begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved construction knobs.
type config struct {
	resolver  PathResolver
	kernel    spectral.Kernel
	workers   int
	mean      float64
	onCompute func()
}

// defaultConfig resolves cache keys against the working directory, uses the
// squared-exponential kernel, auto-sizes matrix workers, and centers the
// field at zero.
func defaultConfig() config {
	return config{
		resolver: OutputRoot(""),
		kernel:   spectral.SquaredExponential,
		workers:  0,
		mean:     0,
	}
}

// WithResolver sets the PathResolver used for cache lookups and writes.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithResolver(r PathResolver) Option {
	if r == nil {
		panic("field: WithResolver(nil)")
	}

	return func(c *config) {
		c.resolver = r
	}
}

// WithKernel swaps the covariance kernel used on the cold path. The kernel
// must be a positive-semi-definite function of squared distance or the
// decomposition loses meaning. Panics on nil.
// Complexity: O(1).
func WithKernel(k spectral.Kernel) Option {
	if k == nil {
		panic("field: WithKernel(nil)")
	}

	return func(c *config) {
		c.kernel = k
	}
}

// WithWorkers caps the goroutines used for the covariance fill; 0 means one
// per CPU. The eigenpairs are numerically identical for any worker count.
// Panics on negative values.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("field: WithWorkers(negative)")
	}

	return func(c *config) {
		c.workers = n
	}
}

// WithMean shifts every realization by a constant. Panics on NaN/Inf.
// Complexity: O(1).
func WithMean(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic("field: WithMean(non-finite)")
	}

	return func(c *config) {
		c.mean = mu
	}
}

// WithOnCompute registers a hook invoked exactly once when construction
// goes cold, right before the covariance build. Warm constructions never
// invoke it, which makes cache hits observable in tests. Panics on nil.
// Complexity: O(1).
func WithOnCompute(fn func()) Option {
	if fn == nil {
		panic("field: WithOnCompute(nil)")
	}

	return func(c *config) {
		c.onCompute = fn
	}
}
