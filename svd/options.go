// SPDX-License-Identifier: MIT

// Package svd - solver configuration and the large-matrix policy.
// Defaults are documented constants (single source of truth). The loose
// tier exists to bound runtime on big pixel matrices: absolute convergence
// thresholds that suit a thumbnail would stall on a megapixel channel whose
// leading eigenvalues sit many orders of magnitude higher.

package svd

import "math/rand"

const (
	// DefaultTolerance is the strict-tier convergence threshold and the
	// singular-value cutoff below which a component counts as degenerate.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations is the strict-tier per-component iteration cap.
	DefaultMaxIterations = 1000

	// DefaultLargePixelCount is the rows×cols threshold above which the
	// loose tier applies (≈ a 500×500 channel).
	DefaultLargePixelCount = 250_000

	// DefaultLooseTolerance relaxes convergence for large matrices.
	DefaultLooseTolerance = 1e-2

	// DefaultLooseMaxIterations bounds per-component work for large matrices.
	DefaultLooseMaxIterations = 128

	// DefaultLooseMaxComponents caps the extracted rank for large matrices;
	// components past the cap contribute almost nothing visually.
	DefaultLooseMaxComponents = 64
)

// Options configures Decompose.
//
// Fields:
//   - Tolerance / MaxIterations    — strict tier (small matrices).
//   - MaxComponents                — optional cap on the declared rank;
//     0 means min(m, n).
//   - LargePixelCount              — rows×cols threshold for the loose tier;
//     0 disables the loose tier entirely.
//   - LooseTolerance / LooseMaxIterations / LooseMaxComponents — loose tier;
//     a zero field falls back to its strict counterpart (or to no cap).
//   - Seed / Rand                  — forwarded to the eigen solver; Rand
//     overrides Seed, and seed 0 selects the solver's fixed default.
type Options struct {
	Tolerance     float64
	MaxIterations int
	MaxComponents int

	LargePixelCount    int
	LooseTolerance     float64
	LooseMaxIterations int
	LooseMaxComponents int

	Seed int64
	Rand *rand.Rand
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:          DefaultTolerance,
		MaxIterations:      DefaultMaxIterations,
		MaxComponents:      0,
		LargePixelCount:    DefaultLargePixelCount,
		LooseTolerance:     DefaultLooseTolerance,
		LooseMaxIterations: DefaultLooseMaxIterations,
		LooseMaxComponents: DefaultLooseMaxComponents,
		Seed:               0,
		Rand:               nil,
	}
}

// effective resolves the tier for a rows×cols matrix: (tolerance,
// iteration cap, component cap). componentCap==0 means "no extra cap".
func (o Options) effective(rows, cols int) (float64, int, int) {
	var (
		tol     = o.Tolerance
		iter    = o.MaxIterations
		compCap = o.MaxComponents
	)
	if o.LargePixelCount > 0 && rows*cols > o.LargePixelCount {
		if o.LooseTolerance > 0 {
			tol = o.LooseTolerance
		}
		if o.LooseMaxIterations > 0 {
			iter = o.LooseMaxIterations
		}
		if o.LooseMaxComponents > 0 && (compCap == 0 || o.LooseMaxComponents < compCap) {
			compCap = o.LooseMaxComponents
		}
	}
	return tol, iter, compCap
}
