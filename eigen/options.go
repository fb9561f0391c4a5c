// Package eigen - functional configuration for the power-iteration solver.
//
// Defaults are documented constants (single source of truth); DefaultOptions
// returns a ready-to-mutate value. Validation happens once inside Decompose
// so a zero-value Options never silently misbehaves.

package eigen

import (
	"errors"
	"math"
	"math/rand"
)

// ErrBadOptions indicates a nonsensical solver configuration
// (non-positive/non-finite tolerance, non-positive iteration cap,
// or a negative pair budget).
var ErrBadOptions = errors.New("eigen: invalid options")

const (
	// DefaultTolerance is the convergence threshold: iteration stops once
	// two consecutive Rayleigh-quotient estimates differ by less than this,
	// and eigenvalues below it are treated as numerically zero.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps power-method rounds per eigenpair.
	DefaultMaxIterations = 1000

	// defaultRNGSeed is the fixed "zero" seed used when callers pass
	// Seed==0 and no explicit Rand. Arbitrary but stable, to keep default
	// runs reproducible.
	defaultRNGSeed int64 = 1
)

// Options configures Decompose.
//
// Fields:
//   - Tolerance     — convergence threshold (must be finite and > 0).
//   - MaxIterations — iteration cap per eigenpair (must be > 0).
//   - MaxPairs      — maximum number of eigenpairs to extract;
//     0 means "up to n" for an n×n input.
//   - Seed          — seed for the initialization vectors; 0 selects a
//     fixed default seed so results stay reproducible.
//   - Rand          — explicit random source; overrides Seed when non-nil.
//     A *rand.Rand is not goroutine-safe: do not share one
//     across concurrent Decompose calls.
type Options struct {
	Tolerance     float64
	MaxIterations int
	MaxPairs      int
	Seed          int64
	Rand          *rand.Rand
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MaxPairs:      0,
		Seed:          0,
		Rand:          nil,
	}
}

// validate reports ErrBadOptions on nonsensical values.
func (o Options) validate() error {
	if o.Tolerance <= 0 || math.IsInf(o.Tolerance, 0) || math.IsNaN(o.Tolerance) {
		return ErrBadOptions
	}
	if o.MaxIterations <= 0 {
		return ErrBadOptions
	}
	if o.MaxPairs < 0 {
		return ErrBadOptions
	}
	return nil
}

// rng resolves the effective random source: explicit Rand wins, otherwise a
// deterministic source derived from Seed (Seed==0 ⇒ defaultRNGSeed).
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	s := o.Seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
