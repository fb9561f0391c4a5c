// Package eigen - power iteration with deflation.
//
// Contract (see doc.go): emit eigenpairs of a symmetric matrix in
// descending-magnitude order; stop the whole decomposition on the first
// round that cannot converge. Partial output is valid.

package eigen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/reinshift/imagecompress/matrix"
)

// Pair is one eigenpair: the raw signed eigenvalue and its unit eigenvector.
type Pair struct {
	Value  float64
	Vector []float64
}

// Decompose extracts up to k dominant eigenpairs of the symmetric matrix a,
// where k = min(opts.MaxPairs, n) (MaxPairs==0 means n).
//
// Per eigenpair: initialize a random vector with entries in [-0.5, 0.5],
// normalize, then iterate v ← A·v/‖A·v‖ with the Rayleigh quotient vᵗ·A·v
// as the eigenvalue estimate, up to opts.MaxIterations rounds. A discovered
// pair deflates the working copy (A ← A − λ·v·vᵗ) before the next round.
//
// Termination of the whole decomposition (returning what was found so far):
//   - the initialization or iterated vector collapses below Tolerance,
//   - a round exhausts MaxIterations without converging,
//   - the converged eigenvalue magnitude is below Tolerance.
//
// Errors: matrix.ErrDimensionMismatch (wrapped) for nil or non-square a;
// ErrBadOptions for nonsensical opts. Convergence shortfall never errors.
//
// Complexity: O(k·MaxIterations·n²) time, O(n²) memory.
func Decompose(a *matrix.Dense, opts Options) ([]Pair, error) {
	// Stage 1: Validate input.
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("Decompose: nil matrix: %w", matrix.ErrDimensionMismatch)
	}
	var n = a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("Decompose: non-square %dx%d: %w", n, a.Cols(), matrix.ErrDimensionMismatch)
	}

	// Stage 2: Prepare working state.
	var (
		work  = a.Clone() // deflation mutates this copy, never the caller's data
		rng   = opts.rng()
		k     = n
		pairs []Pair
	)
	if opts.MaxPairs > 0 && opts.MaxPairs < n {
		k = opts.MaxPairs
	}
	pairs = make([]Pair, 0, k)

	// Stage 3: Extract pairs, deflating after each discovery.
	var (
		i      int
		v      []float64
		lambda float64
		ok     bool
	)
	for i = 0; i < k; i++ {
		v = randomUnitVector(n, rng, opts.Tolerance)
		if v == nil {
			break // degenerate start; nothing further discoverable
		}
		lambda, v, ok = powerIterate(work, v, opts)
		if !ok || math.Abs(lambda) < opts.Tolerance {
			break // shortfall or numerically-zero eigenvalue: stop all slots
		}
		pairs = append(pairs, Pair{Value: lambda, Vector: v})
		deflate(work, lambda, v)
	}
	return pairs, nil
}

// powerIterate runs one power-method round on work starting from unit
// vector v. It returns the converged Rayleigh estimate, the final vector
// and ok=true only when the estimate settled within opts.Tolerance before
// opts.MaxIterations rounds. ok=false also covers the iterate collapsing
// to (near) zero, which means no further eigenpair is discoverable.
func powerIterate(work *matrix.Dense, v []float64, opts Options) (float64, []float64, bool) {
	var (
		lambda, prev float64
		norm         float64
		av           []float64
		iter, j      int
	)
	for iter = 0; iter < opts.MaxIterations; iter++ {
		av, _ = matrix.MulVec(work, v) // length always matches: work is square
		norm = matrix.Norm(av)
		if norm < opts.Tolerance {
			return 0, v, false // image collapsed; matrix is (numerically) zero here
		}
		for j = range av {
			av[j] /= norm
		}
		v = av

		// Rayleigh quotient λ = vᵗ·A·v for the fresh unit iterate.
		av, _ = matrix.MulVec(work, v)
		lambda, _ = matrix.Dot(v, av)
		if math.Abs(lambda-prev) < opts.Tolerance {
			return lambda, v, true
		}
		prev = lambda
	}
	return lambda, v, false
}

// deflate applies the rank-1 update work ← work − λ·v·vᵗ in place.
func deflate(work *matrix.Dense, lambda float64, v []float64) {
	var (
		data = work.Data()
		n    = work.Cols()
		i, j int
		li   float64
	)
	for i = 0; i < n; i++ {
		li = lambda * v[i]
		for j = 0; j < n; j++ {
			data[i*n+j] -= li * v[j]
		}
	}
}

// randomUnitVector draws entries uniformly from [-0.5, 0.5] and normalizes.
// Returns nil when the draw is numerically degenerate (norm below tol);
// per contract that ends the whole decomposition.
func randomUnitVector(n int, rng *rand.Rand, tol float64) []float64 {
	var (
		v    = make([]float64, n)
		norm float64
		i    int
	)
	for i = 0; i < n; i++ {
		v[i] = rng.Float64() - 0.5
	}
	norm = matrix.Norm(v)
	if norm < tol {
		return nil
	}
	for i = 0; i < n; i++ {
		v[i] /= norm
	}
	return v
}
