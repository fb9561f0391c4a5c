// Package eigen computes dominant eigenpairs of real symmetric matrices
// via power iteration with deflation.
//
// What:
//
//   - Decompose repeatedly runs the power method on a private working copy
//     of the input: multiply, normalize, estimate the eigenvalue through the
//     Rayleigh quotient, and stop once consecutive estimates agree within
//     Tolerance.
//   - After each discovered pair (λ, v) the working matrix is deflated by
//     the rank-1 update A ← A − λ·v·vᵗ, so the next round converges to the
//     next-largest-magnitude eigenvalue of the original matrix.
//
// Why:
//
//   - The compression kernel forms AᵗA (symmetric positive-semidefinite)
//     and only ever needs the leading eigenpairs — power iteration with
//     deflation is the cheapest method that delivers them in order.
//
// Guarantees:
//
//   - Pairs are emitted in descending magnitude of eigenvalue (discovery
//     order of the power method). The raw signed value is stored.
//   - Partial results are valid: a round that fails to converge within
//     MaxIterations, or lands on an eigenvalue below Tolerance, terminates
//     the whole decomposition silently. Fewer pairs is not an error.
//   - The caller's matrix is never mutated; deflation happens on a clone.
//   - Randomness is injected (Options.Rand / Options.Seed): identical seeds
//     produce identical results across runs and platforms.
//
// Complexity: O(k·maxIter·n²) time, O(n²) memory for the working clone.
//
// Errors:
//
//   - matrix.ErrDimensionMismatch (wrapped): input is nil or non-square.
//   - ErrBadOptions: nonsensical tolerance or iteration cap.
package eigen
