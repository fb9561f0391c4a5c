// Package rank rebuilds a pixel-range matrix from a truncated singular
// value decomposition.
//
// What:
//
//   - ByCount retains max(1, ceil(rank·fraction)) leading components —
//     the plain truncated-SVD reconstruction.
//   - ByEnergy accumulates singular values in descending order and stops
//     once the running sum exceeds fraction·total; the component that
//     crosses the threshold is included (the stopping test runs *after*
//     inclusion).
//   - Both sum σ_k·outer(U[:,k], Vᵗ[k,:]) over the retained components,
//     then clamp every entry to [0, 255] and round to the nearest integer
//     (ties away from zero), so output is always a valid pixel matrix.
//
// Edge rules:
//
//   - fraction <= 0 still retains one component — never an empty
//     reconstruction. fraction >= 1 retains all available components.
//   - A decomposition whose singular values are all zero reconstructs to
//     the zero matrix with one (vacuous) component retained.
//   - Padded zero components contribute nothing; ByCount counts them
//     against the declared rank by contract.
//
// Errors:
//
//   - ErrNilDecomposition: nil or incomplete *svd.SVD.
//   - ErrUnknownPolicy: a Policy value outside the declared set.
//
// Complexity: O(used·m·n) time, O(m·n) memory.
package rank
