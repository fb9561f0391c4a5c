// SPDX-License-Identifier: MIT

// Package svd factors an m×n matrix A into {U, Σ, Vᵗ} using the
// power-iteration eigen solver on AᵗA.
//
// What:
//
//   - Decompose forms AᵗA (symmetric positive-semidefinite), extracts its
//     dominant eigenpairs, maps eigenvalues to singular values via
//     σ = sqrt(max(0, λ)), sorts components by σ descending (ties keep
//     discovery order) and derives the left vectors as u = (A·v)/σ.
//   - The declared rank is capped at min(m, n); Sigma, U columns and Vᵗ
//     rows are padded with zeros when the solver converged on fewer
//     components, so len(Sigma) always equals the declared rank and
//     downstream consumers can index U, Sigma and Vᵗ uniformly.
//
// Why:
//
//   - Pixel matrices are tall, dense and well-conditioned enough that the
//     deflated power method on AᵗA delivers the leading components far
//     cheaper than a full dense SVD — and the compression policies only
//     ever consume leading components.
//
// Degradation, never failure:
//
//   - A component with σ below tolerance, or whose derived left vector
//     collapses, is emitted as a zero vector that keeps index alignment
//     and contributes nothing to any reconstruction.
//   - Matrices above LargePixelCount switch to a looser tolerance, a lower
//     iteration cap and a component cap to bound runtime at the cost of
//     accuracy.
//
// Errors:
//
//   - matrix.ErrDimensionMismatch (wrapped): nil/empty input.
//   - eigen.ErrBadOptions: nonsensical solver configuration.
//
// Ill-conditioned input never errors; it degrades to zero components.
package svd
