// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives the
// compression kernel is built on: a row-major Matrix type plus
// transpose, matrix×matrix and matrix×vector products.
//
// What:
//
//   - Dense wraps a rows×cols grid as a flat row-major []float64
//     (offset = i*cols + j), with safe At/Set accessors.
//   - Transpose, Mul and MulVec are pure functions: they never mutate
//     their operands and never alias input storage in their results.
//   - Norm and Dot cover the vector arithmetic the eigen solver needs.
//
// Why:
//
//   - These are the only primitives the eigen solver and the SVD engine
//     may use; keeping them small and allocation-predictable keeps the
//     numeric behavior of the whole kernel easy to reason about.
//
// Complexity:
//
//   - Transpose: O(r×c). Mul: O(r×c×inner). MulVec: O(r×c).
//   - At/Set: O(1). Clone: O(r×c).
//
// Errors:
//
//   - ErrBadShape: requested dimensions are non-positive.
//   - ErrDimensionMismatch: incompatible operand shapes (Mul, MulVec, Dot)
//     or empty/ragged input to FromRows.
//   - ErrOutOfRange: an At/Set index is outside the matrix bounds.
//   - ErrNilMatrix: a nil *Dense was passed where a matrix is required.
//
// All sentinels are matched with errors.Is; callers wrap them with
// fmt.Errorf("ctx: %w") when extra context is essential.
package matrix
