// SPDX-License-Identifier: MIT

// Package matrix - pure product/transpose primitives.
// These three functions are the only matrix operations the eigen solver
// and the SVD engine build on. All of them allocate fresh result storage;
// operands are never mutated and never aliased into results.

package matrix

import "fmt"

// Transpose returns Aᵗ.
// Returns ErrNilMatrix when a is nil.
//
// Complexity: O(rows×cols) time and memory.
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}

	var (
		out  = &Dense{rows: a.cols, cols: a.rows, data: make([]float64, len(a.data))}
		i, j int
	)
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = a.data[i*a.cols+j]
		}
	}
	return out, nil
}

// Mul returns the product A·B.
// Returns ErrNilMatrix when either operand is nil and ErrDimensionMismatch
// when a.Cols != b.Rows.
//
// Complexity: O(a.rows × b.cols × a.cols) time, O(a.rows × b.cols) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	var (
		out     = &Dense{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
		i, j, k int
		aik     float64
	)
	// i-k-j order: walks both a and b row-major, which keeps the inner
	// loop sequential in memory.
	for i = 0; i < a.rows; i++ {
		for k = 0; k < a.cols; k++ {
			aik = a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}

// MulVec returns the product A·v as a fresh vector.
// Returns ErrNilMatrix when a is nil and ErrDimensionMismatch when
// a.Cols != len(v).
//
// Complexity: O(rows×cols) time, O(rows) memory.
func MulVec(a *Dense, v []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if a.cols != len(v) {
		return nil, fmt.Errorf("MulVec: %dx%d by vector of length %d: %w",
			a.rows, a.cols, len(v), ErrDimensionMismatch)
	}

	var (
		out  = make([]float64, a.rows)
		i, j int
		sum  float64
	)
	for i = 0; i < a.rows; i++ {
		sum = 0
		for j = 0; j < a.cols; j++ {
			sum += a.data[i*a.cols+j] * v[j]
		}
		out[i] = sum
	}
	return out, nil
}
