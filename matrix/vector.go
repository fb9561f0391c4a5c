// SPDX-License-Identifier: MIT

// Package matrix - vector arithmetic used by the iterative solvers.

package matrix

import (
	"fmt"
	"math"
)

// Norm returns the Euclidean (L2) norm of v. An empty vector has norm 0.
//
// Complexity: O(n).
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product aᵗ·b.
// Returns ErrDimensionMismatch when the lengths differ.
//
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: lengths %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum, nil
}
