// SPDX-License-Identifier: MIT

// Package svd - decomposition via the eigen solver on AᵗA.

package svd

import (
	"fmt"
	"math"
	"sort"

	"github.com/reinshift/imagecompress/eigen"
	"github.com/reinshift/imagecompress/matrix"
)

// SVD holds a rank-ordered factorization A ≈ U·diag(Sigma)·VT.
//
// Invariants:
//   - len(Sigma) == U.Cols() == VT.Rows() == declared rank.
//   - Sigma[i] >= Sigma[i+1] >= 0.
//   - U column i, Sigma[i] and VT row i describe the same component;
//     padded (non-converged or degenerate) components are all-zero.
type SVD struct {
	U     *matrix.Dense // m×r left singular vectors (columns)
	Sigma []float64     // r singular values, descending, non-negative
	VT    *matrix.Dense // r×n right singular vectors (rows)
}

// Rank reports the declared rank (the component count, padding included).
func (s *SVD) Rank() int { return len(s.Sigma) }

// Decompose factors a into {U, Σ, Vᵗ}.
//
// Stage 1 validates input, Stage 2 runs the eigen solver on AᵗA, Stage 3
// orders components by singular value, Stage 4 derives left vectors and
// pads the declared rank with zero components.
//
// Errors: matrix.ErrDimensionMismatch (wrapped) for nil input,
// eigen.ErrBadOptions for nonsensical tuning. Convergence shortfall and
// degenerate components degrade silently (see package doc).
//
// Complexity: O(m·n²) to form AᵗA plus the eigen solver cost.
func Decompose(a *matrix.Dense, opts Options) (*SVD, error) {
	// Stage 1: Validate input.
	if a == nil {
		return nil, fmt.Errorf("svd: Decompose: nil matrix: %w", matrix.ErrDimensionMismatch)
	}
	var (
		m = a.Rows()
		n = a.Cols()
	)

	// Stage 2: Form AᵗA and extract its dominant eigenpairs.
	var (
		tol, maxIter, compCap = opts.effective(m, n)
		rank                  = minInt(m, n)
	)
	if compCap > 0 && compCap < rank {
		rank = compCap
	}

	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("svd: Decompose: %w", err)
	}
	ata, err := matrix.Mul(at, a) // n×n, symmetric PSD
	if err != nil {
		return nil, fmt.Errorf("svd: Decompose: %w", err)
	}
	pairs, err := eigen.Decompose(ata, eigen.Options{
		Tolerance:     tol,
		MaxIterations: maxIter,
		MaxPairs:      rank,
		Seed:          opts.Seed,
		Rand:          opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("svd: Decompose: %w", err)
	}

	// Stage 3: Map eigenvalues to singular values and order descending.
	// max(0, λ) guards against small negative eigenvalues from numerical
	// error; ties keep discovery order (stable sort).
	var (
		found = len(pairs)
		sigma = make([]float64, found)
		order = make([]int, found)
		i     int
	)
	for i = 0; i < found; i++ {
		sigma[i] = math.Sqrt(math.Max(0, pairs[i].Value))
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return sigma[order[x]] > sigma[order[y]]
	})

	// Stage 4: Assemble U, Sigma, VT at the declared rank (zero padding).
	out := &SVD{Sigma: make([]float64, rank)}
	if out.U, err = matrix.NewDense(m, rank); err != nil {
		return nil, fmt.Errorf("svd: Decompose: %w", err)
	}
	if out.VT, err = matrix.NewDense(rank, n); err != nil {
		return nil, fmt.Errorf("svd: Decompose: %w", err)
	}

	var (
		vtData = out.VT.Data()
		uData  = out.U.Data()
		slot   int
		src    int
		sv     float64
	)
	for slot = 0; slot < found && slot < rank; slot++ {
		src = order[slot]
		sv = sigma[src]
		out.Sigma[slot] = sv
		copy(vtData[slot*n:(slot+1)*n], pairs[src].Vector)

		u := leftVector(a, pairs[src].Vector, sv, tol)
		if u == nil {
			continue // degenerate component: U column stays zero
		}
		for i = 0; i < m; i++ {
			uData[i*rank+slot] = u[i]
		}
	}
	return out, nil
}

// leftVector derives u = (A·v)/σ re-normalized to unit length.
// It returns nil — meaning "emit a zero column" — when σ is below tol or
// when the derived vector itself collapses below tol. Such a component
// contributes nothing to any reconstruction and exists only to keep
// index alignment.
func leftVector(a *matrix.Dense, v []float64, sv, tol float64) []float64 {
	if sv <= tol {
		return nil
	}
	u, _ := matrix.MulVec(a, v) // v comes from AᵗA, so lengths always match
	var i int
	for i = range u {
		u[i] /= sv
	}
	norm := matrix.Norm(u)
	if norm < tol {
		return nil
	}
	for i = range u {
		u[i] /= norm
	}
	return u
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
