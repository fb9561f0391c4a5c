// Package rank - truncation policies and pixel-clamped reconstruction.

package rank

import (
	"errors"
	"fmt"
	"math"

	"github.com/reinshift/imagecompress/matrix"
	"github.com/reinshift/imagecompress/svd"
)

// Policy selects how many singular components a reconstruction retains.
type Policy int

const (
	// ByCount retains a fixed share of the declared rank:
	// max(1, ceil(rank·fraction)) components.
	ByCount Policy = iota

	// ByEnergy retains the smallest descending prefix of singular values
	// whose sum exceeds fraction of the total sum.
	ByEnergy
)

// String implements fmt.Stringer for log and error output.
func (p Policy) String() string {
	switch p {
	case ByCount:
		return "count"
	case ByEnergy:
		return "energy"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

var (
	// ErrNilDecomposition indicates a nil or incomplete decomposition.
	ErrNilDecomposition = errors.New("rank: nil decomposition")

	// ErrUnknownPolicy indicates a Policy outside the declared set.
	ErrUnknownPolicy = errors.New("rank: unknown policy")
)

// Pixel value bounds for the clamped output range.
const (
	pixelMin = 0.0
	pixelMax = 255.0
)

// Reconstruct rebuilds an m×n matrix from the leading components of dec
// selected by policy and fraction (clamped into [0,1]), and reports the
// number of components used.
//
// Every output entry is an integer-valued float64 in [0, 255]; clamping
// guarantees arithmetic overshoot can never escape as an invalid pixel.
//
// Complexity: O(used·m·n).
func Reconstruct(dec *svd.SVD, policy Policy, fraction float64) (*matrix.Dense, int, error) {
	// Stage 1: Validate.
	if dec == nil || dec.U == nil || dec.VT == nil || len(dec.Sigma) == 0 {
		return nil, 0, ErrNilDecomposition
	}
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	// Stage 2: Resolve the retained component count.
	var used int
	switch policy {
	case ByCount:
		used = retainByCount(len(dec.Sigma), fraction)
	case ByEnergy:
		used = retainByEnergy(dec.Sigma, fraction)
	default:
		return nil, 0, fmt.Errorf("Reconstruct: %s: %w", policy, ErrUnknownPolicy)
	}

	// Stage 3: Sum σ_k·outer(U[:,k], VT[k,:]) over the retained prefix.
	var (
		m       = dec.U.Rows()
		n       = dec.VT.Cols()
		r       = len(dec.Sigma)
		uData   = dec.U.Data()
		vtData  = dec.VT.Data()
		k, i, j int
		su      float64
	)
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, 0, fmt.Errorf("Reconstruct: %w", err)
	}
	outData := out.Data()
	for k = 0; k < used; k++ {
		if dec.Sigma[k] == 0 {
			continue // padded or degenerate component: contributes nothing
		}
		for i = 0; i < m; i++ {
			su = dec.Sigma[k] * uData[i*r+k]
			if su == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				outData[i*n+j] += su * vtData[k*n+j]
			}
		}
	}

	// Stage 4: Clamp to the pixel range and round (ties away from zero).
	for i = range outData {
		outData[i] = clampPixel(outData[i])
	}
	return out, used, nil
}

// retainByCount applies the fixed-share rule: max(1, ceil(rank·fraction)).
func retainByCount(rank int, fraction float64) int {
	retain := int(math.Ceil(float64(rank) * fraction))
	if retain < 1 {
		retain = 1
	}
	if retain > rank {
		retain = rank
	}
	return retain
}

// retainByEnergy walks singular values in descending order and stops after
// the component whose inclusion pushes the running sum past
// fraction·total. A zero total degenerates to a single component.
func retainByEnergy(sigma []float64, fraction float64) int {
	var total float64
	for _, sv := range sigma {
		total += sv
	}
	if total <= 0 {
		return 1
	}

	var (
		threshold = fraction * total
		running   float64
	)
	for i, sv := range sigma {
		running += sv
		if running > threshold {
			return i + 1
		}
	}
	return len(sigma)
}

// clampPixel rounds to the nearest integer (half away from zero) and
// clamps into [0, 255].
func clampPixel(v float64) float64 {
	v = math.Round(v)
	if v < pixelMin {
		return pixelMin
	}
	if v > pixelMax {
		return pixelMax
	}
	return v
}
