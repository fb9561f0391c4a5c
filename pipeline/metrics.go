// Package pipeline - reconstruction error metric.

package pipeline

import "fmt"

// MeanSquaredError returns the mean of squared per-channel differences
// between two same-size images over the R, G and B planes; alpha is
// ignored. Identical buffers score exactly 0.
//
// Returns ErrNilImage/ErrBadBounds/ErrBadBuffer for malformed input and
// ErrBadBuffer when the dimensions differ.
//
// Complexity: O(width×height).
func MeanSquaredError(a, b *Image) (float64, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}
	if err := b.validate(); err != nil {
		return 0, err
	}
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("MeanSquaredError: %dx%d vs %dx%d: %w",
			a.Width, a.Height, b.Width, b.Height, ErrBadBuffer)
	}

	var (
		n    = a.Width * a.Height
		sum  float64
		d    float64
		p, c int
	)
	for p = 0; p < n; p++ {
		for c = offsetRed; c <= offsetBlue; c++ {
			d = float64(a.Pix[p*pixelStride+c]) - float64(b.Pix[p*pixelStride+c])
			sum += d * d
		}
	}
	return sum / float64(3*n), nil
}
