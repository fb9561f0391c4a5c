// Package pipeline - the interleaved RGBA pixel buffer and its
// channel-matrix views.

package pipeline

import (
	"fmt"

	"github.com/reinshift/imagecompress/matrix"
)

// Channel byte offsets inside one interleaved RGBA pixel.
const (
	offsetRed = iota
	offsetGreen
	offsetBlue
	offsetAlpha
	pixelStride // 4 bytes per pixel
)

// Image is an interleaved 8-bit-per-channel RGBA pixel buffer.
// Pix holds exactly 4×Width×Height bytes in row-major pixel order.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// NewImage allocates a zeroed (transparent black) width×height buffer.
// Returns ErrBadBounds for non-positive dimensions.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewImage(%d,%d): %w", width, height, ErrBadBounds)
	}
	return &Image{Width: width, Height: height, Pix: make([]uint8, pixelStride*width*height)}, nil
}

// Clone returns a deep copy with independent pixel storage.
func (im *Image) Clone() *Image {
	out := &Image{Width: im.Width, Height: im.Height, Pix: make([]uint8, len(im.Pix))}
	copy(out.Pix, im.Pix)
	return out
}

// validate checks the buffer invariants shared by every entry point.
func (im *Image) validate() error {
	if im == nil {
		return ErrNilImage
	}
	if im.Width <= 0 || im.Height <= 0 {
		return fmt.Errorf("image %dx%d: %w", im.Width, im.Height, ErrBadBounds)
	}
	if len(im.Pix) != pixelStride*im.Width*im.Height {
		return fmt.Errorf("image %dx%d with %d bytes: %w", im.Width, im.Height, len(im.Pix), ErrBadBuffer)
	}
	return nil
}

// channelMatrix copies one channel plane into a Height×Width matrix.
// The copy keeps solver mutations away from the caller's pixels.
func (im *Image) channelMatrix(offset int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(im.Height, im.Width)
	if err != nil {
		return nil, err
	}
	var (
		data = m.Data()
		n    = im.Width * im.Height
		p    int
	)
	for p = 0; p < n; p++ {
		data[p] = float64(im.Pix[p*pixelStride+offset])
	}
	return m, nil
}

// setChannel writes a reconstructed Height×Width matrix back into one
// channel plane. Values are already integral and clamped to [0,255].
func (im *Image) setChannel(offset int, m *matrix.Dense) {
	var (
		data = m.Data()
		n    = im.Width * im.Height
		p    int
	)
	for p = 0; p < n; p++ {
		im.Pix[p*pixelStride+offset] = uint8(data[p])
	}
}

// setOpaque forces the alpha plane to full opacity; alpha is passed
// through the compression untouched otherwise.
func (im *Image) setOpaque() {
	for p := offsetAlpha; p < len(im.Pix); p += pixelStride {
		im.Pix[p] = 0xFF
	}
}
