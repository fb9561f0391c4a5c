package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/reinshift/imagecompress/pipeline"
)

// loadImage decodes a PNG or JPEG file into an interleaved RGBA buffer,
// optionally downscaling so the longer side fits maxDim pixels. The second
// result reports whether the decoded image is grayscale (either by its
// color model or because every sampled pixel has equal R, G and B).
func loadImage(path string, maxDim int) (*pipeline.Image, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	rgba := toRGBA(src)
	if maxDim > 0 {
		rgba = downscale(rgba, maxDim)
	}

	bounds := rgba.Bounds()
	img, err := pipeline.NewImage(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, false, err
	}
	copy(img.Pix, rgba.Pix)

	gray := isGrayscale(src, img)
	if gray {
		fmt.Fprintf(os.Stderr, "detected grayscale %s input\n", format)
	}
	return img, gray, nil
}

// saveImage encodes the buffer as PNG.
func saveImage(path string, img *pipeline.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(out.Pix, img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// toRGBA normalizes any decoded image to a tightly packed RGBA buffer.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(out, image.Point{}, src, bounds, draw.Src, nil)
	return out
}

// downscale fits the longer side into maxDim pixels, preserving aspect
// ratio. Images already inside the limit pass through unchanged.
func downscale(src *image.RGBA, maxDim int) *image.RGBA {
	var (
		w = src.Rect.Dx()
		h = src.Rect.Dy()
	)
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxDim {
		return src
	}
	var (
		scale = float64(maxDim) / float64(longer)
		nw    = int(float64(w) * scale)
		nh    = int(float64(h) * scale)
	)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return dst
}

// isGrayscale reports whether the decoded source carries a grayscale color
// model, or failing that, whether every pixel of the working buffer has
// equal R, G and B.
func isGrayscale(src image.Image, img *pipeline.Image) bool {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	for p := 0; p < img.Width*img.Height; p++ {
		r, g, b := img.Pix[4*p], img.Pix[4*p+1], img.Pix[4*p+2]
		if r != g || g != b {
			return false
		}
	}
	return true
}
