package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reinshift/imagecompress/pipeline"
	"github.com/reinshift/imagecompress/rank"
)

// uniformImage builds a w×h buffer where every pixel is (r,g,b,a).
func uniformImage(t *testing.T, w, h int, r, g, b, a uint8) *pipeline.Image {
	t.Helper()
	img, err := pipeline.NewImage(w, h)
	require.NoError(t, err)
	for p := 0; p < w*h; p++ {
		img.Pix[4*p+0] = r
		img.Pix[4*p+1] = g
		img.Pix[4*p+2] = b
		img.Pix[4*p+3] = a
	}
	return img
}

// TestCompress_Validation covers the fatal input errors.
func TestCompress_Validation(t *testing.T) {
	_, err := pipeline.Compress(nil, pipeline.DefaultOptions())
	assert.ErrorIs(t, err, pipeline.ErrNilImage)

	bad := &pipeline.Image{Width: 2, Height: 2, Pix: make([]uint8, 7)}
	_, err = pipeline.Compress(bad, pipeline.DefaultOptions())
	assert.ErrorIs(t, err, pipeline.ErrBadBuffer)

	img := uniformImage(t, 2, 2, 1, 2, 3, 255)
	opts := pipeline.DefaultOptions()
	opts.Percent = 150
	_, err = pipeline.Compress(img, opts)
	assert.ErrorIs(t, err, pipeline.ErrBadPercent)

	opts = pipeline.DefaultOptions()
	opts.Mode = pipeline.Mode(42)
	_, err = pipeline.Compress(img, opts)
	assert.ErrorIs(t, err, pipeline.ErrUnknownMode)
}

// TestParsePolicy maps the external selector strings.
func TestParsePolicy(t *testing.T) {
	p, err := pipeline.ParsePolicy("count")
	require.NoError(t, err)
	assert.Equal(t, rank.ByCount, p)

	p, err = pipeline.ParsePolicy(" SUM ")
	require.NoError(t, err)
	assert.Equal(t, rank.ByEnergy, p)

	_, err = pipeline.ParsePolicy("median")
	assert.ErrorIs(t, err, pipeline.ErrUnknownPolicyName)
}

// TestCompress_GrayscaleUniform: an 8×8 flat gray block is rank 1, so a
// 50% count retention reproduces it exactly — and the statistics follow
// the documented formulas.
func TestCompress_GrayscaleUniform(t *testing.T) {
	img := uniformImage(t, 8, 8, 100, 100, 100, 255)
	opts := pipeline.DefaultOptions()
	opts.Mode = pipeline.Grayscale
	opts.Percent = 50

	res, err := pipeline.Compress(img, opts)
	require.NoError(t, err)

	assert.Equal(t, 8, res.TotalComponents, "declared rank is min(w,h)")
	assert.Equal(t, 4, res.UsedComponents, "ceil(8*0.5) components")
	assert.InDelta(t, 0.94, res.Ratio, 1e-9, "64/(4*17) to two decimals")
	assert.Equal(t, 0.0, res.MSE, "flat block reconstructs exactly")

	for p := 0; p < 64; p++ {
		assert.Equal(t, uint8(100), res.Image.Pix[4*p+0])
		assert.Equal(t, uint8(100), res.Image.Pix[4*p+1])
		assert.Equal(t, uint8(100), res.Image.Pix[4*p+2])
		assert.Equal(t, uint8(255), res.Image.Pix[4*p+3])
	}
}

// TestCompress_ColorFullRetention: uniform color planes reconstruct
// exactly at 100%, with alpha forced opaque regardless of input.
func TestCompress_ColorFullRetention(t *testing.T) {
	img := uniformImage(t, 4, 4, 10, 200, 30, 128)
	opts := pipeline.DefaultOptions()
	opts.Percent = 100

	res, err := pipeline.Compress(img, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.MSE)

	for p := 0; p < 16; p++ {
		assert.Equal(t, uint8(10), res.Image.Pix[4*p+0])
		assert.Equal(t, uint8(200), res.Image.Pix[4*p+1])
		assert.Equal(t, uint8(30), res.Image.Pix[4*p+2])
		assert.Equal(t, uint8(255), res.Image.Pix[4*p+3], "alpha must come out opaque")
	}
}

// TestCompress_CheckerboardRoundTrip: a rank-2 pattern survives full
// retention exactly (within pixel rounding).
func TestCompress_CheckerboardRoundTrip(t *testing.T) {
	img, err := pipeline.NewImage(4, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var v uint8
			if (x+y)%2 == 1 {
				v = 255
			}
			p := 4 * (y*4 + x)
			img.Pix[p+0], img.Pix[p+1], img.Pix[p+2], img.Pix[p+3] = v, v, v, 255
		}
	}

	opts := pipeline.DefaultOptions()
	opts.Mode = pipeline.Grayscale
	opts.Percent = 100

	res, err := pipeline.Compress(img, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.MSE, "full retention must reproduce the checkerboard")
}

// TestCompress_DoesNotMutateInput: the source buffer stays untouched.
func TestCompress_DoesNotMutateInput(t *testing.T) {
	img := uniformImage(t, 4, 4, 10, 20, 30, 77)
	before := append([]uint8(nil), img.Pix...)

	_, err := pipeline.Compress(img, pipeline.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, before, img.Pix)
}

// TestCompress_Deterministic: default (seeded) options reproduce the same
// output bytes run over run, parallel channels included.
func TestCompress_Deterministic(t *testing.T) {
	img, err := pipeline.NewImage(6, 5)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = uint8((i*37 + 11) % 251)
	}

	opts := pipeline.DefaultOptions()
	opts.Percent = 40

	first, err := pipeline.Compress(img, opts)
	require.NoError(t, err)
	second, err := pipeline.Compress(img, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Image.Pix, second.Image.Pix)
	assert.Equal(t, first.MSE, second.MSE)
}

// TestCompress_ProgressCheckpoints: checkpoints are monotone, bounded and
// bracketed by the start and completion labels.
func TestCompress_ProgressCheckpoints(t *testing.T) {
	img := uniformImage(t, 4, 4, 9, 9, 9, 255)

	type event struct {
		pct   int
		stage string
	}
	var events []event
	opts := pipeline.DefaultOptions()
	opts.Progress = func(pct int, stage string) {
		events = append(events, event{pct, stage})
	}

	_, err := pipeline.Compress(img, opts)
	require.NoError(t, err)

	// start + 3 checkpoints per color channel + completion
	require.Len(t, events, 2+3*3)
	assert.Equal(t, event{0, "starting decomposition"}, events[0])
	assert.Equal(t, event{100, "compression complete"}, events[len(events)-1])
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i].pct, events[i-1].pct, "percent must never decrease")
		assert.LessOrEqual(t, events[i].pct, 100)
		assert.NotEmpty(t, events[i].stage)
	}
}

// TestMeanSquaredError covers the identity and mismatch cases.
func TestMeanSquaredError(t *testing.T) {
	a := uniformImage(t, 3, 2, 10, 20, 30, 255)

	mse, err := pipeline.MeanSquaredError(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mse, "an image against itself is exactly zero")

	b := uniformImage(t, 3, 2, 10, 20, 33, 0)
	mse, err = pipeline.MeanSquaredError(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mse, 1e-12, "only blue differs by 3: mean of 9 over 3 channels")

	c := uniformImage(t, 2, 3, 10, 20, 30, 255)
	_, err = pipeline.MeanSquaredError(a, c)
	assert.ErrorIs(t, err, pipeline.ErrBadBuffer)
}
