package pipeline_test

import (
	"fmt"

	"github.com/reinshift/imagecompress/pipeline"
)

// ExampleCompress compresses a flat gray 4×4 image at full retention.
// A flat block is rank 1, so the reconstruction is exact.
func ExampleCompress() {
	img, _ := pipeline.NewImage(4, 4)
	for p := 0; p < 16; p++ {
		img.Pix[4*p+0] = 128
		img.Pix[4*p+1] = 128
		img.Pix[4*p+2] = 128
		img.Pix[4*p+3] = 255
	}

	opts := pipeline.DefaultOptions()
	opts.Mode = pipeline.Grayscale
	opts.Percent = 100

	res, _ := pipeline.Compress(img, opts)
	fmt.Printf("used=%d/%d mse=%.2f ratio=%.2f\n",
		res.UsedComponents, res.TotalComponents, res.MSE, res.Ratio)
	// Output:
	// used=4/4 mse=0.00 ratio=0.44
}
