package rank_test

import (
	"fmt"

	"github.com/reinshift/imagecompress/matrix"
	"github.com/reinshift/imagecompress/rank"
	"github.com/reinshift/imagecompress/svd"
)

// ExampleReconstruct compresses a flat 4×4 block: half of the declared
// rank reproduces it exactly, because all of the signal lives in the first
// component.
func ExampleReconstruct() {
	a, _ := matrix.FromRows([][]float64{
		{100, 100, 100, 100},
		{100, 100, 100, 100},
		{100, 100, 100, 100},
		{100, 100, 100, 100},
	})
	dec, _ := svd.Decompose(a, svd.DefaultOptions())

	out, used, _ := rank.Reconstruct(dec, rank.ByCount, 0.5)
	corner, _ := out.At(0, 0)
	fmt.Printf("used=%d of %d, corner=%.0f\n", used, dec.Rank(), corner)
	// Output:
	// used=2 of 4, corner=100
}
