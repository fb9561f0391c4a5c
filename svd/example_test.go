// SPDX-License-Identifier: MIT

package svd_test

import (
	"fmt"

	"github.com/reinshift/imagecompress/matrix"
	"github.com/reinshift/imagecompress/svd"
)

// ExampleDecompose factors a flat (rank-1) 2×2 block: a single component
// carries all of the signal and the padded slot stays at zero.
func ExampleDecompose() {
	a, _ := matrix.FromRows([][]float64{
		{100, 100},
		{100, 100},
	})

	dec, _ := svd.Decompose(a, svd.DefaultOptions())
	fmt.Printf("rank=%d sigma=[%.0f %.0f]\n", dec.Rank(), dec.Sigma[0], dec.Sigma[1])
	// Output:
	// rank=2 sigma=[200 0]
}
