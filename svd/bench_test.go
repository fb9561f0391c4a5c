// SPDX-License-Identifier: MIT

package svd_test

import (
	"math"
	"testing"

	"github.com/reinshift/imagecompress/matrix"
	"github.com/reinshift/imagecompress/svd"
)

// benchMatrix builds a deterministic dense rows×cols matrix with smooth
// pixel-like structure (values in [0,255]).
func benchMatrix(rows, cols int) *matrix.Dense {
	d, _ := matrix.NewDense(rows, cols)
	data := d.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = 127.5 + 127.5*math.Sin(float64(i*cols+j)/7.0)
		}
	}
	return d
}

func BenchmarkDecompose_32x32(b *testing.B) {
	a := benchMatrix(32, 32)
	opts := svd.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svd.Decompose(a, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompose_64x48(b *testing.B) {
	a := benchMatrix(64, 48)
	opts := svd.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svd.Decompose(a, opts); err != nil {
			b.Fatal(err)
		}
	}
}
