// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism: fixed loop orders, no map iteration.

package matrix

import "fmt"

// Dense is a concrete row-major matrix.
//   - rows, cols hold dimensions.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: O(rows×cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows, copying every value.
// Returns ErrDimensionMismatch when the input is empty, has an empty first
// row, or is ragged (rows of differing lengths).
//
// Complexity: O(rows×cols).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrDimensionMismatch)
	}

	var (
		r = len(rows)    // row count
		c = len(rows[0]) // column count fixed by the first row
		i int
	)
	d := &Dense{rows: r, cols: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}
	return d, nil
}

// Rows reports the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols reports the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j).
// Returns ErrOutOfRange when the index is outside bounds.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return d.data[i*d.cols+j], nil
}

// Set writes v into the element at (i, j).
// Returns ErrOutOfRange when the index is outside bounds.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	d.data[i*d.cols+j] = v
	return nil
}

// Clone returns a deep copy with independent storage.
//
// Complexity: O(rows×cols).
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)
	return out
}

// Data exposes the flat row-major backing slice. Mutations through the
// returned slice are visible in the matrix; hot loops inside this module
// use it to avoid per-element bounds checks.
func (d *Dense) Data() []float64 { return d.data }

// Row returns the i-th row as a subslice of the backing buffer (no copy).
// Returns ErrOutOfRange when i is outside bounds.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.rows {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	return d.data[i*d.cols : (i+1)*d.cols], nil
}
