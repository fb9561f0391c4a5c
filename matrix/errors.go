// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Algorithms return these sentinels and tests match
// them via errors.Is. No function panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows <= 0 or cols <= 0). Construction is validated before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (Mul where a.Cols != b.Rows, MulVec where a.Cols != len(v),
	// Dot on different lengths) or empty/ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
