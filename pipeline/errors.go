// Package pipeline: sentinel error set, matched via errors.Is.

package pipeline

import "errors"

var (
	// ErrNilImage indicates a nil *Image argument.
	ErrNilImage = errors.New("pipeline: nil image")

	// ErrBadBounds indicates non-positive image dimensions.
	ErrBadBounds = errors.New("pipeline: non-positive image dimensions")

	// ErrBadBuffer indicates a pixel buffer whose length does not match
	// 4×width×height, or a dimension mismatch between two images.
	ErrBadBuffer = errors.New("pipeline: pixel buffer does not match dimensions")

	// ErrBadPercent indicates a retention percent outside [0, 100].
	ErrBadPercent = errors.New("pipeline: percent outside [0,100]")

	// ErrUnknownMode indicates a Mode value outside the declared set.
	ErrUnknownMode = errors.New("pipeline: unknown channel mode")

	// ErrUnknownPolicyName indicates a policy selector string that is
	// neither "count" nor "sum".
	ErrUnknownPolicyName = errors.New("pipeline: unknown policy name")
)
