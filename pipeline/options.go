// Package pipeline - run configuration.
// Defaults mirror the rest of the module: documented constants plus a
// DefaultOptions constructor; validation happens once inside Compress.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/reinshift/imagecompress/rank"
	"github.com/reinshift/imagecompress/svd"
)

// Mode selects the channel set extracted from the pixel buffer.
type Mode int

const (
	// Color processes the three R, G, B planes independently.
	Color Mode = iota

	// Grayscale processes a single plane (the red plane of an image whose
	// channels are known equal) and writes it back to R, G and B.
	Grayscale
)

// String implements fmt.Stringer for log and error output.
func (m Mode) String() string {
	switch m {
	case Color:
		return "color"
	case Grayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Progress receives checkpoint notifications: an integer percent in
// [0,100] and a human-readable stage label. Purely observational — the
// pipeline never blocks on or branches over it. Called from channel
// goroutines under a lock, so implementations need no extra locking.
type Progress func(percent int, stage string)

// DefaultPercent is the retention percent used when callers take
// DefaultOptions unchanged.
const DefaultPercent = 50.0

// Options configures Compress.
//
// Fields:
//   - Policy   — rank.ByCount or rank.ByEnergy.
//   - Percent  — retention percent in [0, 100]; divided by 100 before it
//     reaches the truncation policy.
//   - Mode     — Color or Grayscale channel set.
//   - Solver   — SVD tuning, forwarded per channel with an independently
//     derived seed (see doc.go on determinism).
//   - Progress — optional checkpoint callback; nil disables reporting.
//   - Logger   — structured logger; defaults to a no-op logger.
type Options struct {
	Policy   rank.Policy
	Percent  float64
	Mode     Mode
	Solver   svd.Options
	Progress Progress
	Logger   zerolog.Logger
}

// DefaultOptions returns the documented defaults: ByCount at 50% on a
// color image, default solver tuning, no progress, no logging.
func DefaultOptions() Options {
	return Options{
		Policy:   rank.ByCount,
		Percent:  DefaultPercent,
		Mode:     Color,
		Solver:   svd.DefaultOptions(),
		Progress: nil,
		Logger:   zerolog.Nop(),
	}
}

// ParsePolicy maps the external policy selector onto rank policies:
// "count" picks rank.ByCount, "sum" picks rank.ByEnergy.
// Returns ErrUnknownPolicyName for anything else.
func ParsePolicy(name string) (rank.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "count":
		return rank.ByCount, nil
	case "sum":
		return rank.ByEnergy, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicyName)
	}
}
