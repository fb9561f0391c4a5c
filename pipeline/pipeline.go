// Package pipeline - the per-channel compression driver.

package pipeline

import (
	"fmt"
	"math"
	"sync"

	"github.com/reinshift/imagecompress/matrix"
	"github.com/reinshift/imagecompress/rank"
	"github.com/reinshift/imagecompress/svd"
)

// Result is the outcome of one compression run.
type Result struct {
	// Image is the reconstructed pixel buffer, same dimensions as the
	// input, alpha forced to full opacity.
	Image *Image

	// UsedComponents is the per-channel average of retained components,
	// rounded to the nearest integer. TotalComponents is the per-channel
	// declared rank.
	UsedComponents  int
	TotalComponents int

	// Ratio is the data-based compression ratio
	// (rows×cols)/(used×(rows+cols+1)), rounded to two decimals.
	Ratio float64

	// MSE is the mean squared per-channel difference against the input,
	// alpha ignored.
	MSE float64
}

// checkpointsPerChannel counts the fixed per-channel progress checkpoints:
// decomposition start, eigen solve done, reconstruction done.
const checkpointsPerChannel = 3

// Compress runs the full pipeline on img and returns the reconstructed
// buffer with its statistics. The input image is never mutated.
//
// Channels execute in parallel goroutines with independently derived
// solver seeds and join before recomposition; see the package doc for the
// determinism and progress contracts.
func Compress(img *Image, opts Options) (*Result, error) {
	// Stage 1: Validate.
	if err := img.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(opts.Percent) || opts.Percent < 0 || opts.Percent > 100 {
		return nil, fmt.Errorf("Compress: percent %v: %w", opts.Percent, ErrBadPercent)
	}
	offsets, labels, err := channelsFor(opts.Mode)
	if err != nil {
		return nil, err
	}

	var (
		fraction = opts.Percent / 100
		sink     = newProgressSink(opts.Progress, checkpointsPerChannel*len(offsets))
	)
	opts.Logger.Info().
		Int("width", img.Width).
		Int("height", img.Height).
		Str("mode", opts.Mode.String()).
		Str("policy", opts.Policy.String()).
		Float64("percent", opts.Percent).
		Msg("starting compression")

	// Stage 2: Derive one solver configuration per channel. Seeds are
	// drawn sequentially here because a shared *rand.Rand is not safe to
	// consume from the channel goroutines.
	solvers := make([]svd.Options, len(offsets))
	for ci := range offsets {
		solvers[ci] = deriveSolver(opts.Solver, uint64(ci))
	}

	// Stage 3: Run channels in parallel and join.
	type channelOut struct {
		rec         *matrix.Dense
		used, total int
		err         error
	}
	var (
		outs = make([]channelOut, len(offsets))
		wg   sync.WaitGroup
	)
	for ci := range offsets {
		wg.Add(1)
		go func(ci int) {
			defer wg.Done()
			var o channelOut
			o.rec, o.used, o.total, o.err = compressChannel(img, offsets[ci], labels[ci], fraction, opts, solvers[ci], sink)
			outs[ci] = o
		}(ci)
	}
	wg.Wait()
	for ci := range outs {
		if outs[ci].err != nil {
			return nil, fmt.Errorf("Compress: %s channel: %w", labels[ci], outs[ci].err)
		}
	}

	// Stage 4: Recompose the output buffer.
	out := img.Clone()
	for ci := range offsets {
		if opts.Mode == Grayscale {
			// single plane fans out to R, G and B
			out.setChannel(offsetRed, outs[ci].rec)
			out.setChannel(offsetGreen, outs[ci].rec)
			out.setChannel(offsetBlue, outs[ci].rec)
			continue
		}
		out.setChannel(offsets[ci], outs[ci].rec)
	}
	out.setOpaque()

	// Stage 5: Aggregate statistics.
	var usedSum int
	for ci := range outs {
		usedSum += outs[ci].used
	}
	used := int(math.Round(float64(usedSum) / float64(len(outs))))
	mse, err := MeanSquaredError(img, out)
	if err != nil {
		return nil, fmt.Errorf("Compress: %w", err)
	}

	res := &Result{
		Image:           out,
		UsedComponents:  used,
		TotalComponents: outs[0].total,
		Ratio:           compressionRatio(img.Height, img.Width, used),
		MSE:             mse,
	}
	opts.Logger.Info().
		Int("used", res.UsedComponents).
		Int("total", res.TotalComponents).
		Float64("ratio", res.Ratio).
		Float64("mse", res.MSE).
		Msg("compression complete")
	sink.complete()
	return res, nil
}

// compressChannel runs decomposition and reconstruction for one plane.
func compressChannel(img *Image, offset int, label string, fraction float64, opts Options, solver svd.Options, sink *progressSink) (*matrix.Dense, int, int, error) {
	sink.checkpoint("decomposing " + label + " channel")

	m, err := img.channelMatrix(offset)
	if err != nil {
		return nil, 0, 0, err
	}
	dec, err := svd.Decompose(m, solver)
	if err != nil {
		return nil, 0, 0, err
	}
	sink.checkpoint("singular values solved: " + label + " channel")

	rec, used, err := rank.Reconstruct(dec, opts.Policy, fraction)
	if err != nil {
		return nil, 0, 0, err
	}
	sink.checkpoint("reconstructed " + label + " channel")

	opts.Logger.Debug().
		Str("channel", label).
		Int("used", used).
		Int("total", dec.Rank()).
		Msg("channel reconstructed")
	return rec, used, dec.Rank(), nil
}

// channelsFor resolves the channel plane offsets and labels for a mode.
func channelsFor(mode Mode) ([]int, []string, error) {
	switch mode {
	case Color:
		return []int{offsetRed, offsetGreen, offsetBlue}, []string{"red", "green", "blue"}, nil
	case Grayscale:
		return []int{offsetRed}, []string{"gray"}, nil
	default:
		return nil, nil, fmt.Errorf("Compress: %s: %w", mode, ErrUnknownMode)
	}
}

// deriveSolver gives each channel its own deterministic random stream.
// An explicit Rand is consumed once (sequentially, before the goroutines
// start) to seed the channel; otherwise the configured seed is mixed with
// the channel index.
func deriveSolver(base svd.Options, stream uint64) svd.Options {
	derived := base
	if base.Rand != nil {
		derived.Seed = base.Rand.Int63()
		derived.Rand = nil
		return derived
	}
	seed := base.Seed
	if seed == 0 {
		seed = 1
	}
	derived.Seed = deriveSeed(seed, stream)
	return derived
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, eliminating correlations between
// per-channel streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// progressSink serializes checkpoint reporting and keeps the reported
// percent monotone while channels race.
type progressSink struct {
	mu    sync.Mutex
	fn    Progress
	total int
	done  int
	last  int
}

func newProgressSink(fn Progress, totalCheckpoints int) *progressSink {
	s := &progressSink{fn: fn, total: totalCheckpoints}
	if fn != nil {
		fn(0, "starting decomposition")
	}
	return s
}

// checkpoint advances the counter and reports a percent in [0, 95];
// the final 100 is reserved for complete.
func (s *progressSink) checkpoint(stage string) {
	if s.fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done++
	pct := s.done * 95 / s.total
	if pct < s.last {
		pct = s.last
	}
	s.last = pct
	s.fn(pct, stage)
}

// complete reports the terminal checkpoint.
func (s *progressSink) complete() {
	if s.fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = 100
	s.fn(100, "compression complete")
}

// compressionRatio models rank-k storage (k vectors of length rows, k of
// length cols, k scalars) against the dense original, two decimals.
func compressionRatio(rows, cols, used int) float64 {
	if used <= 0 {
		return 0
	}
	ratio := float64(rows*cols) / (float64(used) * float64(rows+cols+1))
	return math.Round(ratio*100) / 100
}
