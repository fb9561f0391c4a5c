// Command imagecompress applies low-rank compression to a PNG or JPEG
// file and writes the reconstructed image as PNG.
//
// Example usage:
//
//	imagecompress -i photo.png -o out.png -p 25
//	imagecompress -i photo.jpg -o out.png --policy sum -p 90 --verbose
//	imagecompress -i huge.png -o out.png --max-dim 1024 --config solver.yaml
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reinshift/imagecompress/pipeline"
)

var (
	flagInput   string
	flagOutput  string
	flagPercent float64
	flagPolicy  string
	flagGray    bool
	flagMaxDim  int
	flagConfig  string
	flagSeed    int64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imagecompress",
	Short: "SVD-based low-rank image compression",
	Long: `imagecompress decomposes each color channel of an image into its
singular components and reconstructs it from a truncated subset, trading
fidelity for a lower effective rank. Retention is controlled either by
component count ("count") or by singular-value energy ("sum").`,
	RunE:          runCompress,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input image path (PNG or JPEG)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output PNG path")
	rootCmd.Flags().Float64VarP(&flagPercent, "percent", "p", pipeline.DefaultPercent, "retention percent in [0,100]")
	rootCmd.Flags().StringVar(&flagPolicy, "policy", "count", `truncation policy: "count" or "sum"`)
	rootCmd.Flags().BoolVar(&flagGray, "gray", false, "force single-plane grayscale processing")
	rootCmd.Flags().IntVar(&flagMaxDim, "max-dim", 0, "downscale so the longer side fits this many pixels (0 = off)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML solver configuration file")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "solver seed (0 = fixed default)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "debug-level logging")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCompress(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	policy, err := pipeline.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}

	img, gray, err := loadImage(flagInput, flagMaxDim)
	if err != nil {
		return err
	}

	opts := pipeline.DefaultOptions()
	opts.Policy = policy
	opts.Percent = flagPercent
	opts.Logger = logger
	opts.Solver.Seed = flagSeed
	if flagGray || gray {
		opts.Mode = pipeline.Grayscale
	}
	if flagConfig != "" {
		cfg, err := LoadSolverConfig(flagConfig)
		if err != nil {
			return err
		}
		opts.Solver = cfg.Apply(opts.Solver)
	}
	opts.Progress = func(pct int, stage string) {
		logger.Info().Int("percent", pct).Msg(stage)
	}

	start := time.Now()
	res, err := pipeline.Compress(img, opts)
	if err != nil {
		return err
	}

	if err := saveImage(flagOutput, res.Image); err != nil {
		return err
	}
	logger.Info().
		Str("output", flagOutput).
		Int("used", res.UsedComponents).
		Int("total", res.TotalComponents).
		Float64("ratio", res.Ratio).
		Float64("mse", res.MSE).
		Dur("elapsed", time.Since(start)).
		Msg("image written")
	return nil
}

// newLogger builds the console logger shared by the command.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}
