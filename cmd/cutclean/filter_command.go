package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cutclean/internal/lineio"
	"cutclean/internal/manifest"
	"cutclean/internal/pipeline"
	"cutclean/internal/rewrite"
	"cutclean/internal/stats"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		minSeconds float64
		nFFT       int
		targetSR   int
		padMode    string
		checkSups  bool
		keepEmpty  bool
	)

	cmd := &cobra.Command{
		Use:   "filter <manifest>",
		Short: "Drop cuts shorter than a minimum duration",
		Long: "Filter drops cuts whose duration falls below a threshold. When --min-seconds is " +
			"omitted the threshold is derived from STFT geometry: reflect and replicate padding " +
			"need (n_fft/2 + 1) samples, so the minimum is (n_fft/2 + 1) / target_sr seconds; " +
			"constant padding accepts any length.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fft := cfg.Filter.NFFT
			rate := cfg.Filter.TargetSamplingRate
			pad := cfg.Filter.PadMode
			if cmd.Flags().Changed("n-fft") {
				fft = nFFT
			}
			if cmd.Flags().Changed("target-sr") {
				rate = targetSR
			}
			if cmd.Flags().Changed("pad-mode") {
				pad = padMode
			}

			var explicit *float64
			if cmd.Flags().Changed("min-seconds") {
				explicit = &minSeconds
			}
			min := pipeline.DeriveMinSeconds(explicit, fft, rate, pad)

			criteria := manifest.Criteria{
				MinDuration:            &min,
				RequireAllSupervisions: checkSups || cfg.Filter.RequireAllSupervision,
			}
			opts := pipeline.ManifestOptions{Criteria: criteria}
			agg := stats.NewAggregator()
			inputPath := args[0]

			started := time.Now()
			outcome, err := rewrite.Rewrite(rewrite.Options{
				InputPath:       inputPath,
				OutputPath:      outputPath,
				KeepEmptyOutput: keepEmpty || cfg.Filter.KeepEmptyOutput,
				Logger:          ctx.log(),
			}, func(src *lineio.Source, dst *lineio.Writer) (int, error) {
				return pipeline.ProcessManifest(src, dst, opts, agg)
			})
			command := "filter"
			if outputPath == "" {
				command = "filter --inplace"
			}
			ctx.recordRun(newRun(command, inputPath, started, agg, outcome, err))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "min duration: %.6f s\n", min)
			fmt.Fprintf(out, "total=%d kept=%d dropped=%d\n", agg.Total, agg.Kept, agg.Dropped())
			fmt.Fprintf(out, "wrote %s\n", outcome.Destination)
			if outcome.BackupPath != "" {
				fmt.Fprintf(out, "backup at %s\n", outcome.BackupPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default: rewrite in place)")
	cmd.Flags().Float64Var(&minSeconds, "min-seconds", 0, "Minimum duration in seconds (overrides the STFT derivation)")
	cmd.Flags().IntVar(&nFFT, "n-fft", 0, "STFT window size used to derive the minimum duration")
	cmd.Flags().IntVar(&targetSR, "target-sr", 0, "Sampling rate used to derive the minimum duration")
	cmd.Flags().StringVar(&padMode, "pad-mode", "", "STFT pad mode: reflect, replicate, or constant")
	cmd.Flags().BoolVar(&checkSups, "check-supervisions", false, "Apply the duration rule to every supervision")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Commit the rewrite even when zero records survive")
	return cmd
}
