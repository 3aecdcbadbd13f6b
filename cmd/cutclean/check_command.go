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
	"cutclean/internal/textnorm"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var (
		fix             bool
		minDuration     float64
		targetRate      int
		targetChannel   string
		keepEmptyText   bool
		requireAllSups  bool
		keepEmptyOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Report sampling-rate/channel histograms and text-cleanup stats",
		Long: "Check streams a cut manifest, counting sampling rates, channel layouts, and the " +
			"Unicode cleanup each supervision text would receive. With --fix the manifest is " +
			"rewritten in place: texts are normalized, failing records dropped, and the original " +
			"kept as a timestamped backup.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			criteria := manifest.Criteria{
				RequireAllSupervisions: cfg.Filter.RequireAllSupervision,
				DropEmptyText:          !cfg.Filter.KeepEmptyText,
			}
			min := cfg.Filter.MinDuration
			rate := cfg.Filter.TargetSamplingRate
			channel := cfg.Filter.TargetChannel
			if cmd.Flags().Changed("min-duration") {
				min = minDuration
			}
			if cmd.Flags().Changed("target-sampling-rate") {
				rate = targetRate
			}
			if cmd.Flags().Changed("target-channel") {
				if channel, err = parseChannelList(targetChannel); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("keep-empty-text") {
				criteria.DropEmptyText = !keepEmptyText
			}
			if cmd.Flags().Changed("require-all-supervisions") {
				criteria.RequireAllSupervisions = requireAllSups
			}
			criteria.MinDuration = &min
			criteria.TargetSamplingRate = &rate
			criteria.TargetChannel = channel

			opts := pipeline.ManifestOptions{
				Criteria:   criteria,
				Normalizer: textnorm.Default(),
			}
			agg := stats.NewAggregator()
			inputPath := args[0]

			if !fix {
				src, err := lineio.Open(inputPath, lineio.IsGzipPath(inputPath))
				if err != nil {
					return fmt.Errorf("open manifest: %w", err)
				}
				defer src.Close()
				if _, err := pipeline.ProcessManifest(src, nil, opts, agg); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				agg.Render(out, isTerminal(out))
				return nil
			}

			keepEmpty := cfg.Filter.KeepEmptyOutput
			if cmd.Flags().Changed("keep-empty-output") {
				keepEmpty = keepEmptyOutput
			}

			started := time.Now()
			outcome, err := rewrite.Rewrite(rewrite.Options{
				InputPath:       inputPath,
				KeepEmptyOutput: keepEmpty,
				Logger:          ctx.log(),
			}, func(src *lineio.Source, dst *lineio.Writer) (int, error) {
				return pipeline.ProcessManifest(src, dst, opts, agg)
			})
			ctx.recordRun(newRun("check --fix", inputPath, started, agg, outcome, err))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			agg.Render(out, isTerminal(out))
			fmt.Fprintf(out, "\nRewrote %s (backup at %s)\n", outcome.Destination, outcome.BackupPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Rewrite the manifest in place instead of only reporting")
	cmd.Flags().Float64Var(&minDuration, "min-duration", 0, "Minimum cut duration in seconds")
	cmd.Flags().IntVar(&targetRate, "target-sampling-rate", 0, "Required recording sampling rate")
	cmd.Flags().StringVar(&targetChannel, "target-channel", "", "Required channel list as JSON, e.g. [0]")
	cmd.Flags().BoolVar(&keepEmptyText, "keep-empty-text", false, "Keep cuts whose texts are all empty after cleanup")
	cmd.Flags().BoolVar(&requireAllSups, "require-all-supervisions", false, "Apply the duration rule to every supervision")
	cmd.Flags().BoolVar(&keepEmptyOutput, "keep-empty-output", false, "Commit the rewrite even when zero records survive")
	return cmd
}
