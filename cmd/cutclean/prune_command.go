package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cutclean/internal/lineio"
	"cutclean/internal/pipeline"
	"cutclean/internal/rewrite"
	"cutclean/internal/tsvutil"
)

func newPruneRowsCommand(ctx *commandContext) *cobra.Command {
	var (
		pathCol   int
		inplace   bool
		verbose   bool
		keepEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "prune-rows <tsv>...",
		Short: "Drop rows whose audio file is missing or empty",
		Long: "Prune-rows stats each row's audio path and drops rows whose file does not exist " +
			"or is zero bytes. Rows too short to hold the path column are dropped as well. " +
			"Output goes to stdout unless --inplace is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			col := cfg.Paths.PathColumn
			if cmd.Flags().Changed("path-col") {
				col = pathCol
			}

			keep := keepEmpty || cfg.Filter.KeepEmptyOutput

			errOut := cmd.ErrOrStderr()
			failures := 0
			for _, inputPath := range args {
				if err := pruneOneTable(ctx, cmd, inputPath, col, inplace, verbose, keep); err != nil {
					failures++
					fmt.Fprintf(errOut, "%s: %v\n", inputPath, err)
				}
			}
			if failures > 0 {
				return fmt.Errorf("prune-rows: %d of %d files failed", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pathCol, "path-col", 0, "Zero-based column index holding the audio path")
	cmd.Flags().BoolVar(&inplace, "inplace", false, "Rewrite each file in place instead of printing to stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every dropped row")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Commit the rewrite even when every row was dropped")
	return cmd
}

func pruneOneTable(ctx *commandContext, cmd *cobra.Command, inputPath string, col int, inplace, verbose, keepEmpty bool) error {
	logger := ctx.log()
	rowFn := func(lineNum int, row tsvutil.Row) (tsvutil.Row, pipeline.RowDecision) {
		raw, ok := row.Field(col)
		if !ok {
			return row, pipeline.RowSkip
		}
		raw = strings.TrimSpace(raw)
		info, err := os.Stat(raw)
		if err != nil || info.Size() == 0 {
			if verbose {
				logger.Info("dropping row", "file", inputPath, "line", lineNum, "path", raw)
			}
			return row, pipeline.RowDrop
		}
		return row, pipeline.RowKeep
	}
	opts := pipeline.TableOptions{}
	errOut := cmd.ErrOrStderr()

	if !inplace {
		src, err := lineio.Open(inputPath, lineio.IsGzipPath(inputPath))
		if err != nil {
			return fmt.Errorf("open table: %w", err)
		}
		defer src.Close()

		dst := lineio.NewWriter(cmd.OutOrStdout(), false)
		counts, err := pipeline.ProcessTable(src, dst, opts, rowFn)
		if err != nil {
			return err
		}
		if err := dst.Close(); err != nil {
			return err
		}
		fmt.Fprintf(errOut, "%s: kept=%d dropped=%d skipped=%d decode_errors=%d\n",
			inputPath, counts.Kept, counts.Dropped, counts.Skipped, counts.DecodeErrors)
		return nil
	}

	var counts pipeline.TableCounts
	started := time.Now()
	outcome, err := rewrite.Rewrite(rewrite.Options{
		InputPath:       inputPath,
		KeepEmptyOutput: keepEmpty,
		Logger:          logger,
	}, func(src *lineio.Source, dst *lineio.Writer) (int, error) {
		var err error
		counts, err = pipeline.ProcessTable(src, dst, opts, rowFn)
		return counts.Kept, err
	})
	run := newRun("prune-rows", inputPath, started, nil, outcome, err)
	run.Total = counts.Kept + counts.Dropped + counts.Skipped
	run.Dropped = counts.Dropped + counts.Skipped
	run.DecodeErrors = counts.DecodeErrors
	ctx.recordRun(run)
	if err != nil {
		return err
	}
	fmt.Fprintf(errOut, "%s: kept=%d dropped=%d skipped=%d decode_errors=%d (backup at %s)\n",
		inputPath, counts.Kept, counts.Dropped, counts.Skipped, counts.DecodeErrors, outcome.BackupPath)
	return nil
}
