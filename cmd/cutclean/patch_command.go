package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cutclean/internal/lineio"
	"cutclean/internal/pipeline"
	"cutclean/internal/rewrite"
	"cutclean/internal/tsvutil"
)

func newPatchPathsCommand(ctx *commandContext) *cobra.Command {
	var (
		pathCol  int
		oldRoot  string
		newRoot  string
		forceExt string
		inplace  bool
		dryRun   bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "patch-paths <tsv>...",
		Short: "Rewrite the audio path column of TSV tables",
		Long: "Patch-paths swaps the configured old root prefix for the new root in each row's " +
			"path column, collapses duplicate slashes, and forces the file extension. Rows too " +
			"short to hold the path column pass through unchanged. Output goes to stdout unless " +
			"--inplace is given. Files are processed independently; one failure does not stop " +
			"the rest.",
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
			rw := tsvutil.PathRewrite{
				OldRoot:     cfg.Paths.OldRoot,
				NewRoot:     cfg.Paths.NewRoot,
				ForceExt:    cfg.Paths.ForcedExtension,
				FallbackOld: "/media/",
				FallbackNew: "/media_wav_24k/",
			}
			if cmd.Flags().Changed("old-root") {
				rw.OldRoot = oldRoot
			}
			if cmd.Flags().Changed("new-root") {
				rw.NewRoot = newRoot
			}
			if cmd.Flags().Changed("force-ext") {
				rw.ForceExt = forceExt
			}

			errOut := cmd.ErrOrStderr()
			failures := 0
			for _, inputPath := range args {
				if err := patchOneTable(ctx, cmd, inputPath, col, rw, inplace, dryRun, verbose); err != nil {
					failures++
					fmt.Fprintf(errOut, "%s: %v\n", inputPath, err)
				}
			}
			if failures > 0 {
				return fmt.Errorf("patch-paths: %d of %d files failed", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pathCol, "path-col", 0, "Zero-based column index holding the audio path")
	cmd.Flags().StringVar(&oldRoot, "old-root", "", "Path prefix to replace")
	cmd.Flags().StringVar(&newRoot, "new-root", "", "Replacement path prefix")
	cmd.Flags().StringVar(&forceExt, "force-ext", "", "Extension forced onto rewritten paths, e.g. .wav")
	cmd.Flags().BoolVar(&inplace, "inplace", false, "Rewrite each file in place instead of printing to stdout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Stream patched rows to stdout without replacing the file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report every changed path on stderr")
	return cmd
}

func patchOneTable(ctx *commandContext, cmd *cobra.Command, inputPath string, col int, rw tsvutil.PathRewrite, inplace, dryRun, verbose bool) error {
	changed := 0
	logger := ctx.log()
	rowFn := func(lineNum int, row tsvutil.Row) (tsvutil.Row, pipeline.RowDecision) {
		raw, ok := row.Field(col)
		if !ok {
			return row, pipeline.RowSkip
		}
		patched := rw.Apply(raw)
		if patched != raw {
			changed++
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s -> %s\n", inputPath, lineNum, raw, patched)
			}
			row.SetField(col, patched)
		}
		return row, pipeline.RowKeep
	}
	opts := pipeline.TableOptions{WriteSkipped: true}
	errOut := cmd.ErrOrStderr()

	if dryRun || !inplace {
		src, err := lineio.Open(inputPath, lineio.IsGzipPath(inputPath))
		if err != nil {
			return fmt.Errorf("open table: %w", err)
		}
		defer src.Close()

		// A dry run still streams the patched rows; it only skips the
		// in-place replacement.
		dst := lineio.NewWriter(cmd.OutOrStdout(), false)
		counts, err := pipeline.ProcessTable(src, dst, opts, rowFn)
		if err != nil {
			return err
		}
		if err := dst.Close(); err != nil {
			return err
		}
		fmt.Fprintf(errOut, "%s: rows=%d changed=%d skipped=%d decode_errors=%d\n",
			inputPath, counts.Kept, changed, counts.Skipped, counts.DecodeErrors)
		return nil
	}

	var counts pipeline.TableCounts
	started := time.Now()
	outcome, err := rewrite.Rewrite(rewrite.Options{
		InputPath:       inputPath,
		KeepEmptyOutput: true,
		Logger:          logger,
	}, func(src *lineio.Source, dst *lineio.Writer) (int, error) {
		var err error
		counts, err = pipeline.ProcessTable(src, dst, opts, rowFn)
		return counts.Kept + counts.Skipped, err
	})
	run := newRun("patch-paths", inputPath, started, nil, outcome, err)
	run.Total = counts.Kept + counts.Skipped
	run.DecodeErrors = counts.DecodeErrors
	ctx.recordRun(run)
	if err != nil {
		return err
	}
	fmt.Fprintf(errOut, "%s: rows=%d changed=%d skipped=%d decode_errors=%d (backup at %s)\n",
		inputPath, counts.Kept, changed, counts.Skipped, counts.DecodeErrors, outcome.BackupPath)
	return nil
}
