package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cutclean/internal/lineio"
	"cutclean/internal/media/ffprobe"
	"cutclean/internal/pipeline"
	"cutclean/internal/tsvutil"
)

func newValidatePathsCommand(ctx *commandContext) *cobra.Command {
	var (
		pathCol    int
		newRoot    string
		useFFprobe bool
	)

	cmd := &cobra.Command{
		Use:   "validate-paths <tsv>...",
		Short: "Check that TSV audio paths are well-formed and resolvable",
		Long: "Validate-paths checks each row's audio path: it must be absolute, carry the " +
			"forced extension, sit under the new root when one is configured, and point at an " +
			"existing file. Duplicate slashes are reported as warnings. With --ffprobe each " +
			"file is additionally probed for a mono pcm_s16le stream at the target sampling rate.",
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
			root := cfg.Paths.NewRoot
			if cmd.Flags().Changed("new-root") {
				root = newRoot
			}

			probe := useFFprobe
			if probe && !ffprobe.Available(cfg.FFprobeBinary()) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s not found in PATH, falling back to path-only checks\n", cfg.FFprobeBinary())
				probe = false
			}

			out := cmd.OutOrStdout()
			totalErrors := 0
			for _, inputPath := range args {
				errs, warns, err := validateOneTable(cmd, cfg.FFprobeBinary(), inputPath, col, root,
					cfg.Paths.ForcedExtension, cfg.Filter.TargetSamplingRate, probe)
				if err != nil {
					return fmt.Errorf("%s: %w", inputPath, err)
				}
				fmt.Fprintf(out, "%s: errors=%d warnings=%d\n", inputPath, errs, warns)
				totalErrors += errs
			}
			if totalErrors > 0 {
				return fmt.Errorf("validate-paths: %d errors", totalErrors)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pathCol, "path-col", 0, "Zero-based column index holding the audio path")
	cmd.Flags().StringVar(&newRoot, "new-root", "", "Root directory every path must live under")
	cmd.Flags().BoolVar(&useFFprobe, "ffprobe", false, "Probe each file for a mono pcm_s16le stream at the target rate")
	return cmd
}

func validateOneTable(cmd *cobra.Command, ffprobeBin, inputPath string, col int, root, forcedExt string, targetRate int, useFFprobe bool) (errs, warns int, err error) {
	src, err := lineio.Open(inputPath, lineio.IsGzipPath(inputPath))
	if err != nil {
		return 0, 0, fmt.Errorf("open table: %w", err)
	}
	defer src.Close()

	errOut := cmd.ErrOrStderr()
	report := func(lineNum int, severity, format string, args ...any) {
		if severity == "error" {
			errs++
		} else {
			warns++
		}
		fmt.Fprintf(errOut, "%s:%d: %s: %s\n", inputPath, lineNum, severity, fmt.Sprintf(format, args...))
	}

	rowFn := func(lineNum int, row tsvutil.Row) (tsvutil.Row, pipeline.RowDecision) {
		raw, ok := row.Field(col)
		if !ok {
			report(lineNum, "warning", "row has %d columns, path column %d missing", len(row), col)
			return row, pipeline.RowSkip
		}
		path := strings.TrimSpace(raw)
		if path == "" {
			report(lineNum, "error", "empty path")
			return row, pipeline.RowKeep
		}
		if !strings.HasPrefix(path, "/") {
			report(lineNum, "error", "path is not absolute: %s", path)
		}
		if strings.Contains(path, "//") {
			report(lineNum, "warning", "path contains duplicate slashes: %s", path)
		}
		if forcedExt != "" && !strings.HasSuffix(path, forcedExt) {
			report(lineNum, "error", "path does not end in %s: %s", forcedExt, path)
		}
		if root != "" && !strings.HasPrefix(path, strings.TrimRight(root, "/")+"/") {
			report(lineNum, "error", "path is outside %s: %s", root, path)
		}
		info, statErr := os.Stat(path)
		if statErr != nil {
			report(lineNum, "error", "file not found: %s", path)
			return row, pipeline.RowKeep
		}
		if info.Size() == 0 {
			report(lineNum, "error", "file is empty: %s", path)
			return row, pipeline.RowKeep
		}
		if useFFprobe {
			props, probeErr := ffprobe.InspectAudio(cmd.Context(), ffprobeBin, path)
			switch {
			case probeErr != nil:
				report(lineNum, "error", "ffprobe failed: %v", probeErr)
			case props.Channels != 1:
				report(lineNum, "error", "expected mono audio, got %d channels: %s", props.Channels, path)
			case props.SampleRate != targetRate:
				report(lineNum, "error", "expected %d Hz, got %d Hz: %s", targetRate, props.SampleRate, path)
			case props.Codec != "pcm_s16le":
				report(lineNum, "error", "expected pcm_s16le, got %s: %s", props.Codec, path)
			}
		}
		return row, pipeline.RowKeep
	}

	counts, err := pipeline.ProcessTable(src, nil, pipeline.TableOptions{WriteSkipped: true}, rowFn)
	if err != nil {
		return errs, warns, err
	}
	errs += counts.DecodeErrors
	return errs, warns, nil
}
