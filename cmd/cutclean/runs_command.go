package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cutclean/internal/ledger"
	"cutclean/internal/render"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent rewrite runs from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Ledger.Enabled {
				return fmt.Errorf("run ledger is disabled; enable it in [ledger] to use this command")
			}

			store, err := ledger.Open(cfg.Ledger.Path)
			if err != nil {
				return fmt.Errorf("open run ledger: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					run.Command,
					filepath.Base(run.InputPath),
					run.Outcome,
					strconv.Itoa(run.Total),
					strconv.Itoa(run.Kept),
					strconv.Itoa(run.Dropped),
				})
			}
			fmt.Fprintln(out, render.Table(
				[]string{"Started", "Command", "Input", "Outcome", "Total", "Kept", "Dropped"},
				rows,
				4, 5, 6,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
