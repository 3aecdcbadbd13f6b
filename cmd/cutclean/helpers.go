package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"cutclean/internal/ledger"
	"cutclean/internal/rewrite"
	"cutclean/internal/stats"
)

// parseChannelList parses a --target-channel value. JSON arrays come through
// as is; a bare integer is wrapped into a single-element list.
func parseChannelList(value string) ([]int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	var list []int
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return list, nil
	}
	var scalar int
	if err := json.Unmarshal([]byte(trimmed), &scalar); err == nil {
		return []int{scalar}, nil
	}
	return nil, fmt.Errorf("invalid channel list %q: expected a JSON integer or array", value)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runOutcome translates a rewrite result into a ledger outcome label.
func runOutcome(err error) string {
	switch {
	case err == nil:
		return ledger.OutcomeCommitted
	case isNoRecordsKept(err):
		return ledger.OutcomeAbortedEmpty
	default:
		return ledger.OutcomeFailed
	}
}

func isNoRecordsKept(err error) bool {
	return errors.Is(err, rewrite.ErrNoRecordsKept)
}

// newRun builds the common ledger fields for a manifest rewrite.
func newRun(command, inputPath string, started time.Time, agg *stats.Aggregator, outcome rewrite.Outcome, err error) ledger.Run {
	run := ledger.Run{
		ID:         ledger.NewRunID(),
		Command:    command,
		InputPath:  inputPath,
		Outcome:    runOutcome(err),
		Kept:       outcome.Kept,
		BackupPath: outcome.BackupPath,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if agg != nil {
		run.Total = agg.Total
		run.Dropped = agg.Dropped()
		run.DecodeErrors = agg.DecodeErrors
		run.Malformed = agg.Malformed
	}
	return run
}
