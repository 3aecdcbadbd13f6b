package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"cutclean/internal/lineio"
)

// discardHandler backports slog.DiscardHandler (added in Go 1.24).
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Transform streams records from src into dst and returns how many it kept.
// It must not touch the destination path itself; committing is the
// rewriter's job.
type Transform func(src *lineio.Source, dst *lineio.Writer) (kept int, err error)

// Options configures one rewrite.
type Options struct {
	// InputPath is the file to read. Gzip is detected by its suffix.
	InputPath string
	// OutputPath is the destination. Empty means in place.
	OutputPath string
	// KeepEmptyOutput commits a legitimately empty file when the transform
	// keeps zero records instead of aborting with ErrNoRecordsKept.
	KeepEmptyOutput bool
	// Logger receives progress events. Nil disables logging.
	Logger *slog.Logger
}

// Outcome reports what the rewrite did.
type Outcome struct {
	Destination string
	BackupPath  string
	Committed   bool
	Kept        int
}

// Rewrite runs transform under the backup/temp-write/rename state machine.
// In-place rewrites copy the original to a timestamped backup first and read
// from the backup, so the original data stays readable at the backup path for
// the whole operation. The destination is only ever touched by the final
// rename.
func Rewrite(opts Options, transform Transform) (Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	input, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve input path: %w", err)
	}
	dest := input
	if opts.OutputPath != "" {
		if dest, err = filepath.Abs(opts.OutputPath); err != nil {
			return Outcome{}, fmt.Errorf("resolve output path: %w", err)
		}
	}
	inPlace := dest == input
	outcome := Outcome{Destination: dest}

	if inPlace {
		lock := flock.New(dest + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return outcome, fmt.Errorf("acquire rewrite lock: %w", err)
		}
		if !locked {
			return outcome, fmt.Errorf("%w: %s", ErrLocked, dest)
		}
		defer func() {
			_ = lock.Unlock()
			_ = os.Remove(dest + ".lock")
		}()
	}

	readPath := input
	if inPlace {
		backup := BackupPath(input, time.Now())
		if err := copyFile(input, backup); err != nil {
			return outcome, fmt.Errorf("create backup: %w", err)
		}
		outcome.BackupPath = backup
		readPath = backup
		logger.Info("backup created", "path", backup)
	}

	src, err := lineio.Open(readPath, lineio.IsGzipPath(opts.InputPath))
	if err != nil {
		return outcome, fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".cutclean-*.tmp")
	if err != nil {
		return outcome, fmt.Errorf("%w: create temporary file: %v", ErrCommit, err)
	}
	tmpPath := tmp.Name()
	discard := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	writer := lineio.NewWriter(tmp, lineio.IsGzipPath(dest))
	kept, err := transform(src, writer)
	if err != nil {
		discard()
		return outcome, err
	}
	outcome.Kept = kept

	if kept == 0 && !opts.KeepEmptyOutput {
		discard()
		logger.Info("rewrite aborted, nothing kept", "destination", dest)
		return outcome, fmt.Errorf("%w: %s", ErrNoRecordsKept, opts.InputPath)
	}

	if err := writer.Close(); err != nil {
		discard()
		return outcome, fmt.Errorf("%w: flush output: %v", ErrCommit, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return outcome, fmt.Errorf("%w: close temporary file: %v", ErrCommit, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return outcome, fmt.Errorf("%w: rename into place: %v", ErrCommit, err)
	}

	outcome.Committed = true
	logger.Info("rewrite committed", "destination", dest, "kept", kept)
	return outcome, nil
}
