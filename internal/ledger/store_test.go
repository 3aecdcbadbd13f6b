package ledger_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cutclean/internal/ledger"
)

func openStore(t *testing.T) *ledger.Store {
	t.Helper()
	store, err := ledger.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, outcome := range []string{ledger.OutcomeCommitted, ledger.OutcomeAbortedEmpty, ledger.OutcomeFailed} {
		run := ledger.Run{
			Command:    "check",
			InputPath:  "/data/cuts.jsonl.gz",
			Outcome:    outcome,
			Total:      100 + i,
			Kept:       90,
			Dropped:    10,
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + 30*time.Second),
		}
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("record run: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].Outcome != ledger.OutcomeFailed || runs[2].Outcome != ledger.OutcomeCommitted {
		t.Fatalf("unexpected ordering: %q, %q, %q", runs[0].Outcome, runs[1].Outcome, runs[2].Outcome)
	}
	if runs[0].ID == "" {
		t.Fatal("expected an assigned run ID")
	}
	if runs[0].Total != 102 {
		t.Fatalf("unexpected total: %d", runs[0].Total)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		run := ledger.Run{
			Command:    "filter",
			InputPath:  "/data/in.jsonl",
			Outcome:    ledger.OutcomeCommitted,
			StartedAt:  now.Add(time.Duration(i) * time.Second),
			FinishedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("record run: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.db")

	store, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.RecordRun(context.Background(), ledger.Run{
		Command: "check", InputPath: "/x", Outcome: ledger.OutcomeCommitted,
		StartedAt: time.Now(), FinishedAt: time.Now(),
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	again, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	runs, err := again.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected the recorded run to persist, got %d", len(runs))
	}
}
