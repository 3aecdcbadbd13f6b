package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutclean/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Filter.MinDuration != 3.0 {
		t.Fatalf("unexpected min duration: %v", cfg.Filter.MinDuration)
	}
	if cfg.Filter.TargetSamplingRate != 24000 {
		t.Fatalf("unexpected target sampling rate: %d", cfg.Filter.TargetSamplingRate)
	}
	if len(cfg.Filter.TargetChannel) != 1 || cfg.Filter.TargetChannel[0] != 0 {
		t.Fatalf("unexpected target channel: %v", cfg.Filter.TargetChannel)
	}
	if cfg.Filter.PadMode != "reflect" {
		t.Fatalf("unexpected pad mode: %q", cfg.Filter.PadMode)
	}
	if cfg.Paths.ForcedExtension != ".wav" {
		t.Fatalf("unexpected forced extension: %q", cfg.Paths.ForcedExtension)
	}
	if cfg.Paths.PathColumn != 2 {
		t.Fatalf("unexpected path column: %d", cfg.Paths.PathColumn)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	wantLedger := filepath.Join(tempHome, ".local", "share", "cutclean", "runs.db")
	if cfg.Ledger.Path != wantLedger {
		t.Fatalf("unexpected ledger path: got %q want %q", cfg.Ledger.Path, wantLedger)
	}
}

func TestLoadParsesAndNormalizesFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[filter]
min_duration = 0.5
target_channel = [0, 1]
pad_mode = "Replicate"

[paths]
old_root = " /media/ "
new_root = "/media_wav_24k/"
forced_extension = "wav"

[logging]
format = "JSON"
level = "DEBUG"

[ledger]
enabled = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}

	if cfg.Filter.MinDuration != 0.5 {
		t.Fatalf("unexpected min duration: %v", cfg.Filter.MinDuration)
	}
	if len(cfg.Filter.TargetChannel) != 2 || cfg.Filter.TargetChannel[1] != 1 {
		t.Fatalf("unexpected target channel: %v", cfg.Filter.TargetChannel)
	}
	if cfg.Filter.PadMode != "replicate" {
		t.Fatalf("expected pad mode lowered, got %q", cfg.Filter.PadMode)
	}
	if cfg.Paths.OldRoot != "/media/" {
		t.Fatalf("expected old root trimmed, got %q", cfg.Paths.OldRoot)
	}
	if cfg.Paths.ForcedExtension != ".wav" {
		t.Fatalf("expected forced extension to gain a dot, got %q", cfg.Paths.ForcedExtension)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Ledger.Enabled {
		t.Fatal("expected ledger disabled")
	}
}

func TestLoadRejectsInvalidPadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[filter]\npad_mode = \"mirror\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "pad_mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsNegativeChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[filter]\ntarget_channel = [-1]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "target_channel") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSampleRoundTripsThroughLoad(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Filter.TargetSamplingRate != config.Default().Filter.TargetSamplingRate {
		t.Fatalf("sample drifted from defaults: %d", cfg.Filter.TargetSamplingRate)
	}
}

func TestExpandPathResolvesTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/data/cuts.jsonl")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(tempHome, "data", "cuts.jsonl")
	if got != want {
		t.Fatalf("unexpected expansion: got %q want %q", got, want)
	}
}
