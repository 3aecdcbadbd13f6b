// Package stats accumulates per-run counters for manifest processing and
// renders them deterministically: histogram keys come out in a fixed sorted
// order so two runs over the same input produce byte-identical summaries.
package stats
