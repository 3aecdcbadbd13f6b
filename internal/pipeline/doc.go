// Package pipeline drives one file through the record transform: lines from
// a Source are decoded, their supervision texts normalized, the filter
// criteria applied, and surviving records re-encoded to the output writer,
// with every step reflected in the run's aggregator. Decode failures and
// malformed records are counted and skipped, never fatal.
package pipeline
