package tsvutil

import "strings"

// Row is one table line split on tabs. No quoting is interpreted; the wire
// format is plain tab-separated text.
type Row []string

// ParseRow splits a line into its columns. An empty line parses to an empty
// row, never nil.
func ParseRow(line string) Row {
	if line == "" {
		return Row{}
	}
	return Row(strings.Split(line, "\t"))
}

// Encode joins the row back into a tab-separated line.
func (r Row) Encode() string {
	return strings.Join(r, "\t")
}

// Field returns column i. ok is false when the row is too short, which
// callers report as skipped rather than malformed.
func (r Row) Field(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// SetField replaces column i. It is a no-op on rows too short to hold it.
func (r Row) SetField(i int, value string) {
	if i >= 0 && i < len(r) {
		r[i] = value
	}
}
