// Package lineio reads and writes newline-delimited text files, optionally
// gzip-compressed, with per-line UTF-8 validation.
//
// Source yields one entry per raw input line in file order. A line whose bytes
// are not valid UTF-8 surfaces as a decode error on that entry without
// aborting the stream; the source simply advances past it. Line boundaries
// are the raw byte '\n' only.
package lineio
