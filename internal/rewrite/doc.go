// Package rewrite commits transformed record files without ever leaving a
// half-written destination.
//
// Every rewrite follows one state machine: optional timestamped backup of the
// original, streaming write into a temporary file in the destination
// directory, then a single atomic rename onto the destination. In-place and
// to-another-path rewrites are the same flow; destination equality is the
// only variable. Any failure removes the temporary file and leaves the
// destination exactly as found, with the backup (when one was taken) intact.
package rewrite
