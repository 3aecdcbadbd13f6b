package rewrite

import "errors"

var (
	// ErrCommit marks an I/O failure while writing the temporary file or
	// performing the final rename. The destination is left as found.
	ErrCommit = errors.New("commit failure")

	// ErrNoRecordsKept reports that the transform kept zero records and the
	// empty-output policy aborted the rewrite. Distinct from a failure: the
	// run itself succeeded, it just refused to replace data with nothing.
	ErrNoRecordsKept = errors.New("no records kept")

	// ErrLocked reports that another invocation holds the rewrite lock for
	// the same destination.
	ErrLocked = errors.New("destination is locked by another invocation")
)
