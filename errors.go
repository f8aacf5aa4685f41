package queuectl

import "errors"

var (
	// ErrInvalidInput indicates malformed user input: bad JSON, a missing
	// command field, an unrecognized state filter, or a non-integer
	// config value. It is reported to the caller and causes no state
	// change.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateID indicates that Enqueue was called with an id that
	// already exists in the active jobs table.
	ErrDuplicateID = errors.New("duplicate job id")

	// ErrNotFound indicates that RetryDLQ was called with an id that is
	// not in the DLQ, or that Logs was called with an id that exists in
	// neither the active table nor the DLQ.
	ErrNotFound = errors.New("job not found")

	// ErrConflict indicates that RetryDLQ would reintroduce an id that
	// already exists in the active table. The DLQ row is left untouched.
	ErrConflict = errors.New("job id already active")

	// ErrBadStatus indicates that a Purge request targeted a non-terminal
	// job state. Purge may only delete completed or dead jobs.
	ErrBadStatus = errors.New("bad job status for this operation")
)
