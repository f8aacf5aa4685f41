package cli

import (
	"errors"

	"github.com/queuectl/queuectl"
)

// Exit codes follow the error taxonomy in queuectl's error-handling
// design: each sentinel error maps to a distinct code so scripts can
// branch on failure kind without parsing stderr text.
const (
	exitOK = iota
	exitInvalidInput
	exitDuplicateID
	exitNotFound
	exitConflict
	exitBadStatus
	exitFatal
)

// ExitCode maps err to the process exit code queuectl should return.
// A nil error yields exitOK; any error that doesn't match one of
// queuectl's sentinel kinds is treated as fatal.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, queuectl.ErrInvalidInput):
		return exitInvalidInput
	case errors.Is(err, queuectl.ErrDuplicateID):
		return exitDuplicateID
	case errors.Is(err, queuectl.ErrNotFound):
		return exitNotFound
	case errors.Is(err, queuectl.ErrConflict):
		return exitConflict
	case errors.Is(err, queuectl.ErrBadStatus):
		return exitBadStatus
	default:
		return exitFatal
	}
}
