package cli

import (
	"errors"
	"testing"

	"github.com/queuectl/queuectl"
)

func TestExitCodeMapsSentinelErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{queuectl.ErrInvalidInput, exitInvalidInput},
		{queuectl.ErrDuplicateID, exitDuplicateID},
		{queuectl.ErrNotFound, exitNotFound},
		{queuectl.ErrConflict, exitConflict},
		{queuectl.ErrBadStatus, exitBadStatus},
		{errors.New("boom"), exitFatal},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
