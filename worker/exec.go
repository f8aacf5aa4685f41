package worker

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// commandTimeout bounds how long a single job's command may run before
// it is killed and treated as a failed attempt.
const commandTimeout = 300 * time.Second

// runCommand executes command through a shell, capturing stdout and
// stderr independently and returning them regardless of the exit
// status. Only the error return indicates failure.
func runCommand(ctx context.Context, command string) (stdout string, stderr string, err error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
