// Command queuectl is a durable, local, at-least-once background job
// queue with a CLI control plane.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/queuectl/queuectl/cli"
)

func main() {
	ctx := context.Background()
	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
