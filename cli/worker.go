package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start, stop and run worker processes",
}

var workerStartCount int

var workerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Spawn worker processes",
	RunE:  runWorkerStart,
}

var workerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Signal all running workers to shut down",
	RunE:  runWorkerStop,
}

// workerRunCmd is the supervisor-only entry point a spawned worker
// process executes; it is intentionally hidden from --help since
// running it directly bypasses the pid registry.
var workerRunCmd = &cobra.Command{
	Use:    "run",
	Hidden: true,
	RunE:   runWorkerRun,
}

func init() {
	workerCmd.AddCommand(workerStartCmd)
	workerCmd.AddCommand(workerStopCmd)
	workerCmd.AddCommand(workerRunCmd)
	workerStartCmd.Flags().IntVar(&workerStartCount, "count", 1, "number of worker processes to spawn")
}

func runWorkerStart(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.supervisor().Start(cmd.Context(), workerStartCount); err != nil {
		return err
	}
	return printJSON(cmd, map[string]int{"spawned": workerStartCount})
}

func runWorkerStop(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.supervisor().Stop(); err != nil {
		return err
	}
	return printJSON(cmd, map[string]string{"status": "stopped"})
}

// stopGracePeriod bounds how long a worker waits for its in-flight
// claim tick and retention sweep to finish once signaled. It exceeds the
// 300-second command timeout, so an in-flight job always finishes and
// has its outcome recorded before the worker process exits.
const stopGracePeriod = 330 * time.Second

func runWorkerRun(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	w := worker.New(e.store, e.dir, e.log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	return w.Stop(stopGracePeriod)
}
