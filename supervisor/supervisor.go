package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/queuectl/queuectl/config"
	"github.com/queuectl/queuectl/store"
)

// staleAfter bounds how long a job may sit in processing before the
// pre-spawn recovery sweep assumes its worker crashed and resets it.
const staleAfter = 5 * time.Minute

// Supervisor starts, stops and reports on the pool of worker processes.
// Every method re-derives the pid registry path from dir, so a
// Supervisor has no in-memory state of its own beyond that path.
type Supervisor struct {
	dir   string
	store *store.Store
	log   *slog.Logger
}

// New builds a Supervisor rooted at dir (queuectl's home directory),
// using s to run the pre-spawn stale-job recovery sweep.
func New(dir string, s *store.Store, log *slog.Logger) *Supervisor {
	return &Supervisor{dir: dir, store: s, log: log}
}

// Start spawns n worker processes, each re-executing the current
// binary with the hidden "worker run" subcommand, detached via its own
// session so it survives the CLI process exiting. Before spawning any
// worker, Start runs a one-shot sweep that resets processing jobs
// stranded by a prior crash back to pending.
//
// Newly spawned pids are appended to the existing registry; Start does
// not affect workers already running.
func (sup *Supervisor) Start(ctx context.Context, n int) error {
	if n <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", n)
	}

	if recovered, err := sup.store.RecoverStale(ctx, staleAfter); err != nil {
		sup.log.Error("stale recovery sweep failed", "err", err)
	} else if recovered > 0 {
		sup.log.Info("recovered stale processing jobs", "count", recovered)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	existing, err := readPids(config.PidPath(sup.dir))
	if err != nil {
		return err
	}

	spawned := make([]int, 0, n)
	for i := 0; i < n; i++ {
		cmd := exec.Command(exe, "worker", "run")
		cmd.Env = os.Environ()
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("spawn worker %d: %w", i, err)
		}
		sup.log.Info("spawned worker", "pid", cmd.Process.Pid)
		spawned = append(spawned, cmd.Process.Pid)
		// The child is detached and tracked by its pid alone; Release
		// frees the handle, and the CLI never waits on the child.
		_ = cmd.Process.Release()
	}

	return writePids(config.PidPath(sup.dir), append(existing, spawned...))
}

// Stop sends SIGTERM to every pid in the registry and removes it. A pid
// that has already exited is skipped without error.
func (sup *Supervisor) Stop() error {
	path := config.PidPath(sup.dir)
	pids, err := readPids(path)
	if err != nil {
		return err
	}
	for _, pid := range pids {
		proc, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		if err := proc.Signal(syscall.SIGTERM); err != nil {
			sup.log.Warn("failed to signal worker", "pid", pid, "err", err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ActiveCount probes every registered pid with signal 0, prunes any
// that are no longer alive from the registry, and returns the number
// still running.
func (sup *Supervisor) ActiveCount() (int, error) {
	path := config.PidPath(sup.dir)
	pids, err := readPids(path)
	if err != nil {
		return 0, err
	}
	alive := make([]int, 0, len(pids))
	for _, pid := range pids {
		proc, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		if err := proc.Signal(syscall.Signal(0)); err == nil {
			alive = append(alive, pid)
		}
	}
	if len(alive) != len(pids) {
		if err := writePids(path, alive); err != nil {
			return 0, err
		}
	}
	return len(alive), nil
}
