package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/config"
	"github.com/queuectl/queuectl/internal"
	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

// claimInterval is how often a Worker polls the store for an eligible
// job when none was claimed on the previous tick.
const claimInterval = time.Second

// retentionInterval is how often the background retention task invokes
// store.Purge.
const retentionInterval = time.Hour

// retentionAge is how long a terminal row survives before it becomes
// eligible for retention purge.
const retentionAge = 7 * 24 * time.Hour

// Worker runs a single-job claim loop: on every tick it attempts to
// claim one job, and if it got one, executes it synchronously and
// records the outcome before the next tick begins. A second goroutine
// runs a background retention sweep; it does not compete with the claim
// loop for job execution.
type Worker struct {
	lifecycle internal.Lifecycle
	claimTask internal.TimerTask
	retention internal.TimerTask
	store     *store.Store
	dir       string
	log       *slog.Logger
}

// New builds a Worker backed by s, reading its retry configuration from
// dir.
func New(s *store.Store, dir string, log *slog.Logger) *Worker {
	return &Worker{store: s, dir: dir, log: log}
}

// Start begins the claim loop and the retention task. Start returns
// internal.ErrDoubleStarted if the worker has already been started.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.lifecycle.TryStart(); err != nil {
		return err
	}
	w.claimTask.Start(ctx, w.tick, claimInterval)
	w.retention.Start(ctx, w.purge, retentionInterval)
	return nil
}

func (w *Worker) doStop() internal.DoneChan {
	first := w.claimTask.Stop()
	second := w.retention.Stop()
	return internal.Combine(first, second)
}

// Stop initiates graceful shutdown: no further jobs are claimed, and
// Stop waits up to timeout for the in-flight tick (if any) and the
// retention task to finish. It returns internal.ErrStopTimeout if that
// deadline passes first, and internal.ErrDoubleStopped if the worker is
// not running.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.lifecycle.TryStop(timeout, w.doStop)
}

func (w *Worker) tick(ctx context.Context) {
	jb, err := w.store.Claim(ctx)
	if err != nil {
		w.log.Error("claim failed", "err", err)
		return
	}
	if jb == nil {
		return
	}
	w.execute(jb)
}

// execute runs jb's command and records its outcome on context.Background
// rather than the claim loop's ctx: Stop cancels that ctx to end the loop,
// and a claimed job must run to completion and have its outcome recorded
// regardless, not have its child process killed mid-flight by shutdown.
func (w *Worker) execute(jb *job.Job) {
	ctx := context.Background()
	w.log.Info("executing job", "id", jb.Id, "command", jb.Command, "attempt", jb.Attempts+1)
	stdout, stderr, runErr := runCommand(ctx, jb.Command)

	if runErr == nil {
		if err := w.store.Complete(ctx, jb.Id, &stdout, &stderr); err != nil {
			w.log.Error("cannot complete job", "id", jb.Id, "err", err)
		}
		return
	}

	w.log.Warn("job attempt failed", "id", jb.Id, "err", runErr)
	attempts := jb.Attempts + 1

	if attempts > jb.MaxRetries {
		if err := w.store.Promote(ctx, jb, attempts, &stdout, &stderr); err != nil {
			w.log.Error("cannot promote job to dlq", "id", jb.Id, "err", err)
		}
		return
	}

	base := config.DefaultBackoffBase
	if cfg, err := config.Load(w.dir); err == nil {
		base = int(cfg.BackoffBase)
	}
	delay := queuectl.ComputeBackoff(uint32(base), attempts)
	if err := w.store.Retry(ctx, jb.Id, attempts, delay, &stdout, &stderr); err != nil {
		w.log.Error("cannot reschedule job", "id", jb.Id, "err", err)
	}
}

func (w *Worker) purge(ctx context.Context) {
	before := time.Now().UTC().Add(-retentionAge)
	for _, status := range []job.State{job.Completed, job.Dead} {
		n, err := w.store.Purge(ctx, status, before)
		if err != nil {
			w.log.Error("retention purge failed", "status", status, "err", err)
			continue
		}
		if n > 0 {
			w.log.Info("purged old jobs", "status", status, "count", n)
		}
	}
}
