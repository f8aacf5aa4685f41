// Package queuectl provides a durable, local, at-least-once background
// job queue with a command-line control plane.
//
// # Overview
//
// Clients submit shell-command jobs, optionally delayed until a future
// time. A pool of long-lived worker processes concurrently claims and
// executes them against a single SQLite-backed store, honoring a
// retry-with-backoff policy and routing permanently failing jobs to a
// dead-letter queue (DLQ).
//
// queuectl is a single-host system: there is no coordination across
// machines, no priority scheduling beyond FIFO among ready jobs, and no
// exactly-once guarantee. A job may run more than once if a worker
// crashes mid-execution; job commands should be idempotent.
//
// # State Machine
//
// Jobs follow this lifecycle:
//
//	pending    -> processing
//	processing -> completed
//	processing -> pending   (retry, with incremented attempts and a future run_at)
//	processing -> dead      (promotion to the DLQ)
//
// completed and dead are terminal. failed is a legal filter value but is
// never persisted.
//
// # Retry Policy
//
// When an attempt fails, the worker computes
// backoff_base^(attempts-1) seconds (backoff_base re-read from
// configuration on every failure) and reschedules the job, unless doing
// so would push attempts past max_retries, in which case the job is
// promoted to the DLQ instead.
//
// # Packages
//
//	job        — the Job/DeadJob data model and State enum
//	config     — the on-disk tuning-knob provider (max_retries, backoff_base)
//	store      — the SQLite-backed persistence layer and claim protocol
//	manager    — enqueue, list, status, DLQ retry, log retrieval
//	worker     — the claim/execute/retry loop run by each worker process
//	supervisor — spawning, pid tracking, and graceful shutdown of workers
//	cmd/queuectl — the CLI entry point
//
// # Concurrency Model
//
// N worker processes run independently, each strictly single-threaded
// in its claim/execute/record loop. Coordination happens entirely
// through the store's atomic claim transaction and through OS signals;
// there is no shared memory and no cross-worker messaging.
package queuectl
