// Package manager implements the job control plane: enqueue, list,
// status, DLQ retry and log lookup. It is the only package that
// translates between caller-facing requests (JSON payloads, filter
// strings) and the store's typed operations, filling in defaults
// (job id, max_retries, run_at) that the store itself does not know
// how to compute.
package manager
