// Package job defines the stateful representation of a unit of work
// managed by queuectl.
//
// A Job is a shell command plus scheduling and retry metadata: its
// state in the claim/execute/retry lifecycle, how many times it has been
// attempted, when it is next eligible to run, and the captured output of
// its most recent attempt.
//
// A DeadJob is the shape a Job takes once it has exhausted its retry
// budget and has been moved to the dead-letter queue. It carries the
// same identity and command but drops the scheduling fields that no
// longer apply to a terminal record and adds FailedAt.
//
// Job and DeadJob values returned by the store package are snapshots.
// Mutating them does not change persisted state; transitions happen
// through the store's claim/complete/retry/promote operations.
package job
