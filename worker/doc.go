// Package worker implements the single-job claim loop that actually
// executes queued commands, plus a background retention task that
// purges old terminal rows. A Worker is strictly single-threaded: it
// claims at most one job per tick and runs it to completion (or
// failure) before claiming another, unlike the teacher's batched,
// pool-dispatched design.
package worker
