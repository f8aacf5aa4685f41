// Package supervisor manages the pool of worker processes: spawning
// them, tracking their pids in a registry file, signaling them to stop,
// and reporting how many are still alive. Go has no safe in-process
// fork, so each worker is a separate OS process, re-executing the
// queuectl binary with its hidden "worker run" subcommand.
package supervisor
