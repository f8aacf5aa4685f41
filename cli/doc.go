// Package cli wires the queuectl command tree together with
// spf13/cobra: enqueue, worker, status, list, dlq, config and logs. All
// commands print JSON to stdout and map queuectl's sentinel errors to
// process exit codes.
package cli
