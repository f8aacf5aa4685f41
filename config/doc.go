// Package config supplies queuectl's two tuning knobs, max_retries and
// backoff_base, backed by a JSON file at ~/.queuectl/config.json.
//
// Reads are tolerant: a missing or malformed file is treated as "use
// defaults", and the defaults are written back so the file always exists
// after the first read. Writes are a whole-file replace: callers never
// observe a partially written config.
//
// There is no hot-reload mechanism. A worker calls Load each time it
// reschedules a failed attempt, so an operator can adjust backoff_base
// while workers are running; it does not call Load at process start.
package config
