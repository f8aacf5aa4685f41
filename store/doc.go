// Package store provides the SQLite-backed persistence layer for
// queuectl, implemented with github.com/uptrace/bun over
// modernc.org/sqlite.
//
// # Overview
//
// Store owns two tables, jobs and dlq, and exposes the durable,
// concurrency-safe operations the rest of queuectl is built on:
// enqueue, the atomic claim transaction, outcome recording (complete,
// retry, promote to DLQ), DLQ retry, listing, status aggregation, log
// lookup, a stale-processing recovery sweep, and retention purge.
//
// # Concurrency Model
//
// Claim is implemented as a single atomic
//
//	UPDATE jobs SET state = 'processing', ...
//	WHERE id IN (SELECT id FROM jobs WHERE state = 'pending' AND run_at <= ? ORDER BY created_at LIMIT 1)
//
// statement, so the row selection and the state transition happen in one
// database-level atomic step. A concurrent worker either waits for the
// write lock and then sees zero eligible rows, or loses the race and its
// own UPDATE affects zero rows; both are treated as "no job this tick".
// This is the same technique the teacher's sql.Puller uses for
// UPDATE ... RETURNING-based claiming, narrowed from a batch pull to a
// single row per spec.
//
// # Storage Expectations
//
// Callers must open the database with WAL journaling and a generous
// busy_timeout (Open does this), and must keep the connection pool at a
// single connection, since SQLite serializes writers regardless of
// Go-level pooling.
package store
