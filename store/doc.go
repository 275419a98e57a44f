// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence interfaces and their Postgres
implementation.

Two small interfaces, CredentialStore and PollStore, are all the services
see; Postgres implements both on a shared *sql.DB. Every method takes a
context.Context and runs exactly one logical store operation - there are no
retries and no multi-statement transactions in the hot paths.

The two statements that carry correctness obligations:

	INSERT INTO account ... ON CONFLICT (name) DO NOTHING

registration uniqueness, enforced by the primary key rather than a
check-then-insert, and

	UPDATE poll SET votes[$1] = votes[$1] + 1 WHERE id = $2

the vote increment, expressed as a single in-place array update so
concurrent voters on the same option cannot lose updates.

Sentinel errors ErrNotFound and ErrDuplicate are the only error values
callers are expected to branch on; everything else is a wrapped storage
failure.
*/
package store
