// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - account: credential rows, one per registered name. The name column is
    the primary key, which is what makes registration race-safe: the insert
    either lands or conflicts, there is no separate existence check.
  - poll: title plus parallel options (TEXT[]) and votes (INTEGER[]) columns.
    Keeping the counters in an array column is what allows the atomic
    in-place increment of a single position.

# Indexes

  - poll.created_at, used by the newest-first listing and the
    older-than-24h query.
*/
package db
