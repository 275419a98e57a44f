// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting casts votes and computes poll statistics.

# Casting

CastVote fetches the poll, bounds-checks the option index, then delegates to
the store's single-statement increment:

	err := svc.CastVote(ctx, pollID, optionIndex)

Errors callers branch on: ErrPollNotFound (HTTP 404), ErrInvalidOption
(HTTP 400). Anything else is a storage failure (HTTP 500).

There is no ballot deduplication: any caller may vote any number of times.
That is a scope decision, not an oversight.

# Statistics

Stats is a pure function over a fetched poll; it performs no store access:

	stats := voting.Stats(poll)

Percentages sum to 100 (within floating point) when the poll has votes, and
are all zero otherwise.

# Events

When constructed with a non-nil event.Publisher, every accepted vote is
published after the increment commits. Publishing is best-effort and never
fails the vote.
*/
package voting
