// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package event

import (
	"context"
	"time"
)

// VoteEvent records one accepted ballot.
type VoteEvent struct {
	PollID      int64     `json:"poll_id"`
	OptionIndex int       `json:"option_index"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher emits vote events to an external stream. Implementations must be
// safe for concurrent use; delivery is best-effort from the caller's point
// of view, since the vote has already been counted when Publish runs.
type Publisher interface {
	Publish(ctx context.Context, ev VoteEvent) error
	Close() error
}
