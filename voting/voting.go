// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/ballotbox/event"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidOption = errors.New("option index out of range")
)

// Service validates and casts votes. The publisher may be nil, in which case
// no events are emitted.
type Service struct {
	polls  store.PollStore
	events event.Publisher
}

func NewService(polls store.PollStore, events event.Publisher) *Service {
	return &Service{polls: polls, events: events}
}

// CastVote increments the counter for one option of one poll. Validation
// reads the poll first, but the increment itself is a single store
// statement: either the counter goes up by exactly one or nothing changes.
func (s *Service) CastVote(ctx context.Context, pollID int64, optionIndex int) error {
	poll, err := s.polls.GetPoll(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPollNotFound
	}
	if err != nil {
		return fmt.Errorf("fetch poll: %w", err)
	}

	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return ErrInvalidOption
	}

	if err := s.polls.IncrementVote(ctx, pollID, optionIndex); err != nil {
		// The poll can disappear between the fetch and the increment.
		if errors.Is(err, store.ErrNotFound) {
			return ErrPollNotFound
		}
		return fmt.Errorf("increment vote: %w", err)
	}

	// The vote is already counted; a failed publish must not fail the
	// request.
	if s.events != nil {
		ev := event.VoteEvent{
			PollID:      pollID,
			OptionIndex: optionIndex,
			Timestamp:   time.Now(),
		}
		if err := s.events.Publish(ctx, ev); err != nil {
			slog.Warn("failed to publish vote event", "error", err, "poll_id", pollID)
		}
	}

	return nil
}

// Stats computes per-option vote counts and percentages for an already
// fetched poll. Percentages are votes[i]/total*100, or all zeros when the
// poll has no votes yet.
func Stats(poll models.Poll) []models.OptionStats {
	var total int64
	for _, v := range poll.Votes {
		total += v
	}

	stats := make([]models.OptionStats, len(poll.Options))
	for i, option := range poll.Options {
		var count int64
		if i < len(poll.Votes) {
			count = poll.Votes[i]
		}

		var pct float64
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}

		stats[i] = models.OptionStats{
			Option:     option,
			Votes:      count,
			Percentage: pct,
		}
	}
	return stats
}
