// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/danielhkuo/ballotbox/event"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// memPolls is an in-memory PollStore; only the methods CastVote touches have
// real behavior.
type memPolls struct {
	polls      map[int64]models.Poll
	increments int
}

func newMemPolls(polls ...models.Poll) *memPolls {
	m := &memPolls{polls: make(map[int64]models.Poll)}
	for _, p := range polls {
		m.polls[p.ID] = p
	}
	return m
}

func (m *memPolls) CreatePoll(ctx context.Context, title string, options []string) (models.Poll, error) {
	return models.Poll{}, errors.New("not implemented")
}

func (m *memPolls) GetPoll(ctx context.Context, id int64) (models.Poll, error) {
	p, ok := m.polls[id]
	if !ok {
		return models.Poll{}, store.ErrNotFound
	}
	return p, nil
}

func (m *memPolls) UpdatePoll(ctx context.Context, id int64, title string, options []string) (models.Poll, error) {
	return models.Poll{}, errors.New("not implemented")
}

func (m *memPolls) DeletePoll(ctx context.Context, id int64) error { return nil }

func (m *memPolls) ListPolls(ctx context.Context) ([]models.Poll, error) { return nil, nil }

func (m *memPolls) ListPollsOlderThan(ctx context.Context, age time.Duration) ([]models.Poll, error) {
	return nil, nil
}

func (m *memPolls) IncrementVote(ctx context.Context, id int64, optionIndex int) error {
	p, ok := m.polls[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Votes[optionIndex]++
	m.polls[id] = p
	m.increments++
	return nil
}

// memPublisher records published events and optionally fails.
type memPublisher struct {
	events []event.VoteEvent
	fail   bool
}

func (m *memPublisher) Publish(ctx context.Context, ev event.VoteEvent) error {
	if m.fail {
		return errors.New("broker unavailable")
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *memPublisher) Close() error { return nil }

func colorPoll() models.Poll {
	return models.Poll{
		ID:      1,
		Title:   "Color",
		Options: []string{"Red", "Blue"},
		Votes:   []int64{0, 0},
	}
}

func TestCastVote(t *testing.T) {
	polls := newMemPolls(colorPoll())
	svc := NewService(polls, nil)

	if err := svc.CastVote(context.Background(), 1, 1); err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}

	got := polls.polls[1].Votes
	want := []int64{0, 1}
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("votes after cast = %v, want %v", got, want)
	}
}

func TestCastVoteInvalidIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to option count", 2},
		{"far out of range", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polls := newMemPolls(colorPoll())
			svc := NewService(polls, nil)

			err := svc.CastVote(context.Background(), 1, tt.index)
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("CastVote(%d) error = %v, want ErrInvalidOption", tt.index, err)
			}
			if polls.increments != 0 {
				t.Errorf("invalid vote reached the store (%d increments)", polls.increments)
			}
		})
	}
}

func TestCastVoteMissingPoll(t *testing.T) {
	polls := newMemPolls()
	svc := NewService(polls, nil)

	err := svc.CastVote(context.Background(), 42, 0)
	if !errors.Is(err, ErrPollNotFound) {
		t.Errorf("CastVote() error = %v, want ErrPollNotFound", err)
	}
}

func TestCastVotePublishesEvent(t *testing.T) {
	polls := newMemPolls(colorPoll())
	pub := &memPublisher{}
	svc := NewService(polls, pub)

	if err := svc.CastVote(context.Background(), 1, 0); err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	ev := pub.events[0]
	if ev.PollID != 1 || ev.OptionIndex != 0 {
		t.Errorf("event = %+v, want poll 1 option 0", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Error("event timestamp is zero")
	}
}

func TestCastVotePublishFailureDoesNotFailVote(t *testing.T) {
	polls := newMemPolls(colorPoll())
	svc := NewService(polls, &memPublisher{fail: true})

	if err := svc.CastVote(context.Background(), 1, 0); err != nil {
		t.Fatalf("CastVote() error = %v, want nil despite publish failure", err)
	}
	if polls.polls[1].Votes[0] != 1 {
		t.Error("vote was not counted")
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		votes   []int64
		want    []models.OptionStats
	}{
		{
			name:    "no votes yet",
			options: []string{"Red", "Blue"},
			votes:   []int64{0, 0},
			want: []models.OptionStats{
				{Option: "Red", Votes: 0, Percentage: 0},
				{Option: "Blue", Votes: 0, Percentage: 0},
			},
		},
		{
			name:    "single vote",
			options: []string{"Red", "Blue"},
			votes:   []int64{0, 1},
			want: []models.OptionStats{
				{Option: "Red", Votes: 0, Percentage: 0},
				{Option: "Blue", Votes: 1, Percentage: 100},
			},
		},
		{
			name:    "mixed counts",
			options: []string{"A", "B", "C"},
			votes:   []int64{1, 1, 2},
			want: []models.OptionStats{
				{Option: "A", Votes: 1, Percentage: 25},
				{Option: "B", Votes: 1, Percentage: 25},
				{Option: "C", Votes: 2, Percentage: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stats(models.Poll{Options: tt.options, Votes: tt.votes})

			if len(got) != len(tt.want) {
				t.Fatalf("Stats() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Option != tt.want[i].Option || got[i].Votes != tt.want[i].Votes {
					t.Errorf("Stats()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
				if math.Abs(got[i].Percentage-tt.want[i].Percentage) > 1e-9 {
					t.Errorf("Stats()[%d].Percentage = %v, want %v", i, got[i].Percentage, tt.want[i].Percentage)
				}
			}
		})
	}
}

func TestStatsPercentagesSumTo100(t *testing.T) {
	poll := models.Poll{
		Options: []string{"A", "B", "C", "D"},
		Votes:   []int64{3, 1, 7, 2},
	}

	var sum float64
	for _, s := range Stats(poll) {
		sum += s.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}
