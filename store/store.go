// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/ballotbox/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// CredentialStore persists account credentials. Uniqueness of the account
// name is enforced by the store itself: CreateCredential is the only
// duplicate check.
type CredentialStore interface {
	CreateCredential(ctx context.Context, name, passwordHash string) error
	GetCredential(ctx context.Context, name string) (models.Credential, error)
}

// PollStore persists polls and their vote counters.
type PollStore interface {
	CreatePoll(ctx context.Context, title string, options []string) (models.Poll, error)
	GetPoll(ctx context.Context, id int64) (models.Poll, error)
	UpdatePoll(ctx context.Context, id int64, title string, options []string) (models.Poll, error)
	DeletePoll(ctx context.Context, id int64) error
	ListPolls(ctx context.Context) ([]models.Poll, error)
	ListPollsOlderThan(ctx context.Context, age time.Duration) ([]models.Poll, error)

	// IncrementVote adds exactly one to the counter at optionIndex as a
	// single store statement. Concurrent increments on the same poll and
	// option must serialize without lost updates.
	IncrementVote(ctx context.Context, id int64, optionIndex int) error
}
