// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/ballotbox/models"
)

// Postgres implements CredentialStore and PollStore on a *sql.DB.
// Poll options and votes live in parallel TEXT[]/INTEGER[] columns so the
// vote counter can be bumped in place with a single UPDATE.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// CreateCredential inserts a credential, relying on the primary key for
// uniqueness. ON CONFLICT DO NOTHING makes the duplicate check and the
// insert one statement, so two concurrent registrations can never both
// succeed.
func (s *Postgres) CreateCredential(ctx context.Context, name, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO account (name, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, name, passwordHash)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	if n == 0 {
		return ErrDuplicate
	}
	return nil
}

func (s *Postgres) GetCredential(ctx context.Context, name string) (models.Credential, error) {
	var cred models.Credential
	err := s.db.QueryRowContext(ctx, `
		SELECT name, password_hash, created_at
		FROM account
		WHERE name = $1
	`, name).Scan(&cred.Name, &cred.PasswordHash, &cred.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Credential{}, ErrNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("query account: %w", err)
	}
	return cred, nil
}

const pollColumns = "id, title, options, votes, created_at"

func scanPoll(row *sql.Row) (models.Poll, error) {
	var p models.Poll
	err := row.Scan(&p.ID, &p.Title, pq.Array(&p.Options), pq.Array(&p.Votes), &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("scan poll: %w", err)
	}
	return p, nil
}

func (s *Postgres) CreatePoll(ctx context.Context, title string, options []string) (models.Poll, error) {
	votes := make([]int64, len(options))
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO poll (title, options, votes)
		VALUES ($1, $2, $3)
		RETURNING `+pollColumns+`
	`, title, pq.Array(options), pq.Array(votes))
	return scanPoll(row)
}

func (s *Postgres) GetPoll(ctx context.Context, id int64) (models.Poll, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+pollColumns+` FROM poll WHERE id = $1
	`, id)
	return scanPoll(row)
}

// UpdatePoll replaces the title and options. When the option list changes,
// the counters reset to zeros for the new length; otherwise existing counts
// are kept.
func (s *Postgres) UpdatePoll(ctx context.Context, id int64, title string, options []string) (models.Poll, error) {
	existing, err := s.GetPoll(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}

	votes := existing.Votes
	if !slices.Equal(existing.Options, options) {
		votes = make([]int64, len(options))
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE poll
		SET title = $1, options = $2, votes = $3
		WHERE id = $4
		RETURNING `+pollColumns+`
	`, title, pq.Array(options), pq.Array(votes), id)
	return scanPoll(row)
}

// DeletePoll is idempotent: deleting an absent poll is not an error.
func (s *Postgres) DeletePoll(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	return nil
}

func (s *Postgres) ListPolls(ctx context.Context) ([]models.Poll, error) {
	return s.listPolls(ctx, `
		SELECT `+pollColumns+` FROM poll ORDER BY created_at DESC
	`)
}

func (s *Postgres) ListPollsOlderThan(ctx context.Context, age time.Duration) ([]models.Poll, error) {
	return s.listPolls(ctx, `
		SELECT `+pollColumns+` FROM poll
		WHERE created_at < NOW() - $1::interval
		ORDER BY created_at DESC
	`, interval(age))
}

func (s *Postgres) listPolls(ctx context.Context, query string, args ...any) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, pq.Array(&p.Options), pq.Array(&p.Votes), &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate polls: %w", err)
	}
	return polls, nil
}

// IncrementVote bumps votes[optionIndex] in place. The whole increment is
// one UPDATE addressing the array position, so concurrent voters on the same
// option serialize inside Postgres and no update is lost.
func (s *Postgres) IncrementVote(ctx context.Context, id int64, optionIndex int) error {
	// Postgres arrays are 1-based.
	pos := optionIndex + 1
	res, err := s.db.ExecContext(ctx, `
		UPDATE poll
		SET votes[$1] = votes[$1] + 1
		WHERE id = $2
	`, pos, id)
	if err != nil {
		return fmt.Errorf("increment vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment vote: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func interval(d time.Duration) string {
	return fmt.Sprintf("%d seconds", int64(d.Seconds()))
}
