package models

import "time"

// Request types

type CredentialRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type PollRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type VoteRequest struct {
	OptionIndex int `json:"option_index"`
}

// Response types

type TokenResponse struct {
	Token string `json:"token"`
}

// Domain types

type Credential struct {
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Options and Votes are parallel, index-aligned slices:
// Votes[i] counts ballots for Options[i].
type Poll struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Options   []string  `json:"options"`
	Votes     []int64   `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type OptionStats struct {
	Option     string  `json:"option"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
