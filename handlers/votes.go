// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
	"github.com/danielhkuo/ballotbox/voting"
)

type VoteHandler struct {
	polls store.PollStore
	votes *voting.Service
}

func NewVoteHandler(polls store.PollStore, votes *voting.Service) *VoteHandler {
	return &VoteHandler{polls: polls, votes: votes}
}

// CastVote handles POST /poll/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.votes.CastVote(r.Context(), id, req.OptionIndex)
	if errors.Is(err, voting.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if errors.Is(err, voting.ErrInvalidOption) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option selected")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "poll_id", id, "option_index", req.OptionIndex)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Vote recorded"})
}

// GetStats handles GET /poll/{id}/stats
func (h *VoteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	poll, err := h.polls.GetPoll(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voting.Stats(poll))
}
