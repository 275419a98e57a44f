// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// Polls created more than this long ago show up under /polls/expiring.
const expiringAge = 24 * time.Hour

type PollHandler struct {
	polls store.PollStore
}

func NewPollHandler(polls store.PollStore) *PollHandler {
	return &PollHandler{polls: polls}
}

// pollID parses the {id} path value; writes a 400 and returns false when it
// is not an integer.
func pollID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return 0, false
	}
	return id, true
}

func validatePollRequest(w http.ResponseWriter, req models.PollRequest) bool {
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return false
	}
	if len(req.Options) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least 2 options required")
		return false
	}
	return true
}

// CreatePoll handles POST /poll
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.PollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !validatePollRequest(w, req) {
		return
	}

	poll, err := h.polls.CreatePoll(r.Context(), req.Title, req.Options)
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// GetPoll handles GET /poll/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// UpdatePoll handles PUT /poll/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	var req models.PollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !validatePollRequest(w, req) {
		return
	}

	poll, err := h.polls.UpdatePoll(r.Context(), id, req.Title, req.Options)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to update poll", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}

	slog.Info("poll updated", "poll_id", id)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /poll/{id}
// Deletion is idempotent: deleting a poll that does not exist returns 200.
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	if err := h.polls.DeletePoll(r.Context(), id); err != nil {
		slog.Error("failed to delete poll", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", id)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Poll deleted"})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// ListExpiringPolls handles GET /polls/expiring
// Returns polls created more than 24 hours ago. The age cutoff is a
// heuristic over creation time; polls carry no expiry field.
func (h *PollHandler) ListExpiringPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPollsOlderThan(r.Context(), expiringAge)
	if err != nil {
		slog.Error("failed to list expiring polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
