// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/store"
	"github.com/danielhkuo/ballotbox/voting"
)

func NewRouter(authSvc *auth.Service, polls store.PollStore, votes *voting.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(authSvc)
	pollHandler := handlers.NewPollHandler(polls)
	voteHandler := handlers.NewVoteHandler(polls, votes)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))

	// Polls
	mux.HandleFunc("POST /poll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /poll/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("PUT /poll/{id}", middleware.WithLogging(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /poll/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/expiring", middleware.WithLogging(pollHandler.ListExpiringPolls))

	// Voting
	mux.HandleFunc("POST /poll/{id}/vote", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /poll/{id}/stats", middleware.WithLogging(voteHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
