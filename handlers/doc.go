// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AccountHandler: registration and login, backed by auth.Service
  - PollHandler: poll CRUD and listings, backed by store.PollStore
  - VoteHandler: vote casting and statistics, backed by voting.Service

# Account Flow

	POST /register → Register (returns token, 409 on duplicate name)
	POST /login    → Login (returns token, 401 on bad credentials)

Login never distinguishes an unknown name from a wrong password.

# Poll Flow

	POST   /poll            → CreatePoll (≥2 options, votes start at zero)
	GET    /poll/{id}       → GetPoll
	PUT    /poll/{id}       → UpdatePoll (votes reset if options change)
	DELETE /poll/{id}       → DeletePoll (idempotent)
	GET    /polls           → ListPolls (newest first)
	GET    /polls/expiring  → ListExpiringPolls (older than 24h)

# Voting Flow

	POST /poll/{id}/vote  → CastVote (option_index, atomic increment)
	GET  /poll/{id}/stats → GetStats (counts and percentages)

Handlers only parse, validate, and map errors to statuses; correctness
obligations live in auth, voting, and store.
*/
package handlers
