// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(authSvc, pollStore, votingSvc)

# Endpoints

Accounts:

	POST /register - Register, returns token
	POST /login    - Login, returns token

Polls:

	POST   /poll            - Create poll
	GET    /poll/{id}       - Get poll
	PUT    /poll/{id}       - Update poll
	DELETE /poll/{id}       - Delete poll
	GET    /polls           - List polls, newest first
	GET    /polls/expiring  - List polls older than 24h

Voting:

	POST /poll/{id}/vote  - Cast a vote
	GET  /poll/{id}/stats - Vote counts and percentages

Health:

	GET /health

All routes use Go 1.22+ method patterns and are wrapped with request
logging. CORS is applied around the whole mux in main.
*/
package router
