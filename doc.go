// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a poll-voting backend with account registration and login.
Accounts authenticate with Argon2id-hashed passwords and receive 24-hour
HS256 bearer tokens; polls hold parallel option/vote-count arrays and votes
are counted with a single atomic array-position increment in Postgres.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -d "postgres://..." -jwt-secret "..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): token signing secret; startup fails without it

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - KAFKA_BROKERS (-kafka-brokers): enables the vote event stream
  - KAFKA_TOPIC (-kafka-topic): vote event topic (default: poll.votes)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, polls, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and token issuance
  - voting: Vote validation, atomic casting, statistics
  - store: Persistence interfaces and Postgres implementation
  - event: Optional Kafka vote event stream
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
