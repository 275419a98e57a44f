// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Token signing secret (required)
  - KafkaBrokers, KafkaTopic: vote event stream (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-jwt-secret     Token signing secret
	-kafka-brokers  Comma-separated broker list
	-kafka-topic    Vote event topic

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	JWT_SECRET    → -jwt-secret
	KAFKA_BROKERS → -kafka-brokers
	KAFKA_TOPIC   → -kafka-topic

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL or JWT_SECRET is missing. The
signing secret has no built-in default on purpose: a process without one
must not start.
*/
package cliparse
