// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CredentialRequest: name, password (register and login)
  - PollRequest: title, options (create and update)
  - VoteRequest: option_index

# Response Types

  - TokenResponse: token
  - ErrorResponse: error, message

# Domain Types

  - Credential: account name and password hash (hash never serialized)
  - Poll: title plus parallel options/votes slices
  - OptionStats: per-option vote count and percentage

The Poll invariant is len(Votes) == len(Options) at all times; the store
initializes Votes to zeros on creation and resets it when the option list
changes on update.
*/
package models
