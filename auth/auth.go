// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/danielhkuo/ballotbox/store"
)

var (
	ErrNameTaken          = errors.New("name already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCorruptHash        = errors.New("stored password hash is malformed")
)

// Service registers accounts and authenticates logins. Both operations
// return a signed bearer token on success.
type Service struct {
	creds  store.CredentialStore
	secret []byte
}

func NewService(creds store.CredentialStore, secret []byte) *Service {
	return &Service{creds: creds, secret: secret}
}

// Register hashes the password and inserts the credential. The store's
// conflict handling is the only uniqueness check; a duplicate name maps to
// ErrNameTaken with no partial state left behind.
func (s *Service) Register(ctx context.Context, name, password string) (string, error) {
	// Argon2id with a fresh random salt; the result is a self-describing
	// PHC string, so verification needs nothing but the stored value.
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if err := s.creds.CreateCredential(ctx, name, hash); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", ErrNameTaken
		}
		return "", fmt.Errorf("store credential: %w", err)
	}

	return s.issueToken(name)
}

// Login verifies the password against the stored hash. A missing account and
// a wrong password both return ErrInvalidCredentials so the response does
// not reveal which names exist.
func (s *Service) Login(ctx context.Context, name, password string) (string, error) {
	cred, err := s.creds.GetCredential(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up credential: %w", err)
	}

	match, err := argon2id.ComparePasswordAndHash(password, cred.PasswordHash)
	if err != nil {
		// Should never happen with hashes we wrote; guard anyway.
		return "", fmt.Errorf("%w: %v", ErrCorruptHash, err)
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(name)
}
