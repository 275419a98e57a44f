// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides account registration, login, and bearer tokens.

# Password Hashing

Passwords are hashed with Argon2id (github.com/alexedwards/argon2id) using a
unique random salt per hash. The output is a self-describing PHC string
encoding the algorithm parameters, salt, and digest:

	$argon2id$v=19$m=65536,t=1,p=2$c29tZXNhbHQ$...

Verification parses the stored string and compares in constant time; no
parameters are kept outside the hash itself.

# Tokens

Tokens are HS256 JWTs (github.com/golang-jwt/jwt/v5) carrying:

	sub: account name
	iat: issuance time
	exp: issuance + 24 hours

The signing secret is injected at construction; there is no default. Verify
with:

	subject, err := svc.VerifyToken(token)

# Errors

  - ErrNameTaken: registration conflict (HTTP 409)
  - ErrInvalidCredentials: unknown name or wrong password (HTTP 401).
    The two cases are deliberately indistinguishable to callers.
  - ErrCorruptHash: stored hash failed to parse (HTTP 500, logged)
  - ErrInvalidToken: bad signature, malformed, or expired token
*/
package auth
