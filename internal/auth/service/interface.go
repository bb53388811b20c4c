// Package service provides the stateless credential and session primitives
// used by the auth use cases and middleware.
//
// Both services hold only immutable configuration and are safe to share
// across concurrent requests.
package service

import (
	"github.com/atluixx/lynkt/internal/auth/domain"
)

// PasswordHasher derives and verifies password hashes.
// Hashes are self-describing PHC strings, so verification needs no external state.
type PasswordHasher interface {
	// Hash derives a new hash with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. Any parse error, algorithm
	// mismatch or digest mismatch yields false.
	Verify(password, hash string) bool
}

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	// Issue signs a token for subject valid from now until now plus the configured TTL.
	Issue(subject string) (*domain.IssuedToken, error)

	// Verify checks the signature first and then the time claims.
	Verify(token string) domain.VerificationOutcome
}
