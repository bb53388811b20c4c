package service

import (
	"github.com/allisson/go-pwdhash"

	"github.com/atluixx/lynkt/internal/auth/domain"
	apperrors "github.com/atluixx/lynkt/internal/errors"
)

// argon2PasswordHasher implements PasswordHasher with Argon2id.
type argon2PasswordHasher struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordHasher creates a PasswordHasher using the interactive Argon2id policy,
// which keeps a login in the tens of milliseconds.
func NewPasswordHasher() (PasswordHasher, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	return &argon2PasswordHasher{hasher: hasher}, nil
}

// Hash hashes a plain text password using Argon2id.
func (h *argon2PasswordHasher) Hash(password string) (string, error) {
	hashed, err := h.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrapf(domain.ErrHashFailed, "argon2id: %v", err)
	}
	return hashed, nil
}

// Verify compares a plain password against a stored hash.
func (h *argon2PasswordHasher) Verify(password, hash string) bool {
	ok, err := h.hasher.Verify([]byte(password), hash)
	if err != nil {
		return false
	}
	return ok
}
