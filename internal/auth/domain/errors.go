package domain

import (
	"github.com/atluixx/lynkt/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrFrontendSecretMissing indicates the frontend secret header was not sent.
	ErrFrontendSecretMissing = errors.Wrap(errors.ErrUnauthorized, "frontend secret missing")

	// ErrFrontendSecretInvalid indicates the frontend secret header did not match.
	ErrFrontendSecretInvalid = errors.Wrap(errors.ErrUnauthorized, "frontend secret invalid")

	// ErrTokenCookieMissing indicates a protected route was called without a session cookie.
	ErrTokenCookieMissing = errors.Wrap(errors.ErrBadRequest, "token cookie missing")

	// ErrTokenExpired indicates a well-signed token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates a token that failed verification.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "token invalid")

	// ErrInvalidSubject indicates the token subject is not an account id.
	ErrInvalidSubject = errors.Wrap(errors.ErrBadRequest, "token subject is not a valid account id")

	// ErrAccountGone indicates a valid token whose account no longer exists.
	ErrAccountGone = errors.Wrap(errors.ErrUnauthorized, "account no longer exists")

	// ErrHashFailed indicates the password hashing primitive failed. It maps to a generic 500.
	ErrHashFailed = errors.New("password hashing failed")
)
