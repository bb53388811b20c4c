// Package errors holds the sentinel kinds that every Lynkt layer speaks.
//
// Domain packages wrap one of the kinds below with their own message, for
// example userDomain.ErrNotOwner wraps ErrForbidden. Use cases return those
// wrapped values untouched and httputil maps the kind to a status code, so no
// layer above the repositories inspects driver errors.
package errors

import (
	"errors"
	"fmt"
)

// Kinds. Each one maps to exactly one HTTP status in httputil.
var (
	// ErrNotFound: no profile, link or group under the given slug or id, or a
	// link that is inactive or expired. 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict: slug or email already registered. 409.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput: a payload broke a field rule. 422.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadRequest: the request is structurally unusable, such as a missing
	// session cookie or a token subject that is not an account id. 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized: frontend secret or session token missing, expired or
	// wrong, or login credentials rejected. 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: a valid session acting on a profile it does not own. 403.
	ErrForbidden = errors.New("forbidden")
)

// New returns a plain error. Domain packages use it for messages that carry no kind.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps err reachable through Is and As.
// A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether err is, or wraps, target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain assignable to target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
